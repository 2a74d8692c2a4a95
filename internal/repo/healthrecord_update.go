// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/sumit1004/neurolink_backend/internal/repo/healthrecord"
	"github.com/sumit1004/neurolink_backend/internal/repo/patient"
	"github.com/sumit1004/neurolink_backend/internal/repo/predicate"
)

// HealthRecordUpdate is the builder for updating HealthRecord entities.
type HealthRecordUpdate struct {
	config
	hooks    []Hook
	mutation *HealthRecordMutation
}

// Where appends a list predicates to the HealthRecordUpdate builder.
func (_u *HealthRecordUpdate) Where(ps ...predicate.HealthRecord) *HealthRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HealthRecordUpdate) SetUpdatedAt(v time.Time) *HealthRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *HealthRecordUpdate) SetPatientID(v uuid.UUID) *HealthRecordUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *HealthRecordUpdate) SetNillablePatientID(v *uuid.UUID) *HealthRecordUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *HealthRecordUpdate) SetTitle(v string) *HealthRecordUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *HealthRecordUpdate) SetNillableTitle(v *string) *HealthRecordUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetFileURL sets the "file_url" field.
func (_u *HealthRecordUpdate) SetFileURL(v string) *HealthRecordUpdate {
	_u.mutation.SetFileURL(v)
	return _u
}

// SetNillableFileURL sets the "file_url" field if the given value is not nil.
func (_u *HealthRecordUpdate) SetNillableFileURL(v *string) *HealthRecordUpdate {
	if v != nil {
		_u.SetFileURL(*v)
	}
	return _u
}

// SetFileKey sets the "file_key" field.
func (_u *HealthRecordUpdate) SetFileKey(v string) *HealthRecordUpdate {
	_u.mutation.SetFileKey(v)
	return _u
}

// SetNillableFileKey sets the "file_key" field if the given value is not nil.
func (_u *HealthRecordUpdate) SetNillableFileKey(v *string) *HealthRecordUpdate {
	if v != nil {
		_u.SetFileKey(*v)
	}
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *HealthRecordUpdate) SetPatient(v *Patient) *HealthRecordUpdate {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the HealthRecordMutation object of the builder.
func (_u *HealthRecordUpdate) Mutation() *HealthRecordMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *HealthRecordUpdate) ClearPatient() *HealthRecordUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HealthRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HealthRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HealthRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HealthRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HealthRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := healthrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HealthRecordUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := healthrecord.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "HealthRecord.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileURL(); ok {
		if err := healthrecord.FileURLValidator(v); err != nil {
			return &ValidationError{Name: "file_url", err: fmt.Errorf(`repo: validator failed for field "HealthRecord.file_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileKey(); ok {
		if err := healthrecord.FileKeyValidator(v); err != nil {
			return &ValidationError{Name: "file_key", err: fmt.Errorf(`repo: validator failed for field "HealthRecord.file_key": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "HealthRecord.patient"`)
	}
	return nil
}

func (_u *HealthRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(healthrecord.Table, healthrecord.Columns, sqlgraph.NewFieldSpec(healthrecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(healthrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(healthrecord.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileURL(); ok {
		_spec.SetField(healthrecord.FieldFileURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileKey(); ok {
		_spec.SetField(healthrecord.FieldFileKey, field.TypeString, value)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   healthrecord.PatientTable,
			Columns: []string{healthrecord.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   healthrecord.PatientTable,
			Columns: []string{healthrecord.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{healthrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HealthRecordUpdateOne is the builder for updating a single HealthRecord entity.
type HealthRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HealthRecordMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HealthRecordUpdateOne) SetUpdatedAt(v time.Time) *HealthRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *HealthRecordUpdateOne) SetPatientID(v uuid.UUID) *HealthRecordUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *HealthRecordUpdateOne) SetNillablePatientID(v *uuid.UUID) *HealthRecordUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *HealthRecordUpdateOne) SetTitle(v string) *HealthRecordUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *HealthRecordUpdateOne) SetNillableTitle(v *string) *HealthRecordUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetFileURL sets the "file_url" field.
func (_u *HealthRecordUpdateOne) SetFileURL(v string) *HealthRecordUpdateOne {
	_u.mutation.SetFileURL(v)
	return _u
}

// SetNillableFileURL sets the "file_url" field if the given value is not nil.
func (_u *HealthRecordUpdateOne) SetNillableFileURL(v *string) *HealthRecordUpdateOne {
	if v != nil {
		_u.SetFileURL(*v)
	}
	return _u
}

// SetFileKey sets the "file_key" field.
func (_u *HealthRecordUpdateOne) SetFileKey(v string) *HealthRecordUpdateOne {
	_u.mutation.SetFileKey(v)
	return _u
}

// SetNillableFileKey sets the "file_key" field if the given value is not nil.
func (_u *HealthRecordUpdateOne) SetNillableFileKey(v *string) *HealthRecordUpdateOne {
	if v != nil {
		_u.SetFileKey(*v)
	}
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *HealthRecordUpdateOne) SetPatient(v *Patient) *HealthRecordUpdateOne {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the HealthRecordMutation object of the builder.
func (_u *HealthRecordUpdateOne) Mutation() *HealthRecordMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *HealthRecordUpdateOne) ClearPatient() *HealthRecordUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// Where appends a list predicates to the HealthRecordUpdate builder.
func (_u *HealthRecordUpdateOne) Where(ps ...predicate.HealthRecord) *HealthRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HealthRecordUpdateOne) Select(field string, fields ...string) *HealthRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HealthRecord entity.
func (_u *HealthRecordUpdateOne) Save(ctx context.Context) (*HealthRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HealthRecordUpdateOne) SaveX(ctx context.Context) *HealthRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HealthRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HealthRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HealthRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := healthrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HealthRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := healthrecord.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "HealthRecord.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileURL(); ok {
		if err := healthrecord.FileURLValidator(v); err != nil {
			return &ValidationError{Name: "file_url", err: fmt.Errorf(`repo: validator failed for field "HealthRecord.file_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileKey(); ok {
		if err := healthrecord.FileKeyValidator(v); err != nil {
			return &ValidationError{Name: "file_key", err: fmt.Errorf(`repo: validator failed for field "HealthRecord.file_key": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "HealthRecord.patient"`)
	}
	return nil
}

func (_u *HealthRecordUpdateOne) sqlSave(ctx context.Context) (_node *HealthRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(healthrecord.Table, healthrecord.Columns, sqlgraph.NewFieldSpec(healthrecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "HealthRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, healthrecord.FieldID)
		for _, f := range fields {
			if !healthrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != healthrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(healthrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(healthrecord.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileURL(); ok {
		_spec.SetField(healthrecord.FieldFileURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileKey(); ok {
		_spec.SetField(healthrecord.FieldFileKey, field.TypeString, value)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   healthrecord.PatientTable,
			Columns: []string{healthrecord.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   healthrecord.PatientTable,
			Columns: []string{healthrecord.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &HealthRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{healthrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
