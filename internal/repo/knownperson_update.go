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
	"github.com/sumit1004/neurolink_backend/internal/repo/knownperson"
	"github.com/sumit1004/neurolink_backend/internal/repo/patient"
	"github.com/sumit1004/neurolink_backend/internal/repo/predicate"
)

// KnownPersonUpdate is the builder for updating KnownPerson entities.
type KnownPersonUpdate struct {
	config
	hooks    []Hook
	mutation *KnownPersonMutation
}

// Where appends a list predicates to the KnownPersonUpdate builder.
func (_u *KnownPersonUpdate) Where(ps ...predicate.KnownPerson) *KnownPersonUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *KnownPersonUpdate) SetUpdatedAt(v time.Time) *KnownPersonUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *KnownPersonUpdate) SetPatientID(v uuid.UUID) *KnownPersonUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *KnownPersonUpdate) SetNillablePatientID(v *uuid.UUID) *KnownPersonUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *KnownPersonUpdate) SetName(v string) *KnownPersonUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *KnownPersonUpdate) SetNillableName(v *string) *KnownPersonUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRelation sets the "relation" field.
func (_u *KnownPersonUpdate) SetRelation(v string) *KnownPersonUpdate {
	_u.mutation.SetRelation(v)
	return _u
}

// SetNillableRelation sets the "relation" field if the given value is not nil.
func (_u *KnownPersonUpdate) SetNillableRelation(v *string) *KnownPersonUpdate {
	if v != nil {
		_u.SetRelation(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *KnownPersonUpdate) SetNotes(v string) *KnownPersonUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *KnownPersonUpdate) SetNillableNotes(v *string) *KnownPersonUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *KnownPersonUpdate) ClearNotes() *KnownPersonUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetPhotoURL sets the "photo_url" field.
func (_u *KnownPersonUpdate) SetPhotoURL(v string) *KnownPersonUpdate {
	_u.mutation.SetPhotoURL(v)
	return _u
}

// SetNillablePhotoURL sets the "photo_url" field if the given value is not nil.
func (_u *KnownPersonUpdate) SetNillablePhotoURL(v *string) *KnownPersonUpdate {
	if v != nil {
		_u.SetPhotoURL(*v)
	}
	return _u
}

// SetPhotoKey sets the "photo_key" field.
func (_u *KnownPersonUpdate) SetPhotoKey(v string) *KnownPersonUpdate {
	_u.mutation.SetPhotoKey(v)
	return _u
}

// SetNillablePhotoKey sets the "photo_key" field if the given value is not nil.
func (_u *KnownPersonUpdate) SetNillablePhotoKey(v *string) *KnownPersonUpdate {
	if v != nil {
		_u.SetPhotoKey(*v)
	}
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *KnownPersonUpdate) SetPatient(v *Patient) *KnownPersonUpdate {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the KnownPersonMutation object of the builder.
func (_u *KnownPersonUpdate) Mutation() *KnownPersonMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *KnownPersonUpdate) ClearPatient() *KnownPersonUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *KnownPersonUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnownPersonUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *KnownPersonUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnownPersonUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *KnownPersonUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := knownperson.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnownPersonUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := knownperson.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "KnownPerson.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Relation(); ok {
		if err := knownperson.RelationValidator(v); err != nil {
			return &ValidationError{Name: "relation", err: fmt.Errorf(`repo: validator failed for field "KnownPerson.relation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PhotoURL(); ok {
		if err := knownperson.PhotoURLValidator(v); err != nil {
			return &ValidationError{Name: "photo_url", err: fmt.Errorf(`repo: validator failed for field "KnownPerson.photo_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PhotoKey(); ok {
		if err := knownperson.PhotoKeyValidator(v); err != nil {
			return &ValidationError{Name: "photo_key", err: fmt.Errorf(`repo: validator failed for field "KnownPerson.photo_key": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "KnownPerson.patient"`)
	}
	return nil
}

func (_u *KnownPersonUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knownperson.Table, knownperson.Columns, sqlgraph.NewFieldSpec(knownperson.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(knownperson.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(knownperson.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Relation(); ok {
		_spec.SetField(knownperson.FieldRelation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(knownperson.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(knownperson.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.PhotoURL(); ok {
		_spec.SetField(knownperson.FieldPhotoURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.PhotoKey(); ok {
		_spec.SetField(knownperson.FieldPhotoKey, field.TypeString, value)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   knownperson.PatientTable,
			Columns: []string{knownperson.PatientColumn},
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
			Table:   knownperson.PatientTable,
			Columns: []string{knownperson.PatientColumn},
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
			err = &NotFoundError{knownperson.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// KnownPersonUpdateOne is the builder for updating a single KnownPerson entity.
type KnownPersonUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *KnownPersonMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *KnownPersonUpdateOne) SetUpdatedAt(v time.Time) *KnownPersonUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *KnownPersonUpdateOne) SetPatientID(v uuid.UUID) *KnownPersonUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *KnownPersonUpdateOne) SetNillablePatientID(v *uuid.UUID) *KnownPersonUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *KnownPersonUpdateOne) SetName(v string) *KnownPersonUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *KnownPersonUpdateOne) SetNillableName(v *string) *KnownPersonUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRelation sets the "relation" field.
func (_u *KnownPersonUpdateOne) SetRelation(v string) *KnownPersonUpdateOne {
	_u.mutation.SetRelation(v)
	return _u
}

// SetNillableRelation sets the "relation" field if the given value is not nil.
func (_u *KnownPersonUpdateOne) SetNillableRelation(v *string) *KnownPersonUpdateOne {
	if v != nil {
		_u.SetRelation(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *KnownPersonUpdateOne) SetNotes(v string) *KnownPersonUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *KnownPersonUpdateOne) SetNillableNotes(v *string) *KnownPersonUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *KnownPersonUpdateOne) ClearNotes() *KnownPersonUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetPhotoURL sets the "photo_url" field.
func (_u *KnownPersonUpdateOne) SetPhotoURL(v string) *KnownPersonUpdateOne {
	_u.mutation.SetPhotoURL(v)
	return _u
}

// SetNillablePhotoURL sets the "photo_url" field if the given value is not nil.
func (_u *KnownPersonUpdateOne) SetNillablePhotoURL(v *string) *KnownPersonUpdateOne {
	if v != nil {
		_u.SetPhotoURL(*v)
	}
	return _u
}

// SetPhotoKey sets the "photo_key" field.
func (_u *KnownPersonUpdateOne) SetPhotoKey(v string) *KnownPersonUpdateOne {
	_u.mutation.SetPhotoKey(v)
	return _u
}

// SetNillablePhotoKey sets the "photo_key" field if the given value is not nil.
func (_u *KnownPersonUpdateOne) SetNillablePhotoKey(v *string) *KnownPersonUpdateOne {
	if v != nil {
		_u.SetPhotoKey(*v)
	}
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *KnownPersonUpdateOne) SetPatient(v *Patient) *KnownPersonUpdateOne {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the KnownPersonMutation object of the builder.
func (_u *KnownPersonUpdateOne) Mutation() *KnownPersonMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *KnownPersonUpdateOne) ClearPatient() *KnownPersonUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// Where appends a list predicates to the KnownPersonUpdate builder.
func (_u *KnownPersonUpdateOne) Where(ps ...predicate.KnownPerson) *KnownPersonUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *KnownPersonUpdateOne) Select(field string, fields ...string) *KnownPersonUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated KnownPerson entity.
func (_u *KnownPersonUpdateOne) Save(ctx context.Context) (*KnownPerson, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnownPersonUpdateOne) SaveX(ctx context.Context) *KnownPerson {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *KnownPersonUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnownPersonUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *KnownPersonUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := knownperson.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnownPersonUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := knownperson.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "KnownPerson.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Relation(); ok {
		if err := knownperson.RelationValidator(v); err != nil {
			return &ValidationError{Name: "relation", err: fmt.Errorf(`repo: validator failed for field "KnownPerson.relation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PhotoURL(); ok {
		if err := knownperson.PhotoURLValidator(v); err != nil {
			return &ValidationError{Name: "photo_url", err: fmt.Errorf(`repo: validator failed for field "KnownPerson.photo_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PhotoKey(); ok {
		if err := knownperson.PhotoKeyValidator(v); err != nil {
			return &ValidationError{Name: "photo_key", err: fmt.Errorf(`repo: validator failed for field "KnownPerson.photo_key": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "KnownPerson.patient"`)
	}
	return nil
}

func (_u *KnownPersonUpdateOne) sqlSave(ctx context.Context) (_node *KnownPerson, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knownperson.Table, knownperson.Columns, sqlgraph.NewFieldSpec(knownperson.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "KnownPerson.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, knownperson.FieldID)
		for _, f := range fields {
			if !knownperson.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != knownperson.FieldID {
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
		_spec.SetField(knownperson.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(knownperson.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Relation(); ok {
		_spec.SetField(knownperson.FieldRelation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(knownperson.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(knownperson.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.PhotoURL(); ok {
		_spec.SetField(knownperson.FieldPhotoURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.PhotoKey(); ok {
		_spec.SetField(knownperson.FieldPhotoKey, field.TypeString, value)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   knownperson.PatientTable,
			Columns: []string{knownperson.PatientColumn},
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
			Table:   knownperson.PatientTable,
			Columns: []string{knownperson.PatientColumn},
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
	_node = &KnownPerson{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knownperson.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
