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
	"github.com/sumit1004/neurolink_backend/internal/repo/doctorcontact"
	"github.com/sumit1004/neurolink_backend/internal/repo/patient"
	"github.com/sumit1004/neurolink_backend/internal/repo/predicate"
)

// DoctorContactUpdate is the builder for updating DoctorContact entities.
type DoctorContactUpdate struct {
	config
	hooks    []Hook
	mutation *DoctorContactMutation
}

// Where appends a list predicates to the DoctorContactUpdate builder.
func (_u *DoctorContactUpdate) Where(ps ...predicate.DoctorContact) *DoctorContactUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorContactUpdate) SetUpdatedAt(v time.Time) *DoctorContactUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *DoctorContactUpdate) SetPatientID(v uuid.UUID) *DoctorContactUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *DoctorContactUpdate) SetNillablePatientID(v *uuid.UUID) *DoctorContactUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *DoctorContactUpdate) SetName(v string) *DoctorContactUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DoctorContactUpdate) SetNillableName(v *string) *DoctorContactUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSpeciality sets the "speciality" field.
func (_u *DoctorContactUpdate) SetSpeciality(v string) *DoctorContactUpdate {
	_u.mutation.SetSpeciality(v)
	return _u
}

// SetNillableSpeciality sets the "speciality" field if the given value is not nil.
func (_u *DoctorContactUpdate) SetNillableSpeciality(v *string) *DoctorContactUpdate {
	if v != nil {
		_u.SetSpeciality(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *DoctorContactUpdate) SetPhone(v string) *DoctorContactUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *DoctorContactUpdate) SetNillablePhone(v *string) *DoctorContactUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *DoctorContactUpdate) SetEmail(v string) *DoctorContactUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *DoctorContactUpdate) SetNillableEmail(v *string) *DoctorContactUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *DoctorContactUpdate) ClearEmail() *DoctorContactUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *DoctorContactUpdate) SetNotes(v string) *DoctorContactUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *DoctorContactUpdate) SetNillableNotes(v *string) *DoctorContactUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *DoctorContactUpdate) ClearNotes() *DoctorContactUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *DoctorContactUpdate) SetPatient(v *Patient) *DoctorContactUpdate {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the DoctorContactMutation object of the builder.
func (_u *DoctorContactUpdate) Mutation() *DoctorContactMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *DoctorContactUpdate) ClearPatient() *DoctorContactUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DoctorContactUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorContactUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DoctorContactUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorContactUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorContactUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctorcontact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorContactUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := doctorcontact.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "DoctorContact.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Speciality(); ok {
		if err := doctorcontact.SpecialityValidator(v); err != nil {
			return &ValidationError{Name: "speciality", err: fmt.Errorf(`repo: validator failed for field "DoctorContact.speciality": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := doctorcontact.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "DoctorContact.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := doctorcontact.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "DoctorContact.email": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "DoctorContact.patient"`)
	}
	return nil
}

func (_u *DoctorContactUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctorcontact.Table, doctorcontact.Columns, sqlgraph.NewFieldSpec(doctorcontact.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(doctorcontact.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(doctorcontact.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Speciality(); ok {
		_spec.SetField(doctorcontact.FieldSpeciality, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(doctorcontact.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(doctorcontact.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(doctorcontact.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(doctorcontact.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(doctorcontact.FieldNotes, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   doctorcontact.PatientTable,
			Columns: []string{doctorcontact.PatientColumn},
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
			Table:   doctorcontact.PatientTable,
			Columns: []string{doctorcontact.PatientColumn},
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
			err = &NotFoundError{doctorcontact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DoctorContactUpdateOne is the builder for updating a single DoctorContact entity.
type DoctorContactUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DoctorContactMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorContactUpdateOne) SetUpdatedAt(v time.Time) *DoctorContactUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *DoctorContactUpdateOne) SetPatientID(v uuid.UUID) *DoctorContactUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *DoctorContactUpdateOne) SetNillablePatientID(v *uuid.UUID) *DoctorContactUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *DoctorContactUpdateOne) SetName(v string) *DoctorContactUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DoctorContactUpdateOne) SetNillableName(v *string) *DoctorContactUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSpeciality sets the "speciality" field.
func (_u *DoctorContactUpdateOne) SetSpeciality(v string) *DoctorContactUpdateOne {
	_u.mutation.SetSpeciality(v)
	return _u
}

// SetNillableSpeciality sets the "speciality" field if the given value is not nil.
func (_u *DoctorContactUpdateOne) SetNillableSpeciality(v *string) *DoctorContactUpdateOne {
	if v != nil {
		_u.SetSpeciality(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *DoctorContactUpdateOne) SetPhone(v string) *DoctorContactUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *DoctorContactUpdateOne) SetNillablePhone(v *string) *DoctorContactUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *DoctorContactUpdateOne) SetEmail(v string) *DoctorContactUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *DoctorContactUpdateOne) SetNillableEmail(v *string) *DoctorContactUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *DoctorContactUpdateOne) ClearEmail() *DoctorContactUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *DoctorContactUpdateOne) SetNotes(v string) *DoctorContactUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *DoctorContactUpdateOne) SetNillableNotes(v *string) *DoctorContactUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *DoctorContactUpdateOne) ClearNotes() *DoctorContactUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *DoctorContactUpdateOne) SetPatient(v *Patient) *DoctorContactUpdateOne {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the DoctorContactMutation object of the builder.
func (_u *DoctorContactUpdateOne) Mutation() *DoctorContactMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *DoctorContactUpdateOne) ClearPatient() *DoctorContactUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// Where appends a list predicates to the DoctorContactUpdate builder.
func (_u *DoctorContactUpdateOne) Where(ps ...predicate.DoctorContact) *DoctorContactUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DoctorContactUpdateOne) Select(field string, fields ...string) *DoctorContactUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DoctorContact entity.
func (_u *DoctorContactUpdateOne) Save(ctx context.Context) (*DoctorContact, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorContactUpdateOne) SaveX(ctx context.Context) *DoctorContact {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DoctorContactUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorContactUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorContactUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctorcontact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorContactUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := doctorcontact.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "DoctorContact.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Speciality(); ok {
		if err := doctorcontact.SpecialityValidator(v); err != nil {
			return &ValidationError{Name: "speciality", err: fmt.Errorf(`repo: validator failed for field "DoctorContact.speciality": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := doctorcontact.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "DoctorContact.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := doctorcontact.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "DoctorContact.email": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "DoctorContact.patient"`)
	}
	return nil
}

func (_u *DoctorContactUpdateOne) sqlSave(ctx context.Context) (_node *DoctorContact, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctorcontact.Table, doctorcontact.Columns, sqlgraph.NewFieldSpec(doctorcontact.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "DoctorContact.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, doctorcontact.FieldID)
		for _, f := range fields {
			if !doctorcontact.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != doctorcontact.FieldID {
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
		_spec.SetField(doctorcontact.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(doctorcontact.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Speciality(); ok {
		_spec.SetField(doctorcontact.FieldSpeciality, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(doctorcontact.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(doctorcontact.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(doctorcontact.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(doctorcontact.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(doctorcontact.FieldNotes, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   doctorcontact.PatientTable,
			Columns: []string{doctorcontact.PatientColumn},
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
			Table:   doctorcontact.PatientTable,
			Columns: []string{doctorcontact.PatientColumn},
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
	_node = &DoctorContact{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctorcontact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
