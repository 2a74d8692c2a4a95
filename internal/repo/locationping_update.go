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
	"github.com/sumit1004/neurolink_backend/internal/repo/locationping"
	"github.com/sumit1004/neurolink_backend/internal/repo/patient"
	"github.com/sumit1004/neurolink_backend/internal/repo/predicate"
)

// LocationPingUpdate is the builder for updating LocationPing entities.
type LocationPingUpdate struct {
	config
	hooks    []Hook
	mutation *LocationPingMutation
}

// Where appends a list predicates to the LocationPingUpdate builder.
func (_u *LocationPingUpdate) Where(ps ...predicate.LocationPing) *LocationPingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *LocationPingUpdate) SetPatientID(v uuid.UUID) *LocationPingUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *LocationPingUpdate) SetNillablePatientID(v *uuid.UUID) *LocationPingUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetLat sets the "lat" field.
func (_u *LocationPingUpdate) SetLat(v float64) *LocationPingUpdate {
	_u.mutation.ResetLat()
	_u.mutation.SetLat(v)
	return _u
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_u *LocationPingUpdate) SetNillableLat(v *float64) *LocationPingUpdate {
	if v != nil {
		_u.SetLat(*v)
	}
	return _u
}

// AddLat adds value to the "lat" field.
func (_u *LocationPingUpdate) AddLat(v float64) *LocationPingUpdate {
	_u.mutation.AddLat(v)
	return _u
}

// SetLon sets the "lon" field.
func (_u *LocationPingUpdate) SetLon(v float64) *LocationPingUpdate {
	_u.mutation.ResetLon()
	_u.mutation.SetLon(v)
	return _u
}

// SetNillableLon sets the "lon" field if the given value is not nil.
func (_u *LocationPingUpdate) SetNillableLon(v *float64) *LocationPingUpdate {
	if v != nil {
		_u.SetLon(*v)
	}
	return _u
}

// AddLon adds value to the "lon" field.
func (_u *LocationPingUpdate) AddLon(v float64) *LocationPingUpdate {
	_u.mutation.AddLon(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *LocationPingUpdate) SetAccuracy(v float64) *LocationPingUpdate {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *LocationPingUpdate) SetNillableAccuracy(v *float64) *LocationPingUpdate {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *LocationPingUpdate) AddAccuracy(v float64) *LocationPingUpdate {
	_u.mutation.AddAccuracy(v)
	return _u
}

// ClearAccuracy clears the value of the "accuracy" field.
func (_u *LocationPingUpdate) ClearAccuracy() *LocationPingUpdate {
	_u.mutation.ClearAccuracy()
	return _u
}

// SetRecordedAt sets the "recorded_at" field.
func (_u *LocationPingUpdate) SetRecordedAt(v time.Time) *LocationPingUpdate {
	_u.mutation.SetRecordedAt(v)
	return _u
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_u *LocationPingUpdate) SetNillableRecordedAt(v *time.Time) *LocationPingUpdate {
	if v != nil {
		_u.SetRecordedAt(*v)
	}
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *LocationPingUpdate) SetPatient(v *Patient) *LocationPingUpdate {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the LocationPingMutation object of the builder.
func (_u *LocationPingUpdate) Mutation() *LocationPingMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *LocationPingUpdate) ClearPatient() *LocationPingUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LocationPingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LocationPingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LocationPingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LocationPingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LocationPingUpdate) check() error {
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "LocationPing.patient"`)
	}
	return nil
}

func (_u *LocationPingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(locationping.Table, locationping.Columns, sqlgraph.NewFieldSpec(locationping.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Lat(); ok {
		_spec.SetField(locationping.FieldLat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLat(); ok {
		_spec.AddField(locationping.FieldLat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Lon(); ok {
		_spec.SetField(locationping.FieldLon, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLon(); ok {
		_spec.AddField(locationping.FieldLon, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(locationping.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(locationping.FieldAccuracy, field.TypeFloat64, value)
	}
	if _u.mutation.AccuracyCleared() {
		_spec.ClearField(locationping.FieldAccuracy, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RecordedAt(); ok {
		_spec.SetField(locationping.FieldRecordedAt, field.TypeTime, value)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   locationping.PatientTable,
			Columns: []string{locationping.PatientColumn},
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
			Table:   locationping.PatientTable,
			Columns: []string{locationping.PatientColumn},
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
			err = &NotFoundError{locationping.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LocationPingUpdateOne is the builder for updating a single LocationPing entity.
type LocationPingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LocationPingMutation
}

// SetPatientID sets the "patient_id" field.
func (_u *LocationPingUpdateOne) SetPatientID(v uuid.UUID) *LocationPingUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *LocationPingUpdateOne) SetNillablePatientID(v *uuid.UUID) *LocationPingUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetLat sets the "lat" field.
func (_u *LocationPingUpdateOne) SetLat(v float64) *LocationPingUpdateOne {
	_u.mutation.ResetLat()
	_u.mutation.SetLat(v)
	return _u
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_u *LocationPingUpdateOne) SetNillableLat(v *float64) *LocationPingUpdateOne {
	if v != nil {
		_u.SetLat(*v)
	}
	return _u
}

// AddLat adds value to the "lat" field.
func (_u *LocationPingUpdateOne) AddLat(v float64) *LocationPingUpdateOne {
	_u.mutation.AddLat(v)
	return _u
}

// SetLon sets the "lon" field.
func (_u *LocationPingUpdateOne) SetLon(v float64) *LocationPingUpdateOne {
	_u.mutation.ResetLon()
	_u.mutation.SetLon(v)
	return _u
}

// SetNillableLon sets the "lon" field if the given value is not nil.
func (_u *LocationPingUpdateOne) SetNillableLon(v *float64) *LocationPingUpdateOne {
	if v != nil {
		_u.SetLon(*v)
	}
	return _u
}

// AddLon adds value to the "lon" field.
func (_u *LocationPingUpdateOne) AddLon(v float64) *LocationPingUpdateOne {
	_u.mutation.AddLon(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *LocationPingUpdateOne) SetAccuracy(v float64) *LocationPingUpdateOne {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *LocationPingUpdateOne) SetNillableAccuracy(v *float64) *LocationPingUpdateOne {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *LocationPingUpdateOne) AddAccuracy(v float64) *LocationPingUpdateOne {
	_u.mutation.AddAccuracy(v)
	return _u
}

// ClearAccuracy clears the value of the "accuracy" field.
func (_u *LocationPingUpdateOne) ClearAccuracy() *LocationPingUpdateOne {
	_u.mutation.ClearAccuracy()
	return _u
}

// SetRecordedAt sets the "recorded_at" field.
func (_u *LocationPingUpdateOne) SetRecordedAt(v time.Time) *LocationPingUpdateOne {
	_u.mutation.SetRecordedAt(v)
	return _u
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_u *LocationPingUpdateOne) SetNillableRecordedAt(v *time.Time) *LocationPingUpdateOne {
	if v != nil {
		_u.SetRecordedAt(*v)
	}
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *LocationPingUpdateOne) SetPatient(v *Patient) *LocationPingUpdateOne {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the LocationPingMutation object of the builder.
func (_u *LocationPingUpdateOne) Mutation() *LocationPingMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *LocationPingUpdateOne) ClearPatient() *LocationPingUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// Where appends a list predicates to the LocationPingUpdate builder.
func (_u *LocationPingUpdateOne) Where(ps ...predicate.LocationPing) *LocationPingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LocationPingUpdateOne) Select(field string, fields ...string) *LocationPingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LocationPing entity.
func (_u *LocationPingUpdateOne) Save(ctx context.Context) (*LocationPing, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LocationPingUpdateOne) SaveX(ctx context.Context) *LocationPing {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LocationPingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LocationPingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LocationPingUpdateOne) check() error {
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "LocationPing.patient"`)
	}
	return nil
}

func (_u *LocationPingUpdateOne) sqlSave(ctx context.Context) (_node *LocationPing, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(locationping.Table, locationping.Columns, sqlgraph.NewFieldSpec(locationping.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "LocationPing.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, locationping.FieldID)
		for _, f := range fields {
			if !locationping.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != locationping.FieldID {
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
	if value, ok := _u.mutation.Lat(); ok {
		_spec.SetField(locationping.FieldLat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLat(); ok {
		_spec.AddField(locationping.FieldLat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Lon(); ok {
		_spec.SetField(locationping.FieldLon, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLon(); ok {
		_spec.AddField(locationping.FieldLon, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(locationping.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(locationping.FieldAccuracy, field.TypeFloat64, value)
	}
	if _u.mutation.AccuracyCleared() {
		_spec.ClearField(locationping.FieldAccuracy, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RecordedAt(); ok {
		_spec.SetField(locationping.FieldRecordedAt, field.TypeTime, value)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   locationping.PatientTable,
			Columns: []string{locationping.PatientColumn},
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
			Table:   locationping.PatientTable,
			Columns: []string{locationping.PatientColumn},
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
	_node = &LocationPing{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{locationping.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
