// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/sumit1004/neurolink_backend/internal/repo/locationping"
	"github.com/sumit1004/neurolink_backend/internal/repo/patient"
)

// LocationPingCreate is the builder for creating a LocationPing entity.
type LocationPingCreate struct {
	config
	mutation *LocationPingMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *LocationPingCreate) SetCreatedAt(v time.Time) *LocationPingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LocationPingCreate) SetNillableCreatedAt(v *time.Time) *LocationPingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *LocationPingCreate) SetPatientID(v uuid.UUID) *LocationPingCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetLat sets the "lat" field.
func (_c *LocationPingCreate) SetLat(v float64) *LocationPingCreate {
	_c.mutation.SetLat(v)
	return _c
}

// SetLon sets the "lon" field.
func (_c *LocationPingCreate) SetLon(v float64) *LocationPingCreate {
	_c.mutation.SetLon(v)
	return _c
}

// SetAccuracy sets the "accuracy" field.
func (_c *LocationPingCreate) SetAccuracy(v float64) *LocationPingCreate {
	_c.mutation.SetAccuracy(v)
	return _c
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_c *LocationPingCreate) SetNillableAccuracy(v *float64) *LocationPingCreate {
	if v != nil {
		_c.SetAccuracy(*v)
	}
	return _c
}

// SetRecordedAt sets the "recorded_at" field.
func (_c *LocationPingCreate) SetRecordedAt(v time.Time) *LocationPingCreate {
	_c.mutation.SetRecordedAt(v)
	return _c
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_c *LocationPingCreate) SetNillableRecordedAt(v *time.Time) *LocationPingCreate {
	if v != nil {
		_c.SetRecordedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LocationPingCreate) SetID(v uuid.UUID) *LocationPingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LocationPingCreate) SetNillableID(v *uuid.UUID) *LocationPingCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *LocationPingCreate) SetPatient(v *Patient) *LocationPingCreate {
	return _c.SetPatientID(v.ID)
}

// Mutation returns the LocationPingMutation object of the builder.
func (_c *LocationPingCreate) Mutation() *LocationPingMutation {
	return _c.mutation
}

// Save creates the LocationPing in the database.
func (_c *LocationPingCreate) Save(ctx context.Context) (*LocationPing, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LocationPingCreate) SaveX(ctx context.Context) *LocationPing {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LocationPingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LocationPingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LocationPingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := locationping.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.RecordedAt(); !ok {
		v := locationping.DefaultRecordedAt()
		_c.mutation.SetRecordedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := locationping.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LocationPingCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "LocationPing.created_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "LocationPing.patient_id"`)}
	}
	if _, ok := _c.mutation.Lat(); !ok {
		return &ValidationError{Name: "lat", err: errors.New(`repo: missing required field "LocationPing.lat"`)}
	}
	if _, ok := _c.mutation.Lon(); !ok {
		return &ValidationError{Name: "lon", err: errors.New(`repo: missing required field "LocationPing.lon"`)}
	}
	if _, ok := _c.mutation.RecordedAt(); !ok {
		return &ValidationError{Name: "recorded_at", err: errors.New(`repo: missing required field "LocationPing.recorded_at"`)}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "LocationPing.patient"`)}
	}
	return nil
}

func (_c *LocationPingCreate) sqlSave(ctx context.Context) (*LocationPing, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LocationPingCreate) createSpec() (*LocationPing, *sqlgraph.CreateSpec) {
	var (
		_node = &LocationPing{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(locationping.Table, sqlgraph.NewFieldSpec(locationping.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(locationping.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Lat(); ok {
		_spec.SetField(locationping.FieldLat, field.TypeFloat64, value)
		_node.Lat = value
	}
	if value, ok := _c.mutation.Lon(); ok {
		_spec.SetField(locationping.FieldLon, field.TypeFloat64, value)
		_node.Lon = value
	}
	if value, ok := _c.mutation.Accuracy(); ok {
		_spec.SetField(locationping.FieldAccuracy, field.TypeFloat64, value)
		_node.Accuracy = &value
	}
	if value, ok := _c.mutation.RecordedAt(); ok {
		_spec.SetField(locationping.FieldRecordedAt, field.TypeTime, value)
		_node.RecordedAt = value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
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
		_node.PatientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LocationPing.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LocationPingUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *LocationPingCreate) OnConflict(opts ...sql.ConflictOption) *LocationPingUpsertOne {
	_c.conflict = opts
	return &LocationPingUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LocationPing.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LocationPingCreate) OnConflictColumns(columns ...string) *LocationPingUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LocationPingUpsertOne{
		create: _c,
	}
}

type (
	// LocationPingUpsertOne is the builder for "upsert"-ing
	//  one LocationPing node.
	LocationPingUpsertOne struct {
		create *LocationPingCreate
	}

	// LocationPingUpsert is the "OnConflict" setter.
	LocationPingUpsert struct {
		*sql.UpdateSet
	}
)

// SetPatientID sets the "patient_id" field.
func (u *LocationPingUpsert) SetPatientID(v uuid.UUID) *LocationPingUpsert {
	u.Set(locationping.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *LocationPingUpsert) UpdatePatientID() *LocationPingUpsert {
	u.SetExcluded(locationping.FieldPatientID)
	return u
}

// SetLat sets the "lat" field.
func (u *LocationPingUpsert) SetLat(v float64) *LocationPingUpsert {
	u.Set(locationping.FieldLat, v)
	return u
}

// UpdateLat sets the "lat" field to the value that was provided on create.
func (u *LocationPingUpsert) UpdateLat() *LocationPingUpsert {
	u.SetExcluded(locationping.FieldLat)
	return u
}

// AddLat adds v to the "lat" field.
func (u *LocationPingUpsert) AddLat(v float64) *LocationPingUpsert {
	u.Add(locationping.FieldLat, v)
	return u
}

// SetLon sets the "lon" field.
func (u *LocationPingUpsert) SetLon(v float64) *LocationPingUpsert {
	u.Set(locationping.FieldLon, v)
	return u
}

// UpdateLon sets the "lon" field to the value that was provided on create.
func (u *LocationPingUpsert) UpdateLon() *LocationPingUpsert {
	u.SetExcluded(locationping.FieldLon)
	return u
}

// AddLon adds v to the "lon" field.
func (u *LocationPingUpsert) AddLon(v float64) *LocationPingUpsert {
	u.Add(locationping.FieldLon, v)
	return u
}

// SetAccuracy sets the "accuracy" field.
func (u *LocationPingUpsert) SetAccuracy(v float64) *LocationPingUpsert {
	u.Set(locationping.FieldAccuracy, v)
	return u
}

// UpdateAccuracy sets the "accuracy" field to the value that was provided on create.
func (u *LocationPingUpsert) UpdateAccuracy() *LocationPingUpsert {
	u.SetExcluded(locationping.FieldAccuracy)
	return u
}

// AddAccuracy adds v to the "accuracy" field.
func (u *LocationPingUpsert) AddAccuracy(v float64) *LocationPingUpsert {
	u.Add(locationping.FieldAccuracy, v)
	return u
}

// ClearAccuracy clears the value of the "accuracy" field.
func (u *LocationPingUpsert) ClearAccuracy() *LocationPingUpsert {
	u.SetNull(locationping.FieldAccuracy)
	return u
}

// SetRecordedAt sets the "recorded_at" field.
func (u *LocationPingUpsert) SetRecordedAt(v time.Time) *LocationPingUpsert {
	u.Set(locationping.FieldRecordedAt, v)
	return u
}

// UpdateRecordedAt sets the "recorded_at" field to the value that was provided on create.
func (u *LocationPingUpsert) UpdateRecordedAt() *LocationPingUpsert {
	u.SetExcluded(locationping.FieldRecordedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.LocationPing.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(locationping.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LocationPingUpsertOne) UpdateNewValues() *LocationPingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(locationping.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(locationping.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LocationPing.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LocationPingUpsertOne) Ignore() *LocationPingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LocationPingUpsertOne) DoNothing() *LocationPingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LocationPingCreate.OnConflict
// documentation for more info.
func (u *LocationPingUpsertOne) Update(set func(*LocationPingUpsert)) *LocationPingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LocationPingUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *LocationPingUpsertOne) SetPatientID(v uuid.UUID) *LocationPingUpsertOne {
	return u.Update(func(s *LocationPingUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *LocationPingUpsertOne) UpdatePatientID() *LocationPingUpsertOne {
	return u.Update(func(s *LocationPingUpsert) {
		s.UpdatePatientID()
	})
}

// SetLat sets the "lat" field.
func (u *LocationPingUpsertOne) SetLat(v float64) *LocationPingUpsertOne {
	return u.Update(func(s *LocationPingUpsert) {
		s.SetLat(v)
	})
}

// AddLat adds v to the "lat" field.
func (u *LocationPingUpsertOne) AddLat(v float64) *LocationPingUpsertOne {
	return u.Update(func(s *LocationPingUpsert) {
		s.AddLat(v)
	})
}

// UpdateLat sets the "lat" field to the value that was provided on create.
func (u *LocationPingUpsertOne) UpdateLat() *LocationPingUpsertOne {
	return u.Update(func(s *LocationPingUpsert) {
		s.UpdateLat()
	})
}

// SetLon sets the "lon" field.
func (u *LocationPingUpsertOne) SetLon(v float64) *LocationPingUpsertOne {
	return u.Update(func(s *LocationPingUpsert) {
		s.SetLon(v)
	})
}

// AddLon adds v to the "lon" field.
func (u *LocationPingUpsertOne) AddLon(v float64) *LocationPingUpsertOne {
	return u.Update(func(s *LocationPingUpsert) {
		s.AddLon(v)
	})
}

// UpdateLon sets the "lon" field to the value that was provided on create.
func (u *LocationPingUpsertOne) UpdateLon() *LocationPingUpsertOne {
	return u.Update(func(s *LocationPingUpsert) {
		s.UpdateLon()
	})
}

// SetAccuracy sets the "accuracy" field.
func (u *LocationPingUpsertOne) SetAccuracy(v float64) *LocationPingUpsertOne {
	return u.Update(func(s *LocationPingUpsert) {
		s.SetAccuracy(v)
	})
}

// AddAccuracy adds v to the "accuracy" field.
func (u *LocationPingUpsertOne) AddAccuracy(v float64) *LocationPingUpsertOne {
	return u.Update(func(s *LocationPingUpsert) {
		s.AddAccuracy(v)
	})
}

// UpdateAccuracy sets the "accuracy" field to the value that was provided on create.
func (u *LocationPingUpsertOne) UpdateAccuracy() *LocationPingUpsertOne {
	return u.Update(func(s *LocationPingUpsert) {
		s.UpdateAccuracy()
	})
}

// ClearAccuracy clears the value of the "accuracy" field.
func (u *LocationPingUpsertOne) ClearAccuracy() *LocationPingUpsertOne {
	return u.Update(func(s *LocationPingUpsert) {
		s.ClearAccuracy()
	})
}

// SetRecordedAt sets the "recorded_at" field.
func (u *LocationPingUpsertOne) SetRecordedAt(v time.Time) *LocationPingUpsertOne {
	return u.Update(func(s *LocationPingUpsert) {
		s.SetRecordedAt(v)
	})
}

// UpdateRecordedAt sets the "recorded_at" field to the value that was provided on create.
func (u *LocationPingUpsertOne) UpdateRecordedAt() *LocationPingUpsertOne {
	return u.Update(func(s *LocationPingUpsert) {
		s.UpdateRecordedAt()
	})
}

// Exec executes the query.
func (u *LocationPingUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for LocationPingCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LocationPingUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LocationPingUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: LocationPingUpsertOne.ID is not supported by MySQL driver. Use LocationPingUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LocationPingUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LocationPingCreateBulk is the builder for creating many LocationPing entities in bulk.
type LocationPingCreateBulk struct {
	config
	err      error
	builders []*LocationPingCreate
	conflict []sql.ConflictOption
}

// Save creates the LocationPing entities in the database.
func (_c *LocationPingCreateBulk) Save(ctx context.Context) ([]*LocationPing, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LocationPing, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LocationPingMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LocationPingCreateBulk) SaveX(ctx context.Context) []*LocationPing {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LocationPingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LocationPingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LocationPing.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LocationPingUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *LocationPingCreateBulk) OnConflict(opts ...sql.ConflictOption) *LocationPingUpsertBulk {
	_c.conflict = opts
	return &LocationPingUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LocationPing.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LocationPingCreateBulk) OnConflictColumns(columns ...string) *LocationPingUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LocationPingUpsertBulk{
		create: _c,
	}
}

// LocationPingUpsertBulk is the builder for "upsert"-ing
// a bulk of LocationPing nodes.
type LocationPingUpsertBulk struct {
	create *LocationPingCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LocationPing.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(locationping.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LocationPingUpsertBulk) UpdateNewValues() *LocationPingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(locationping.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(locationping.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LocationPing.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LocationPingUpsertBulk) Ignore() *LocationPingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LocationPingUpsertBulk) DoNothing() *LocationPingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LocationPingCreateBulk.OnConflict
// documentation for more info.
func (u *LocationPingUpsertBulk) Update(set func(*LocationPingUpsert)) *LocationPingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LocationPingUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *LocationPingUpsertBulk) SetPatientID(v uuid.UUID) *LocationPingUpsertBulk {
	return u.Update(func(s *LocationPingUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *LocationPingUpsertBulk) UpdatePatientID() *LocationPingUpsertBulk {
	return u.Update(func(s *LocationPingUpsert) {
		s.UpdatePatientID()
	})
}

// SetLat sets the "lat" field.
func (u *LocationPingUpsertBulk) SetLat(v float64) *LocationPingUpsertBulk {
	return u.Update(func(s *LocationPingUpsert) {
		s.SetLat(v)
	})
}

// AddLat adds v to the "lat" field.
func (u *LocationPingUpsertBulk) AddLat(v float64) *LocationPingUpsertBulk {
	return u.Update(func(s *LocationPingUpsert) {
		s.AddLat(v)
	})
}

// UpdateLat sets the "lat" field to the value that was provided on create.
func (u *LocationPingUpsertBulk) UpdateLat() *LocationPingUpsertBulk {
	return u.Update(func(s *LocationPingUpsert) {
		s.UpdateLat()
	})
}

// SetLon sets the "lon" field.
func (u *LocationPingUpsertBulk) SetLon(v float64) *LocationPingUpsertBulk {
	return u.Update(func(s *LocationPingUpsert) {
		s.SetLon(v)
	})
}

// AddLon adds v to the "lon" field.
func (u *LocationPingUpsertBulk) AddLon(v float64) *LocationPingUpsertBulk {
	return u.Update(func(s *LocationPingUpsert) {
		s.AddLon(v)
	})
}

// UpdateLon sets the "lon" field to the value that was provided on create.
func (u *LocationPingUpsertBulk) UpdateLon() *LocationPingUpsertBulk {
	return u.Update(func(s *LocationPingUpsert) {
		s.UpdateLon()
	})
}

// SetAccuracy sets the "accuracy" field.
func (u *LocationPingUpsertBulk) SetAccuracy(v float64) *LocationPingUpsertBulk {
	return u.Update(func(s *LocationPingUpsert) {
		s.SetAccuracy(v)
	})
}

// AddAccuracy adds v to the "accuracy" field.
func (u *LocationPingUpsertBulk) AddAccuracy(v float64) *LocationPingUpsertBulk {
	return u.Update(func(s *LocationPingUpsert) {
		s.AddAccuracy(v)
	})
}

// UpdateAccuracy sets the "accuracy" field to the value that was provided on create.
func (u *LocationPingUpsertBulk) UpdateAccuracy() *LocationPingUpsertBulk {
	return u.Update(func(s *LocationPingUpsert) {
		s.UpdateAccuracy()
	})
}

// ClearAccuracy clears the value of the "accuracy" field.
func (u *LocationPingUpsertBulk) ClearAccuracy() *LocationPingUpsertBulk {
	return u.Update(func(s *LocationPingUpsert) {
		s.ClearAccuracy()
	})
}

// SetRecordedAt sets the "recorded_at" field.
func (u *LocationPingUpsertBulk) SetRecordedAt(v time.Time) *LocationPingUpsertBulk {
	return u.Update(func(s *LocationPingUpsert) {
		s.SetRecordedAt(v)
	})
}

// UpdateRecordedAt sets the "recorded_at" field to the value that was provided on create.
func (u *LocationPingUpsertBulk) UpdateRecordedAt() *LocationPingUpsertBulk {
	return u.Update(func(s *LocationPingUpsert) {
		s.UpdateRecordedAt()
	})
}

// Exec executes the query.
func (u *LocationPingUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the LocationPingCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for LocationPingCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LocationPingUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
