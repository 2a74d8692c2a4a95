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
	"github.com/sumit1004/neurolink_backend/internal/repo/patient"
	"github.com/sumit1004/neurolink_backend/internal/repo/routine"
	"github.com/sumit1004/neurolink_backend/internal/repo/task"
	"github.com/sumit1004/neurolink_backend/internal/schema"
)

// RoutineCreate is the builder for creating a Routine entity.
type RoutineCreate struct {
	config
	mutation *RoutineMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *RoutineCreate) SetCreatedAt(v time.Time) *RoutineCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RoutineCreate) SetNillableCreatedAt(v *time.Time) *RoutineCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RoutineCreate) SetUpdatedAt(v time.Time) *RoutineCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RoutineCreate) SetNillableUpdatedAt(v *time.Time) *RoutineCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *RoutineCreate) SetPatientID(v uuid.UUID) *RoutineCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *RoutineCreate) SetTitle(v string) *RoutineCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetSchedule sets the "schedule" field.
func (_c *RoutineCreate) SetSchedule(v *schema.Schedule) *RoutineCreate {
	_c.mutation.SetSchedule(v)
	return _c
}

// SetActive sets the "active" field.
func (_c *RoutineCreate) SetActive(v bool) *RoutineCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *RoutineCreate) SetNillableActive(v *bool) *RoutineCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RoutineCreate) SetID(v uuid.UUID) *RoutineCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RoutineCreate) SetNillableID(v *uuid.UUID) *RoutineCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *RoutineCreate) SetPatient(v *Patient) *RoutineCreate {
	return _c.SetPatientID(v.ID)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_c *RoutineCreate) AddTaskIDs(ids ...uuid.UUID) *RoutineCreate {
	_c.mutation.AddTaskIDs(ids...)
	return _c
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_c *RoutineCreate) AddTasks(v ...*Task) *RoutineCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTaskIDs(ids...)
}

// Mutation returns the RoutineMutation object of the builder.
func (_c *RoutineCreate) Mutation() *RoutineMutation {
	return _c.mutation
}

// Save creates the Routine in the database.
func (_c *RoutineCreate) Save(ctx context.Context) (*Routine, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RoutineCreate) SaveX(ctx context.Context) *Routine {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoutineCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoutineCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RoutineCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := routine.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := routine.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := routine.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := routine.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RoutineCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Routine.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Routine.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "Routine.patient_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`repo: missing required field "Routine.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := routine.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Routine.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Schedule(); !ok {
		return &ValidationError{Name: "schedule", err: errors.New(`repo: missing required field "Routine.schedule"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`repo: missing required field "Routine.active"`)}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "Routine.patient"`)}
	}
	return nil
}

func (_c *RoutineCreate) sqlSave(ctx context.Context) (*Routine, error) {
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

func (_c *RoutineCreate) createSpec() (*Routine, *sqlgraph.CreateSpec) {
	var (
		_node = &Routine{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(routine.Table, sqlgraph.NewFieldSpec(routine.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(routine.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(routine.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(routine.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Schedule(); ok {
		_spec.SetField(routine.FieldSchedule, field.TypeJSON, value)
		_node.Schedule = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(routine.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   routine.PatientTable,
			Columns: []string{routine.PatientColumn},
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
	if nodes := _c.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   routine.TasksTable,
			Columns: []string{routine.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Routine.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RoutineUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *RoutineCreate) OnConflict(opts ...sql.ConflictOption) *RoutineUpsertOne {
	_c.conflict = opts
	return &RoutineUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Routine.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RoutineCreate) OnConflictColumns(columns ...string) *RoutineUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RoutineUpsertOne{
		create: _c,
	}
}

type (
	// RoutineUpsertOne is the builder for "upsert"-ing
	//  one Routine node.
	RoutineUpsertOne struct {
		create *RoutineCreate
	}

	// RoutineUpsert is the "OnConflict" setter.
	RoutineUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *RoutineUpsert) SetUpdatedAt(v time.Time) *RoutineUpsert {
	u.Set(routine.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RoutineUpsert) UpdateUpdatedAt() *RoutineUpsert {
	u.SetExcluded(routine.FieldUpdatedAt)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *RoutineUpsert) SetPatientID(v uuid.UUID) *RoutineUpsert {
	u.Set(routine.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *RoutineUpsert) UpdatePatientID() *RoutineUpsert {
	u.SetExcluded(routine.FieldPatientID)
	return u
}

// SetTitle sets the "title" field.
func (u *RoutineUpsert) SetTitle(v string) *RoutineUpsert {
	u.Set(routine.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *RoutineUpsert) UpdateTitle() *RoutineUpsert {
	u.SetExcluded(routine.FieldTitle)
	return u
}

// SetSchedule sets the "schedule" field.
func (u *RoutineUpsert) SetSchedule(v *schema.Schedule) *RoutineUpsert {
	u.Set(routine.FieldSchedule, v)
	return u
}

// UpdateSchedule sets the "schedule" field to the value that was provided on create.
func (u *RoutineUpsert) UpdateSchedule() *RoutineUpsert {
	u.SetExcluded(routine.FieldSchedule)
	return u
}

// SetActive sets the "active" field.
func (u *RoutineUpsert) SetActive(v bool) *RoutineUpsert {
	u.Set(routine.FieldActive, v)
	return u
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *RoutineUpsert) UpdateActive() *RoutineUpsert {
	u.SetExcluded(routine.FieldActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Routine.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(routine.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RoutineUpsertOne) UpdateNewValues() *RoutineUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(routine.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(routine.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Routine.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RoutineUpsertOne) Ignore() *RoutineUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RoutineUpsertOne) DoNothing() *RoutineUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RoutineCreate.OnConflict
// documentation for more info.
func (u *RoutineUpsertOne) Update(set func(*RoutineUpsert)) *RoutineUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RoutineUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RoutineUpsertOne) SetUpdatedAt(v time.Time) *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RoutineUpsertOne) UpdateUpdatedAt() *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *RoutineUpsertOne) SetPatientID(v uuid.UUID) *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *RoutineUpsertOne) UpdatePatientID() *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdatePatientID()
	})
}

// SetTitle sets the "title" field.
func (u *RoutineUpsertOne) SetTitle(v string) *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *RoutineUpsertOne) UpdateTitle() *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateTitle()
	})
}

// SetSchedule sets the "schedule" field.
func (u *RoutineUpsertOne) SetSchedule(v *schema.Schedule) *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.SetSchedule(v)
	})
}

// UpdateSchedule sets the "schedule" field to the value that was provided on create.
func (u *RoutineUpsertOne) UpdateSchedule() *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateSchedule()
	})
}

// SetActive sets the "active" field.
func (u *RoutineUpsertOne) SetActive(v bool) *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *RoutineUpsertOne) UpdateActive() *RoutineUpsertOne {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateActive()
	})
}

// Exec executes the query.
func (u *RoutineUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for RoutineCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RoutineUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RoutineUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: RoutineUpsertOne.ID is not supported by MySQL driver. Use RoutineUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RoutineUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RoutineCreateBulk is the builder for creating many Routine entities in bulk.
type RoutineCreateBulk struct {
	config
	err      error
	builders []*RoutineCreate
	conflict []sql.ConflictOption
}

// Save creates the Routine entities in the database.
func (_c *RoutineCreateBulk) Save(ctx context.Context) ([]*Routine, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Routine, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RoutineMutation)
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
func (_c *RoutineCreateBulk) SaveX(ctx context.Context) []*Routine {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoutineCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoutineCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Routine.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RoutineUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *RoutineCreateBulk) OnConflict(opts ...sql.ConflictOption) *RoutineUpsertBulk {
	_c.conflict = opts
	return &RoutineUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Routine.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RoutineCreateBulk) OnConflictColumns(columns ...string) *RoutineUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RoutineUpsertBulk{
		create: _c,
	}
}

// RoutineUpsertBulk is the builder for "upsert"-ing
// a bulk of Routine nodes.
type RoutineUpsertBulk struct {
	create *RoutineCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Routine.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(routine.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RoutineUpsertBulk) UpdateNewValues() *RoutineUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(routine.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(routine.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Routine.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RoutineUpsertBulk) Ignore() *RoutineUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RoutineUpsertBulk) DoNothing() *RoutineUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RoutineCreateBulk.OnConflict
// documentation for more info.
func (u *RoutineUpsertBulk) Update(set func(*RoutineUpsert)) *RoutineUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RoutineUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RoutineUpsertBulk) SetUpdatedAt(v time.Time) *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RoutineUpsertBulk) UpdateUpdatedAt() *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *RoutineUpsertBulk) SetPatientID(v uuid.UUID) *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *RoutineUpsertBulk) UpdatePatientID() *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdatePatientID()
	})
}

// SetTitle sets the "title" field.
func (u *RoutineUpsertBulk) SetTitle(v string) *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *RoutineUpsertBulk) UpdateTitle() *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateTitle()
	})
}

// SetSchedule sets the "schedule" field.
func (u *RoutineUpsertBulk) SetSchedule(v *schema.Schedule) *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.SetSchedule(v)
	})
}

// UpdateSchedule sets the "schedule" field to the value that was provided on create.
func (u *RoutineUpsertBulk) UpdateSchedule() *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateSchedule()
	})
}

// SetActive sets the "active" field.
func (u *RoutineUpsertBulk) SetActive(v bool) *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *RoutineUpsertBulk) UpdateActive() *RoutineUpsertBulk {
	return u.Update(func(s *RoutineUpsert) {
		s.UpdateActive()
	})
}

// Exec executes the query.
func (u *RoutineUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the RoutineCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for RoutineCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RoutineUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
