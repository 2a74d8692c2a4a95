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
	"github.com/sumit1004/neurolink_backend/internal/repo/healthrecord"
	"github.com/sumit1004/neurolink_backend/internal/repo/patient"
)

// HealthRecordCreate is the builder for creating a HealthRecord entity.
type HealthRecordCreate struct {
	config
	mutation *HealthRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *HealthRecordCreate) SetCreatedAt(v time.Time) *HealthRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HealthRecordCreate) SetNillableCreatedAt(v *time.Time) *HealthRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *HealthRecordCreate) SetUpdatedAt(v time.Time) *HealthRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *HealthRecordCreate) SetNillableUpdatedAt(v *time.Time) *HealthRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *HealthRecordCreate) SetPatientID(v uuid.UUID) *HealthRecordCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *HealthRecordCreate) SetTitle(v string) *HealthRecordCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetFileURL sets the "file_url" field.
func (_c *HealthRecordCreate) SetFileURL(v string) *HealthRecordCreate {
	_c.mutation.SetFileURL(v)
	return _c
}

// SetFileKey sets the "file_key" field.
func (_c *HealthRecordCreate) SetFileKey(v string) *HealthRecordCreate {
	_c.mutation.SetFileKey(v)
	return _c
}

// SetID sets the "id" field.
func (_c *HealthRecordCreate) SetID(v uuid.UUID) *HealthRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *HealthRecordCreate) SetNillableID(v *uuid.UUID) *HealthRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *HealthRecordCreate) SetPatient(v *Patient) *HealthRecordCreate {
	return _c.SetPatientID(v.ID)
}

// Mutation returns the HealthRecordMutation object of the builder.
func (_c *HealthRecordCreate) Mutation() *HealthRecordMutation {
	return _c.mutation
}

// Save creates the HealthRecord in the database.
func (_c *HealthRecordCreate) Save(ctx context.Context) (*HealthRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HealthRecordCreate) SaveX(ctx context.Context) *HealthRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HealthRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HealthRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HealthRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := healthrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := healthrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := healthrecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HealthRecordCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "HealthRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "HealthRecord.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "HealthRecord.patient_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`repo: missing required field "HealthRecord.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := healthrecord.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "HealthRecord.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileURL(); !ok {
		return &ValidationError{Name: "file_url", err: errors.New(`repo: missing required field "HealthRecord.file_url"`)}
	}
	if v, ok := _c.mutation.FileURL(); ok {
		if err := healthrecord.FileURLValidator(v); err != nil {
			return &ValidationError{Name: "file_url", err: fmt.Errorf(`repo: validator failed for field "HealthRecord.file_url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileKey(); !ok {
		return &ValidationError{Name: "file_key", err: errors.New(`repo: missing required field "HealthRecord.file_key"`)}
	}
	if v, ok := _c.mutation.FileKey(); ok {
		if err := healthrecord.FileKeyValidator(v); err != nil {
			return &ValidationError{Name: "file_key", err: fmt.Errorf(`repo: validator failed for field "HealthRecord.file_key": %w`, err)}
		}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "HealthRecord.patient"`)}
	}
	return nil
}

func (_c *HealthRecordCreate) sqlSave(ctx context.Context) (*HealthRecord, error) {
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

func (_c *HealthRecordCreate) createSpec() (*HealthRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &HealthRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(healthrecord.Table, sqlgraph.NewFieldSpec(healthrecord.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(healthrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(healthrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(healthrecord.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.FileURL(); ok {
		_spec.SetField(healthrecord.FieldFileURL, field.TypeString, value)
		_node.FileURL = value
	}
	if value, ok := _c.mutation.FileKey(); ok {
		_spec.SetField(healthrecord.FieldFileKey, field.TypeString, value)
		_node.FileKey = value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
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
		_node.PatientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.HealthRecord.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HealthRecordUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *HealthRecordCreate) OnConflict(opts ...sql.ConflictOption) *HealthRecordUpsertOne {
	_c.conflict = opts
	return &HealthRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.HealthRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HealthRecordCreate) OnConflictColumns(columns ...string) *HealthRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HealthRecordUpsertOne{
		create: _c,
	}
}

type (
	// HealthRecordUpsertOne is the builder for "upsert"-ing
	//  one HealthRecord node.
	HealthRecordUpsertOne struct {
		create *HealthRecordCreate
	}

	// HealthRecordUpsert is the "OnConflict" setter.
	HealthRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *HealthRecordUpsert) SetUpdatedAt(v time.Time) *HealthRecordUpsert {
	u.Set(healthrecord.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *HealthRecordUpsert) UpdateUpdatedAt() *HealthRecordUpsert {
	u.SetExcluded(healthrecord.FieldUpdatedAt)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *HealthRecordUpsert) SetPatientID(v uuid.UUID) *HealthRecordUpsert {
	u.Set(healthrecord.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *HealthRecordUpsert) UpdatePatientID() *HealthRecordUpsert {
	u.SetExcluded(healthrecord.FieldPatientID)
	return u
}

// SetTitle sets the "title" field.
func (u *HealthRecordUpsert) SetTitle(v string) *HealthRecordUpsert {
	u.Set(healthrecord.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *HealthRecordUpsert) UpdateTitle() *HealthRecordUpsert {
	u.SetExcluded(healthrecord.FieldTitle)
	return u
}

// SetFileURL sets the "file_url" field.
func (u *HealthRecordUpsert) SetFileURL(v string) *HealthRecordUpsert {
	u.Set(healthrecord.FieldFileURL, v)
	return u
}

// UpdateFileURL sets the "file_url" field to the value that was provided on create.
func (u *HealthRecordUpsert) UpdateFileURL() *HealthRecordUpsert {
	u.SetExcluded(healthrecord.FieldFileURL)
	return u
}

// SetFileKey sets the "file_key" field.
func (u *HealthRecordUpsert) SetFileKey(v string) *HealthRecordUpsert {
	u.Set(healthrecord.FieldFileKey, v)
	return u
}

// UpdateFileKey sets the "file_key" field to the value that was provided on create.
func (u *HealthRecordUpsert) UpdateFileKey() *HealthRecordUpsert {
	u.SetExcluded(healthrecord.FieldFileKey)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.HealthRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(healthrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *HealthRecordUpsertOne) UpdateNewValues() *HealthRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(healthrecord.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(healthrecord.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.HealthRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *HealthRecordUpsertOne) Ignore() *HealthRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HealthRecordUpsertOne) DoNothing() *HealthRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HealthRecordCreate.OnConflict
// documentation for more info.
func (u *HealthRecordUpsertOne) Update(set func(*HealthRecordUpsert)) *HealthRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HealthRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *HealthRecordUpsertOne) SetUpdatedAt(v time.Time) *HealthRecordUpsertOne {
	return u.Update(func(s *HealthRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *HealthRecordUpsertOne) UpdateUpdatedAt() *HealthRecordUpsertOne {
	return u.Update(func(s *HealthRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *HealthRecordUpsertOne) SetPatientID(v uuid.UUID) *HealthRecordUpsertOne {
	return u.Update(func(s *HealthRecordUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *HealthRecordUpsertOne) UpdatePatientID() *HealthRecordUpsertOne {
	return u.Update(func(s *HealthRecordUpsert) {
		s.UpdatePatientID()
	})
}

// SetTitle sets the "title" field.
func (u *HealthRecordUpsertOne) SetTitle(v string) *HealthRecordUpsertOne {
	return u.Update(func(s *HealthRecordUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *HealthRecordUpsertOne) UpdateTitle() *HealthRecordUpsertOne {
	return u.Update(func(s *HealthRecordUpsert) {
		s.UpdateTitle()
	})
}

// SetFileURL sets the "file_url" field.
func (u *HealthRecordUpsertOne) SetFileURL(v string) *HealthRecordUpsertOne {
	return u.Update(func(s *HealthRecordUpsert) {
		s.SetFileURL(v)
	})
}

// UpdateFileURL sets the "file_url" field to the value that was provided on create.
func (u *HealthRecordUpsertOne) UpdateFileURL() *HealthRecordUpsertOne {
	return u.Update(func(s *HealthRecordUpsert) {
		s.UpdateFileURL()
	})
}

// SetFileKey sets the "file_key" field.
func (u *HealthRecordUpsertOne) SetFileKey(v string) *HealthRecordUpsertOne {
	return u.Update(func(s *HealthRecordUpsert) {
		s.SetFileKey(v)
	})
}

// UpdateFileKey sets the "file_key" field to the value that was provided on create.
func (u *HealthRecordUpsertOne) UpdateFileKey() *HealthRecordUpsertOne {
	return u.Update(func(s *HealthRecordUpsert) {
		s.UpdateFileKey()
	})
}

// Exec executes the query.
func (u *HealthRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for HealthRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HealthRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *HealthRecordUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: HealthRecordUpsertOne.ID is not supported by MySQL driver. Use HealthRecordUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *HealthRecordUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// HealthRecordCreateBulk is the builder for creating many HealthRecord entities in bulk.
type HealthRecordCreateBulk struct {
	config
	err      error
	builders []*HealthRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the HealthRecord entities in the database.
func (_c *HealthRecordCreateBulk) Save(ctx context.Context) ([]*HealthRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HealthRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HealthRecordMutation)
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
func (_c *HealthRecordCreateBulk) SaveX(ctx context.Context) []*HealthRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HealthRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HealthRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.HealthRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HealthRecordUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *HealthRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *HealthRecordUpsertBulk {
	_c.conflict = opts
	return &HealthRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.HealthRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HealthRecordCreateBulk) OnConflictColumns(columns ...string) *HealthRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HealthRecordUpsertBulk{
		create: _c,
	}
}

// HealthRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of HealthRecord nodes.
type HealthRecordUpsertBulk struct {
	create *HealthRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.HealthRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(healthrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *HealthRecordUpsertBulk) UpdateNewValues() *HealthRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(healthrecord.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(healthrecord.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.HealthRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *HealthRecordUpsertBulk) Ignore() *HealthRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HealthRecordUpsertBulk) DoNothing() *HealthRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HealthRecordCreateBulk.OnConflict
// documentation for more info.
func (u *HealthRecordUpsertBulk) Update(set func(*HealthRecordUpsert)) *HealthRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HealthRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *HealthRecordUpsertBulk) SetUpdatedAt(v time.Time) *HealthRecordUpsertBulk {
	return u.Update(func(s *HealthRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *HealthRecordUpsertBulk) UpdateUpdatedAt() *HealthRecordUpsertBulk {
	return u.Update(func(s *HealthRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *HealthRecordUpsertBulk) SetPatientID(v uuid.UUID) *HealthRecordUpsertBulk {
	return u.Update(func(s *HealthRecordUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *HealthRecordUpsertBulk) UpdatePatientID() *HealthRecordUpsertBulk {
	return u.Update(func(s *HealthRecordUpsert) {
		s.UpdatePatientID()
	})
}

// SetTitle sets the "title" field.
func (u *HealthRecordUpsertBulk) SetTitle(v string) *HealthRecordUpsertBulk {
	return u.Update(func(s *HealthRecordUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *HealthRecordUpsertBulk) UpdateTitle() *HealthRecordUpsertBulk {
	return u.Update(func(s *HealthRecordUpsert) {
		s.UpdateTitle()
	})
}

// SetFileURL sets the "file_url" field.
func (u *HealthRecordUpsertBulk) SetFileURL(v string) *HealthRecordUpsertBulk {
	return u.Update(func(s *HealthRecordUpsert) {
		s.SetFileURL(v)
	})
}

// UpdateFileURL sets the "file_url" field to the value that was provided on create.
func (u *HealthRecordUpsertBulk) UpdateFileURL() *HealthRecordUpsertBulk {
	return u.Update(func(s *HealthRecordUpsert) {
		s.UpdateFileURL()
	})
}

// SetFileKey sets the "file_key" field.
func (u *HealthRecordUpsertBulk) SetFileKey(v string) *HealthRecordUpsertBulk {
	return u.Update(func(s *HealthRecordUpsert) {
		s.SetFileKey(v)
	})
}

// UpdateFileKey sets the "file_key" field to the value that was provided on create.
func (u *HealthRecordUpsertBulk) UpdateFileKey() *HealthRecordUpsertBulk {
	return u.Update(func(s *HealthRecordUpsert) {
		s.UpdateFileKey()
	})
}

// Exec executes the query.
func (u *HealthRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the HealthRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for HealthRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HealthRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
