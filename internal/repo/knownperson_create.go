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
	"github.com/sumit1004/neurolink_backend/internal/repo/knownperson"
	"github.com/sumit1004/neurolink_backend/internal/repo/patient"
)

// KnownPersonCreate is the builder for creating a KnownPerson entity.
type KnownPersonCreate struct {
	config
	mutation *KnownPersonMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *KnownPersonCreate) SetCreatedAt(v time.Time) *KnownPersonCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *KnownPersonCreate) SetNillableCreatedAt(v *time.Time) *KnownPersonCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *KnownPersonCreate) SetUpdatedAt(v time.Time) *KnownPersonCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *KnownPersonCreate) SetNillableUpdatedAt(v *time.Time) *KnownPersonCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *KnownPersonCreate) SetPatientID(v uuid.UUID) *KnownPersonCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *KnownPersonCreate) SetName(v string) *KnownPersonCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetRelation sets the "relation" field.
func (_c *KnownPersonCreate) SetRelation(v string) *KnownPersonCreate {
	_c.mutation.SetRelation(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *KnownPersonCreate) SetNotes(v string) *KnownPersonCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *KnownPersonCreate) SetNillableNotes(v *string) *KnownPersonCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetPhotoURL sets the "photo_url" field.
func (_c *KnownPersonCreate) SetPhotoURL(v string) *KnownPersonCreate {
	_c.mutation.SetPhotoURL(v)
	return _c
}

// SetPhotoKey sets the "photo_key" field.
func (_c *KnownPersonCreate) SetPhotoKey(v string) *KnownPersonCreate {
	_c.mutation.SetPhotoKey(v)
	return _c
}

// SetID sets the "id" field.
func (_c *KnownPersonCreate) SetID(v uuid.UUID) *KnownPersonCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *KnownPersonCreate) SetNillableID(v *uuid.UUID) *KnownPersonCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *KnownPersonCreate) SetPatient(v *Patient) *KnownPersonCreate {
	return _c.SetPatientID(v.ID)
}

// Mutation returns the KnownPersonMutation object of the builder.
func (_c *KnownPersonCreate) Mutation() *KnownPersonMutation {
	return _c.mutation
}

// Save creates the KnownPerson in the database.
func (_c *KnownPersonCreate) Save(ctx context.Context) (*KnownPerson, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *KnownPersonCreate) SaveX(ctx context.Context) *KnownPerson {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnownPersonCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnownPersonCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *KnownPersonCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := knownperson.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := knownperson.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := knownperson.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *KnownPersonCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "KnownPerson.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "KnownPerson.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "KnownPerson.patient_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "KnownPerson.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := knownperson.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "KnownPerson.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Relation(); !ok {
		return &ValidationError{Name: "relation", err: errors.New(`repo: missing required field "KnownPerson.relation"`)}
	}
	if v, ok := _c.mutation.Relation(); ok {
		if err := knownperson.RelationValidator(v); err != nil {
			return &ValidationError{Name: "relation", err: fmt.Errorf(`repo: validator failed for field "KnownPerson.relation": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PhotoURL(); !ok {
		return &ValidationError{Name: "photo_url", err: errors.New(`repo: missing required field "KnownPerson.photo_url"`)}
	}
	if v, ok := _c.mutation.PhotoURL(); ok {
		if err := knownperson.PhotoURLValidator(v); err != nil {
			return &ValidationError{Name: "photo_url", err: fmt.Errorf(`repo: validator failed for field "KnownPerson.photo_url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PhotoKey(); !ok {
		return &ValidationError{Name: "photo_key", err: errors.New(`repo: missing required field "KnownPerson.photo_key"`)}
	}
	if v, ok := _c.mutation.PhotoKey(); ok {
		if err := knownperson.PhotoKeyValidator(v); err != nil {
			return &ValidationError{Name: "photo_key", err: fmt.Errorf(`repo: validator failed for field "KnownPerson.photo_key": %w`, err)}
		}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "KnownPerson.patient"`)}
	}
	return nil
}

func (_c *KnownPersonCreate) sqlSave(ctx context.Context) (*KnownPerson, error) {
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

func (_c *KnownPersonCreate) createSpec() (*KnownPerson, *sqlgraph.CreateSpec) {
	var (
		_node = &KnownPerson{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(knownperson.Table, sqlgraph.NewFieldSpec(knownperson.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(knownperson.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(knownperson.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(knownperson.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Relation(); ok {
		_spec.SetField(knownperson.FieldRelation, field.TypeString, value)
		_node.Relation = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(knownperson.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.PhotoURL(); ok {
		_spec.SetField(knownperson.FieldPhotoURL, field.TypeString, value)
		_node.PhotoURL = value
	}
	if value, ok := _c.mutation.PhotoKey(); ok {
		_spec.SetField(knownperson.FieldPhotoKey, field.TypeString, value)
		_node.PhotoKey = value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
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
		_node.PatientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.KnownPerson.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.KnownPersonUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *KnownPersonCreate) OnConflict(opts ...sql.ConflictOption) *KnownPersonUpsertOne {
	_c.conflict = opts
	return &KnownPersonUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.KnownPerson.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *KnownPersonCreate) OnConflictColumns(columns ...string) *KnownPersonUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &KnownPersonUpsertOne{
		create: _c,
	}
}

type (
	// KnownPersonUpsertOne is the builder for "upsert"-ing
	//  one KnownPerson node.
	KnownPersonUpsertOne struct {
		create *KnownPersonCreate
	}

	// KnownPersonUpsert is the "OnConflict" setter.
	KnownPersonUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *KnownPersonUpsert) SetUpdatedAt(v time.Time) *KnownPersonUpsert {
	u.Set(knownperson.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *KnownPersonUpsert) UpdateUpdatedAt() *KnownPersonUpsert {
	u.SetExcluded(knownperson.FieldUpdatedAt)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *KnownPersonUpsert) SetPatientID(v uuid.UUID) *KnownPersonUpsert {
	u.Set(knownperson.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *KnownPersonUpsert) UpdatePatientID() *KnownPersonUpsert {
	u.SetExcluded(knownperson.FieldPatientID)
	return u
}

// SetName sets the "name" field.
func (u *KnownPersonUpsert) SetName(v string) *KnownPersonUpsert {
	u.Set(knownperson.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *KnownPersonUpsert) UpdateName() *KnownPersonUpsert {
	u.SetExcluded(knownperson.FieldName)
	return u
}

// SetRelation sets the "relation" field.
func (u *KnownPersonUpsert) SetRelation(v string) *KnownPersonUpsert {
	u.Set(knownperson.FieldRelation, v)
	return u
}

// UpdateRelation sets the "relation" field to the value that was provided on create.
func (u *KnownPersonUpsert) UpdateRelation() *KnownPersonUpsert {
	u.SetExcluded(knownperson.FieldRelation)
	return u
}

// SetNotes sets the "notes" field.
func (u *KnownPersonUpsert) SetNotes(v string) *KnownPersonUpsert {
	u.Set(knownperson.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *KnownPersonUpsert) UpdateNotes() *KnownPersonUpsert {
	u.SetExcluded(knownperson.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *KnownPersonUpsert) ClearNotes() *KnownPersonUpsert {
	u.SetNull(knownperson.FieldNotes)
	return u
}

// SetPhotoURL sets the "photo_url" field.
func (u *KnownPersonUpsert) SetPhotoURL(v string) *KnownPersonUpsert {
	u.Set(knownperson.FieldPhotoURL, v)
	return u
}

// UpdatePhotoURL sets the "photo_url" field to the value that was provided on create.
func (u *KnownPersonUpsert) UpdatePhotoURL() *KnownPersonUpsert {
	u.SetExcluded(knownperson.FieldPhotoURL)
	return u
}

// SetPhotoKey sets the "photo_key" field.
func (u *KnownPersonUpsert) SetPhotoKey(v string) *KnownPersonUpsert {
	u.Set(knownperson.FieldPhotoKey, v)
	return u
}

// UpdatePhotoKey sets the "photo_key" field to the value that was provided on create.
func (u *KnownPersonUpsert) UpdatePhotoKey() *KnownPersonUpsert {
	u.SetExcluded(knownperson.FieldPhotoKey)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.KnownPerson.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(knownperson.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *KnownPersonUpsertOne) UpdateNewValues() *KnownPersonUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(knownperson.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(knownperson.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.KnownPerson.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *KnownPersonUpsertOne) Ignore() *KnownPersonUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *KnownPersonUpsertOne) DoNothing() *KnownPersonUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the KnownPersonCreate.OnConflict
// documentation for more info.
func (u *KnownPersonUpsertOne) Update(set func(*KnownPersonUpsert)) *KnownPersonUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&KnownPersonUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *KnownPersonUpsertOne) SetUpdatedAt(v time.Time) *KnownPersonUpsertOne {
	return u.Update(func(s *KnownPersonUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *KnownPersonUpsertOne) UpdateUpdatedAt() *KnownPersonUpsertOne {
	return u.Update(func(s *KnownPersonUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *KnownPersonUpsertOne) SetPatientID(v uuid.UUID) *KnownPersonUpsertOne {
	return u.Update(func(s *KnownPersonUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *KnownPersonUpsertOne) UpdatePatientID() *KnownPersonUpsertOne {
	return u.Update(func(s *KnownPersonUpsert) {
		s.UpdatePatientID()
	})
}

// SetName sets the "name" field.
func (u *KnownPersonUpsertOne) SetName(v string) *KnownPersonUpsertOne {
	return u.Update(func(s *KnownPersonUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *KnownPersonUpsertOne) UpdateName() *KnownPersonUpsertOne {
	return u.Update(func(s *KnownPersonUpsert) {
		s.UpdateName()
	})
}

// SetRelation sets the "relation" field.
func (u *KnownPersonUpsertOne) SetRelation(v string) *KnownPersonUpsertOne {
	return u.Update(func(s *KnownPersonUpsert) {
		s.SetRelation(v)
	})
}

// UpdateRelation sets the "relation" field to the value that was provided on create.
func (u *KnownPersonUpsertOne) UpdateRelation() *KnownPersonUpsertOne {
	return u.Update(func(s *KnownPersonUpsert) {
		s.UpdateRelation()
	})
}

// SetNotes sets the "notes" field.
func (u *KnownPersonUpsertOne) SetNotes(v string) *KnownPersonUpsertOne {
	return u.Update(func(s *KnownPersonUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *KnownPersonUpsertOne) UpdateNotes() *KnownPersonUpsertOne {
	return u.Update(func(s *KnownPersonUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *KnownPersonUpsertOne) ClearNotes() *KnownPersonUpsertOne {
	return u.Update(func(s *KnownPersonUpsert) {
		s.ClearNotes()
	})
}

// SetPhotoURL sets the "photo_url" field.
func (u *KnownPersonUpsertOne) SetPhotoURL(v string) *KnownPersonUpsertOne {
	return u.Update(func(s *KnownPersonUpsert) {
		s.SetPhotoURL(v)
	})
}

// UpdatePhotoURL sets the "photo_url" field to the value that was provided on create.
func (u *KnownPersonUpsertOne) UpdatePhotoURL() *KnownPersonUpsertOne {
	return u.Update(func(s *KnownPersonUpsert) {
		s.UpdatePhotoURL()
	})
}

// SetPhotoKey sets the "photo_key" field.
func (u *KnownPersonUpsertOne) SetPhotoKey(v string) *KnownPersonUpsertOne {
	return u.Update(func(s *KnownPersonUpsert) {
		s.SetPhotoKey(v)
	})
}

// UpdatePhotoKey sets the "photo_key" field to the value that was provided on create.
func (u *KnownPersonUpsertOne) UpdatePhotoKey() *KnownPersonUpsertOne {
	return u.Update(func(s *KnownPersonUpsert) {
		s.UpdatePhotoKey()
	})
}

// Exec executes the query.
func (u *KnownPersonUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for KnownPersonCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *KnownPersonUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *KnownPersonUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: KnownPersonUpsertOne.ID is not supported by MySQL driver. Use KnownPersonUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *KnownPersonUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// KnownPersonCreateBulk is the builder for creating many KnownPerson entities in bulk.
type KnownPersonCreateBulk struct {
	config
	err      error
	builders []*KnownPersonCreate
	conflict []sql.ConflictOption
}

// Save creates the KnownPerson entities in the database.
func (_c *KnownPersonCreateBulk) Save(ctx context.Context) ([]*KnownPerson, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*KnownPerson, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*KnownPersonMutation)
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
func (_c *KnownPersonCreateBulk) SaveX(ctx context.Context) []*KnownPerson {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnownPersonCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnownPersonCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.KnownPerson.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.KnownPersonUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *KnownPersonCreateBulk) OnConflict(opts ...sql.ConflictOption) *KnownPersonUpsertBulk {
	_c.conflict = opts
	return &KnownPersonUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.KnownPerson.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *KnownPersonCreateBulk) OnConflictColumns(columns ...string) *KnownPersonUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &KnownPersonUpsertBulk{
		create: _c,
	}
}

// KnownPersonUpsertBulk is the builder for "upsert"-ing
// a bulk of KnownPerson nodes.
type KnownPersonUpsertBulk struct {
	create *KnownPersonCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.KnownPerson.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(knownperson.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *KnownPersonUpsertBulk) UpdateNewValues() *KnownPersonUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(knownperson.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(knownperson.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.KnownPerson.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *KnownPersonUpsertBulk) Ignore() *KnownPersonUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *KnownPersonUpsertBulk) DoNothing() *KnownPersonUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the KnownPersonCreateBulk.OnConflict
// documentation for more info.
func (u *KnownPersonUpsertBulk) Update(set func(*KnownPersonUpsert)) *KnownPersonUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&KnownPersonUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *KnownPersonUpsertBulk) SetUpdatedAt(v time.Time) *KnownPersonUpsertBulk {
	return u.Update(func(s *KnownPersonUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *KnownPersonUpsertBulk) UpdateUpdatedAt() *KnownPersonUpsertBulk {
	return u.Update(func(s *KnownPersonUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *KnownPersonUpsertBulk) SetPatientID(v uuid.UUID) *KnownPersonUpsertBulk {
	return u.Update(func(s *KnownPersonUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *KnownPersonUpsertBulk) UpdatePatientID() *KnownPersonUpsertBulk {
	return u.Update(func(s *KnownPersonUpsert) {
		s.UpdatePatientID()
	})
}

// SetName sets the "name" field.
func (u *KnownPersonUpsertBulk) SetName(v string) *KnownPersonUpsertBulk {
	return u.Update(func(s *KnownPersonUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *KnownPersonUpsertBulk) UpdateName() *KnownPersonUpsertBulk {
	return u.Update(func(s *KnownPersonUpsert) {
		s.UpdateName()
	})
}

// SetRelation sets the "relation" field.
func (u *KnownPersonUpsertBulk) SetRelation(v string) *KnownPersonUpsertBulk {
	return u.Update(func(s *KnownPersonUpsert) {
		s.SetRelation(v)
	})
}

// UpdateRelation sets the "relation" field to the value that was provided on create.
func (u *KnownPersonUpsertBulk) UpdateRelation() *KnownPersonUpsertBulk {
	return u.Update(func(s *KnownPersonUpsert) {
		s.UpdateRelation()
	})
}

// SetNotes sets the "notes" field.
func (u *KnownPersonUpsertBulk) SetNotes(v string) *KnownPersonUpsertBulk {
	return u.Update(func(s *KnownPersonUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *KnownPersonUpsertBulk) UpdateNotes() *KnownPersonUpsertBulk {
	return u.Update(func(s *KnownPersonUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *KnownPersonUpsertBulk) ClearNotes() *KnownPersonUpsertBulk {
	return u.Update(func(s *KnownPersonUpsert) {
		s.ClearNotes()
	})
}

// SetPhotoURL sets the "photo_url" field.
func (u *KnownPersonUpsertBulk) SetPhotoURL(v string) *KnownPersonUpsertBulk {
	return u.Update(func(s *KnownPersonUpsert) {
		s.SetPhotoURL(v)
	})
}

// UpdatePhotoURL sets the "photo_url" field to the value that was provided on create.
func (u *KnownPersonUpsertBulk) UpdatePhotoURL() *KnownPersonUpsertBulk {
	return u.Update(func(s *KnownPersonUpsert) {
		s.UpdatePhotoURL()
	})
}

// SetPhotoKey sets the "photo_key" field.
func (u *KnownPersonUpsertBulk) SetPhotoKey(v string) *KnownPersonUpsertBulk {
	return u.Update(func(s *KnownPersonUpsert) {
		s.SetPhotoKey(v)
	})
}

// UpdatePhotoKey sets the "photo_key" field to the value that was provided on create.
func (u *KnownPersonUpsertBulk) UpdatePhotoKey() *KnownPersonUpsertBulk {
	return u.Update(func(s *KnownPersonUpsert) {
		s.UpdatePhotoKey()
	})
}

// Exec executes the query.
func (u *KnownPersonUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the KnownPersonCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for KnownPersonCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *KnownPersonUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
