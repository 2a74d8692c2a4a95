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
	"github.com/sumit1004/neurolink_backend/internal/repo/conversation"
	"github.com/sumit1004/neurolink_backend/internal/repo/patient"
)

// ConversationCreate is the builder for creating a Conversation entity.
type ConversationCreate struct {
	config
	mutation *ConversationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConversationCreate) SetCreatedAt(v time.Time) *ConversationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableCreatedAt(v *time.Time) *ConversationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *ConversationCreate) SetPatientID(v uuid.UUID) *ConversationCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetPersonName sets the "person_name" field.
func (_c *ConversationCreate) SetPersonName(v string) *ConversationCreate {
	_c.mutation.SetPersonName(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *ConversationCreate) SetSummary(v string) *ConversationCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableSummary(v *string) *ConversationCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetTranscript sets the "transcript" field.
func (_c *ConversationCreate) SetTranscript(v string) *ConversationCreate {
	_c.mutation.SetTranscript(v)
	return _c
}

// SetNillableTranscript sets the "transcript" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableTranscript(v *string) *ConversationCreate {
	if v != nil {
		_c.SetTranscript(*v)
	}
	return _c
}

// SetAudioURL sets the "audio_url" field.
func (_c *ConversationCreate) SetAudioURL(v string) *ConversationCreate {
	_c.mutation.SetAudioURL(v)
	return _c
}

// SetNillableAudioURL sets the "audio_url" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableAudioURL(v *string) *ConversationCreate {
	if v != nil {
		_c.SetAudioURL(*v)
	}
	return _c
}

// SetOccurredAt sets the "occurred_at" field.
func (_c *ConversationCreate) SetOccurredAt(v time.Time) *ConversationCreate {
	_c.mutation.SetOccurredAt(v)
	return _c
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableOccurredAt(v *time.Time) *ConversationCreate {
	if v != nil {
		_c.SetOccurredAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConversationCreate) SetID(v uuid.UUID) *ConversationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableID(v *uuid.UUID) *ConversationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *ConversationCreate) SetPatient(v *Patient) *ConversationCreate {
	return _c.SetPatientID(v.ID)
}

// Mutation returns the ConversationMutation object of the builder.
func (_c *ConversationCreate) Mutation() *ConversationMutation {
	return _c.mutation
}

// Save creates the Conversation in the database.
func (_c *ConversationCreate) Save(ctx context.Context) (*Conversation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConversationCreate) SaveX(ctx context.Context) *Conversation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConversationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := conversation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.OccurredAt(); !ok {
		v := conversation.DefaultOccurredAt()
		_c.mutation.SetOccurredAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := conversation.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConversationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Conversation.created_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "Conversation.patient_id"`)}
	}
	if _, ok := _c.mutation.PersonName(); !ok {
		return &ValidationError{Name: "person_name", err: errors.New(`repo: missing required field "Conversation.person_name"`)}
	}
	if v, ok := _c.mutation.PersonName(); ok {
		if err := conversation.PersonNameValidator(v); err != nil {
			return &ValidationError{Name: "person_name", err: fmt.Errorf(`repo: validator failed for field "Conversation.person_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.AudioURL(); ok {
		if err := conversation.AudioURLValidator(v); err != nil {
			return &ValidationError{Name: "audio_url", err: fmt.Errorf(`repo: validator failed for field "Conversation.audio_url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OccurredAt(); !ok {
		return &ValidationError{Name: "occurred_at", err: errors.New(`repo: missing required field "Conversation.occurred_at"`)}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "Conversation.patient"`)}
	}
	return nil
}

func (_c *ConversationCreate) sqlSave(ctx context.Context) (*Conversation, error) {
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

func (_c *ConversationCreate) createSpec() (*Conversation, *sqlgraph.CreateSpec) {
	var (
		_node = &Conversation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conversation.Table, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(conversation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.PersonName(); ok {
		_spec.SetField(conversation.FieldPersonName, field.TypeString, value)
		_node.PersonName = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(conversation.FieldSummary, field.TypeString, value)
		_node.Summary = &value
	}
	if value, ok := _c.mutation.Transcript(); ok {
		_spec.SetField(conversation.FieldTranscript, field.TypeString, value)
		_node.Transcript = &value
	}
	if value, ok := _c.mutation.AudioURL(); ok {
		_spec.SetField(conversation.FieldAudioURL, field.TypeString, value)
		_node.AudioURL = &value
	}
	if value, ok := _c.mutation.OccurredAt(); ok {
		_spec.SetField(conversation.FieldOccurredAt, field.TypeTime, value)
		_node.OccurredAt = value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   conversation.PatientTable,
			Columns: []string{conversation.PatientColumn},
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
//	client.Conversation.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ConversationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ConversationCreate) OnConflict(opts ...sql.ConflictOption) *ConversationUpsertOne {
	_c.conflict = opts
	return &ConversationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Conversation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ConversationCreate) OnConflictColumns(columns ...string) *ConversationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ConversationUpsertOne{
		create: _c,
	}
}

type (
	// ConversationUpsertOne is the builder for "upsert"-ing
	//  one Conversation node.
	ConversationUpsertOne struct {
		create *ConversationCreate
	}

	// ConversationUpsert is the "OnConflict" setter.
	ConversationUpsert struct {
		*sql.UpdateSet
	}
)

// SetPatientID sets the "patient_id" field.
func (u *ConversationUpsert) SetPatientID(v uuid.UUID) *ConversationUpsert {
	u.Set(conversation.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *ConversationUpsert) UpdatePatientID() *ConversationUpsert {
	u.SetExcluded(conversation.FieldPatientID)
	return u
}

// SetPersonName sets the "person_name" field.
func (u *ConversationUpsert) SetPersonName(v string) *ConversationUpsert {
	u.Set(conversation.FieldPersonName, v)
	return u
}

// UpdatePersonName sets the "person_name" field to the value that was provided on create.
func (u *ConversationUpsert) UpdatePersonName() *ConversationUpsert {
	u.SetExcluded(conversation.FieldPersonName)
	return u
}

// SetSummary sets the "summary" field.
func (u *ConversationUpsert) SetSummary(v string) *ConversationUpsert {
	u.Set(conversation.FieldSummary, v)
	return u
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateSummary() *ConversationUpsert {
	u.SetExcluded(conversation.FieldSummary)
	return u
}

// ClearSummary clears the value of the "summary" field.
func (u *ConversationUpsert) ClearSummary() *ConversationUpsert {
	u.SetNull(conversation.FieldSummary)
	return u
}

// SetTranscript sets the "transcript" field.
func (u *ConversationUpsert) SetTranscript(v string) *ConversationUpsert {
	u.Set(conversation.FieldTranscript, v)
	return u
}

// UpdateTranscript sets the "transcript" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateTranscript() *ConversationUpsert {
	u.SetExcluded(conversation.FieldTranscript)
	return u
}

// ClearTranscript clears the value of the "transcript" field.
func (u *ConversationUpsert) ClearTranscript() *ConversationUpsert {
	u.SetNull(conversation.FieldTranscript)
	return u
}

// SetAudioURL sets the "audio_url" field.
func (u *ConversationUpsert) SetAudioURL(v string) *ConversationUpsert {
	u.Set(conversation.FieldAudioURL, v)
	return u
}

// UpdateAudioURL sets the "audio_url" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateAudioURL() *ConversationUpsert {
	u.SetExcluded(conversation.FieldAudioURL)
	return u
}

// ClearAudioURL clears the value of the "audio_url" field.
func (u *ConversationUpsert) ClearAudioURL() *ConversationUpsert {
	u.SetNull(conversation.FieldAudioURL)
	return u
}

// SetOccurredAt sets the "occurred_at" field.
func (u *ConversationUpsert) SetOccurredAt(v time.Time) *ConversationUpsert {
	u.Set(conversation.FieldOccurredAt, v)
	return u
}

// UpdateOccurredAt sets the "occurred_at" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateOccurredAt() *ConversationUpsert {
	u.SetExcluded(conversation.FieldOccurredAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Conversation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(conversation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ConversationUpsertOne) UpdateNewValues() *ConversationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(conversation.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(conversation.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Conversation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ConversationUpsertOne) Ignore() *ConversationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ConversationUpsertOne) DoNothing() *ConversationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ConversationCreate.OnConflict
// documentation for more info.
func (u *ConversationUpsertOne) Update(set func(*ConversationUpsert)) *ConversationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ConversationUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *ConversationUpsertOne) SetPatientID(v uuid.UUID) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdatePatientID() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdatePatientID()
	})
}

// SetPersonName sets the "person_name" field.
func (u *ConversationUpsertOne) SetPersonName(v string) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetPersonName(v)
	})
}

// UpdatePersonName sets the "person_name" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdatePersonName() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdatePersonName()
	})
}

// SetSummary sets the "summary" field.
func (u *ConversationUpsertOne) SetSummary(v string) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateSummary() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *ConversationUpsertOne) ClearSummary() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearSummary()
	})
}

// SetTranscript sets the "transcript" field.
func (u *ConversationUpsertOne) SetTranscript(v string) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetTranscript(v)
	})
}

// UpdateTranscript sets the "transcript" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateTranscript() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateTranscript()
	})
}

// ClearTranscript clears the value of the "transcript" field.
func (u *ConversationUpsertOne) ClearTranscript() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearTranscript()
	})
}

// SetAudioURL sets the "audio_url" field.
func (u *ConversationUpsertOne) SetAudioURL(v string) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetAudioURL(v)
	})
}

// UpdateAudioURL sets the "audio_url" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateAudioURL() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateAudioURL()
	})
}

// ClearAudioURL clears the value of the "audio_url" field.
func (u *ConversationUpsertOne) ClearAudioURL() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearAudioURL()
	})
}

// SetOccurredAt sets the "occurred_at" field.
func (u *ConversationUpsertOne) SetOccurredAt(v time.Time) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetOccurredAt(v)
	})
}

// UpdateOccurredAt sets the "occurred_at" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateOccurredAt() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateOccurredAt()
	})
}

// Exec executes the query.
func (u *ConversationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ConversationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ConversationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ConversationUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ConversationUpsertOne.ID is not supported by MySQL driver. Use ConversationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ConversationUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ConversationCreateBulk is the builder for creating many Conversation entities in bulk.
type ConversationCreateBulk struct {
	config
	err      error
	builders []*ConversationCreate
	conflict []sql.ConflictOption
}

// Save creates the Conversation entities in the database.
func (_c *ConversationCreateBulk) Save(ctx context.Context) ([]*Conversation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Conversation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConversationMutation)
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
func (_c *ConversationCreateBulk) SaveX(ctx context.Context) []*Conversation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Conversation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ConversationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ConversationCreateBulk) OnConflict(opts ...sql.ConflictOption) *ConversationUpsertBulk {
	_c.conflict = opts
	return &ConversationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Conversation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ConversationCreateBulk) OnConflictColumns(columns ...string) *ConversationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ConversationUpsertBulk{
		create: _c,
	}
}

// ConversationUpsertBulk is the builder for "upsert"-ing
// a bulk of Conversation nodes.
type ConversationUpsertBulk struct {
	create *ConversationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Conversation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(conversation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ConversationUpsertBulk) UpdateNewValues() *ConversationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(conversation.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(conversation.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Conversation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ConversationUpsertBulk) Ignore() *ConversationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ConversationUpsertBulk) DoNothing() *ConversationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ConversationCreateBulk.OnConflict
// documentation for more info.
func (u *ConversationUpsertBulk) Update(set func(*ConversationUpsert)) *ConversationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ConversationUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *ConversationUpsertBulk) SetPatientID(v uuid.UUID) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdatePatientID() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdatePatientID()
	})
}

// SetPersonName sets the "person_name" field.
func (u *ConversationUpsertBulk) SetPersonName(v string) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetPersonName(v)
	})
}

// UpdatePersonName sets the "person_name" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdatePersonName() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdatePersonName()
	})
}

// SetSummary sets the "summary" field.
func (u *ConversationUpsertBulk) SetSummary(v string) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateSummary() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *ConversationUpsertBulk) ClearSummary() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearSummary()
	})
}

// SetTranscript sets the "transcript" field.
func (u *ConversationUpsertBulk) SetTranscript(v string) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetTranscript(v)
	})
}

// UpdateTranscript sets the "transcript" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateTranscript() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateTranscript()
	})
}

// ClearTranscript clears the value of the "transcript" field.
func (u *ConversationUpsertBulk) ClearTranscript() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearTranscript()
	})
}

// SetAudioURL sets the "audio_url" field.
func (u *ConversationUpsertBulk) SetAudioURL(v string) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetAudioURL(v)
	})
}

// UpdateAudioURL sets the "audio_url" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateAudioURL() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateAudioURL()
	})
}

// ClearAudioURL clears the value of the "audio_url" field.
func (u *ConversationUpsertBulk) ClearAudioURL() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearAudioURL()
	})
}

// SetOccurredAt sets the "occurred_at" field.
func (u *ConversationUpsertBulk) SetOccurredAt(v time.Time) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetOccurredAt(v)
	})
}

// UpdateOccurredAt sets the "occurred_at" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateOccurredAt() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateOccurredAt()
	})
}

// Exec executes the query.
func (u *ConversationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ConversationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ConversationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ConversationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
