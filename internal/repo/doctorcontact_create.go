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
	"github.com/sumit1004/neurolink_backend/internal/repo/doctorcontact"
	"github.com/sumit1004/neurolink_backend/internal/repo/patient"
)

// DoctorContactCreate is the builder for creating a DoctorContact entity.
type DoctorContactCreate struct {
	config
	mutation *DoctorContactMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *DoctorContactCreate) SetCreatedAt(v time.Time) *DoctorContactCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DoctorContactCreate) SetNillableCreatedAt(v *time.Time) *DoctorContactCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DoctorContactCreate) SetUpdatedAt(v time.Time) *DoctorContactCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DoctorContactCreate) SetNillableUpdatedAt(v *time.Time) *DoctorContactCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *DoctorContactCreate) SetPatientID(v uuid.UUID) *DoctorContactCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *DoctorContactCreate) SetName(v string) *DoctorContactCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSpeciality sets the "speciality" field.
func (_c *DoctorContactCreate) SetSpeciality(v string) *DoctorContactCreate {
	_c.mutation.SetSpeciality(v)
	return _c
}

// SetPhone sets the "phone" field.
func (_c *DoctorContactCreate) SetPhone(v string) *DoctorContactCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *DoctorContactCreate) SetEmail(v string) *DoctorContactCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *DoctorContactCreate) SetNillableEmail(v *string) *DoctorContactCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *DoctorContactCreate) SetNotes(v string) *DoctorContactCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *DoctorContactCreate) SetNillableNotes(v *string) *DoctorContactCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DoctorContactCreate) SetID(v uuid.UUID) *DoctorContactCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DoctorContactCreate) SetNillableID(v *uuid.UUID) *DoctorContactCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *DoctorContactCreate) SetPatient(v *Patient) *DoctorContactCreate {
	return _c.SetPatientID(v.ID)
}

// Mutation returns the DoctorContactMutation object of the builder.
func (_c *DoctorContactCreate) Mutation() *DoctorContactMutation {
	return _c.mutation
}

// Save creates the DoctorContact in the database.
func (_c *DoctorContactCreate) Save(ctx context.Context) (*DoctorContact, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DoctorContactCreate) SaveX(ctx context.Context) *DoctorContact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoctorContactCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoctorContactCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DoctorContactCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := doctorcontact.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := doctorcontact.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := doctorcontact.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DoctorContactCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "DoctorContact.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "DoctorContact.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "DoctorContact.patient_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "DoctorContact.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := doctorcontact.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "DoctorContact.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Speciality(); !ok {
		return &ValidationError{Name: "speciality", err: errors.New(`repo: missing required field "DoctorContact.speciality"`)}
	}
	if v, ok := _c.mutation.Speciality(); ok {
		if err := doctorcontact.SpecialityValidator(v); err != nil {
			return &ValidationError{Name: "speciality", err: fmt.Errorf(`repo: validator failed for field "DoctorContact.speciality": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Phone(); !ok {
		return &ValidationError{Name: "phone", err: errors.New(`repo: missing required field "DoctorContact.phone"`)}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := doctorcontact.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "DoctorContact.phone": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := doctorcontact.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "DoctorContact.email": %w`, err)}
		}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "DoctorContact.patient"`)}
	}
	return nil
}

func (_c *DoctorContactCreate) sqlSave(ctx context.Context) (*DoctorContact, error) {
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

func (_c *DoctorContactCreate) createSpec() (*DoctorContact, *sqlgraph.CreateSpec) {
	var (
		_node = &DoctorContact{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(doctorcontact.Table, sqlgraph.NewFieldSpec(doctorcontact.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(doctorcontact.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(doctorcontact.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(doctorcontact.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Speciality(); ok {
		_spec.SetField(doctorcontact.FieldSpeciality, field.TypeString, value)
		_node.Speciality = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(doctorcontact.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(doctorcontact.FieldEmail, field.TypeString, value)
		_node.Email = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(doctorcontact.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
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
		_node.PatientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DoctorContact.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DoctorContactUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DoctorContactCreate) OnConflict(opts ...sql.ConflictOption) *DoctorContactUpsertOne {
	_c.conflict = opts
	return &DoctorContactUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DoctorContact.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DoctorContactCreate) OnConflictColumns(columns ...string) *DoctorContactUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DoctorContactUpsertOne{
		create: _c,
	}
}

type (
	// DoctorContactUpsertOne is the builder for "upsert"-ing
	//  one DoctorContact node.
	DoctorContactUpsertOne struct {
		create *DoctorContactCreate
	}

	// DoctorContactUpsert is the "OnConflict" setter.
	DoctorContactUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *DoctorContactUpsert) SetUpdatedAt(v time.Time) *DoctorContactUpsert {
	u.Set(doctorcontact.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DoctorContactUpsert) UpdateUpdatedAt() *DoctorContactUpsert {
	u.SetExcluded(doctorcontact.FieldUpdatedAt)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *DoctorContactUpsert) SetPatientID(v uuid.UUID) *DoctorContactUpsert {
	u.Set(doctorcontact.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *DoctorContactUpsert) UpdatePatientID() *DoctorContactUpsert {
	u.SetExcluded(doctorcontact.FieldPatientID)
	return u
}

// SetName sets the "name" field.
func (u *DoctorContactUpsert) SetName(v string) *DoctorContactUpsert {
	u.Set(doctorcontact.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *DoctorContactUpsert) UpdateName() *DoctorContactUpsert {
	u.SetExcluded(doctorcontact.FieldName)
	return u
}

// SetSpeciality sets the "speciality" field.
func (u *DoctorContactUpsert) SetSpeciality(v string) *DoctorContactUpsert {
	u.Set(doctorcontact.FieldSpeciality, v)
	return u
}

// UpdateSpeciality sets the "speciality" field to the value that was provided on create.
func (u *DoctorContactUpsert) UpdateSpeciality() *DoctorContactUpsert {
	u.SetExcluded(doctorcontact.FieldSpeciality)
	return u
}

// SetPhone sets the "phone" field.
func (u *DoctorContactUpsert) SetPhone(v string) *DoctorContactUpsert {
	u.Set(doctorcontact.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *DoctorContactUpsert) UpdatePhone() *DoctorContactUpsert {
	u.SetExcluded(doctorcontact.FieldPhone)
	return u
}

// SetEmail sets the "email" field.
func (u *DoctorContactUpsert) SetEmail(v string) *DoctorContactUpsert {
	u.Set(doctorcontact.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *DoctorContactUpsert) UpdateEmail() *DoctorContactUpsert {
	u.SetExcluded(doctorcontact.FieldEmail)
	return u
}

// ClearEmail clears the value of the "email" field.
func (u *DoctorContactUpsert) ClearEmail() *DoctorContactUpsert {
	u.SetNull(doctorcontact.FieldEmail)
	return u
}

// SetNotes sets the "notes" field.
func (u *DoctorContactUpsert) SetNotes(v string) *DoctorContactUpsert {
	u.Set(doctorcontact.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *DoctorContactUpsert) UpdateNotes() *DoctorContactUpsert {
	u.SetExcluded(doctorcontact.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *DoctorContactUpsert) ClearNotes() *DoctorContactUpsert {
	u.SetNull(doctorcontact.FieldNotes)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DoctorContact.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(doctorcontact.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DoctorContactUpsertOne) UpdateNewValues() *DoctorContactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(doctorcontact.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(doctorcontact.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DoctorContact.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DoctorContactUpsertOne) Ignore() *DoctorContactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DoctorContactUpsertOne) DoNothing() *DoctorContactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DoctorContactCreate.OnConflict
// documentation for more info.
func (u *DoctorContactUpsertOne) Update(set func(*DoctorContactUpsert)) *DoctorContactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DoctorContactUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DoctorContactUpsertOne) SetUpdatedAt(v time.Time) *DoctorContactUpsertOne {
	return u.Update(func(s *DoctorContactUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DoctorContactUpsertOne) UpdateUpdatedAt() *DoctorContactUpsertOne {
	return u.Update(func(s *DoctorContactUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *DoctorContactUpsertOne) SetPatientID(v uuid.UUID) *DoctorContactUpsertOne {
	return u.Update(func(s *DoctorContactUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *DoctorContactUpsertOne) UpdatePatientID() *DoctorContactUpsertOne {
	return u.Update(func(s *DoctorContactUpsert) {
		s.UpdatePatientID()
	})
}

// SetName sets the "name" field.
func (u *DoctorContactUpsertOne) SetName(v string) *DoctorContactUpsertOne {
	return u.Update(func(s *DoctorContactUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *DoctorContactUpsertOne) UpdateName() *DoctorContactUpsertOne {
	return u.Update(func(s *DoctorContactUpsert) {
		s.UpdateName()
	})
}

// SetSpeciality sets the "speciality" field.
func (u *DoctorContactUpsertOne) SetSpeciality(v string) *DoctorContactUpsertOne {
	return u.Update(func(s *DoctorContactUpsert) {
		s.SetSpeciality(v)
	})
}

// UpdateSpeciality sets the "speciality" field to the value that was provided on create.
func (u *DoctorContactUpsertOne) UpdateSpeciality() *DoctorContactUpsertOne {
	return u.Update(func(s *DoctorContactUpsert) {
		s.UpdateSpeciality()
	})
}

// SetPhone sets the "phone" field.
func (u *DoctorContactUpsertOne) SetPhone(v string) *DoctorContactUpsertOne {
	return u.Update(func(s *DoctorContactUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *DoctorContactUpsertOne) UpdatePhone() *DoctorContactUpsertOne {
	return u.Update(func(s *DoctorContactUpsert) {
		s.UpdatePhone()
	})
}

// SetEmail sets the "email" field.
func (u *DoctorContactUpsertOne) SetEmail(v string) *DoctorContactUpsertOne {
	return u.Update(func(s *DoctorContactUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *DoctorContactUpsertOne) UpdateEmail() *DoctorContactUpsertOne {
	return u.Update(func(s *DoctorContactUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *DoctorContactUpsertOne) ClearEmail() *DoctorContactUpsertOne {
	return u.Update(func(s *DoctorContactUpsert) {
		s.ClearEmail()
	})
}

// SetNotes sets the "notes" field.
func (u *DoctorContactUpsertOne) SetNotes(v string) *DoctorContactUpsertOne {
	return u.Update(func(s *DoctorContactUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *DoctorContactUpsertOne) UpdateNotes() *DoctorContactUpsertOne {
	return u.Update(func(s *DoctorContactUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *DoctorContactUpsertOne) ClearNotes() *DoctorContactUpsertOne {
	return u.Update(func(s *DoctorContactUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *DoctorContactUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DoctorContactCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DoctorContactUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DoctorContactUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: DoctorContactUpsertOne.ID is not supported by MySQL driver. Use DoctorContactUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DoctorContactUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DoctorContactCreateBulk is the builder for creating many DoctorContact entities in bulk.
type DoctorContactCreateBulk struct {
	config
	err      error
	builders []*DoctorContactCreate
	conflict []sql.ConflictOption
}

// Save creates the DoctorContact entities in the database.
func (_c *DoctorContactCreateBulk) Save(ctx context.Context) ([]*DoctorContact, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DoctorContact, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DoctorContactMutation)
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
func (_c *DoctorContactCreateBulk) SaveX(ctx context.Context) []*DoctorContact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoctorContactCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoctorContactCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DoctorContact.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DoctorContactUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DoctorContactCreateBulk) OnConflict(opts ...sql.ConflictOption) *DoctorContactUpsertBulk {
	_c.conflict = opts
	return &DoctorContactUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DoctorContact.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DoctorContactCreateBulk) OnConflictColumns(columns ...string) *DoctorContactUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DoctorContactUpsertBulk{
		create: _c,
	}
}

// DoctorContactUpsertBulk is the builder for "upsert"-ing
// a bulk of DoctorContact nodes.
type DoctorContactUpsertBulk struct {
	create *DoctorContactCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DoctorContact.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(doctorcontact.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DoctorContactUpsertBulk) UpdateNewValues() *DoctorContactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(doctorcontact.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(doctorcontact.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DoctorContact.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DoctorContactUpsertBulk) Ignore() *DoctorContactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DoctorContactUpsertBulk) DoNothing() *DoctorContactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DoctorContactCreateBulk.OnConflict
// documentation for more info.
func (u *DoctorContactUpsertBulk) Update(set func(*DoctorContactUpsert)) *DoctorContactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DoctorContactUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DoctorContactUpsertBulk) SetUpdatedAt(v time.Time) *DoctorContactUpsertBulk {
	return u.Update(func(s *DoctorContactUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DoctorContactUpsertBulk) UpdateUpdatedAt() *DoctorContactUpsertBulk {
	return u.Update(func(s *DoctorContactUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *DoctorContactUpsertBulk) SetPatientID(v uuid.UUID) *DoctorContactUpsertBulk {
	return u.Update(func(s *DoctorContactUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *DoctorContactUpsertBulk) UpdatePatientID() *DoctorContactUpsertBulk {
	return u.Update(func(s *DoctorContactUpsert) {
		s.UpdatePatientID()
	})
}

// SetName sets the "name" field.
func (u *DoctorContactUpsertBulk) SetName(v string) *DoctorContactUpsertBulk {
	return u.Update(func(s *DoctorContactUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *DoctorContactUpsertBulk) UpdateName() *DoctorContactUpsertBulk {
	return u.Update(func(s *DoctorContactUpsert) {
		s.UpdateName()
	})
}

// SetSpeciality sets the "speciality" field.
func (u *DoctorContactUpsertBulk) SetSpeciality(v string) *DoctorContactUpsertBulk {
	return u.Update(func(s *DoctorContactUpsert) {
		s.SetSpeciality(v)
	})
}

// UpdateSpeciality sets the "speciality" field to the value that was provided on create.
func (u *DoctorContactUpsertBulk) UpdateSpeciality() *DoctorContactUpsertBulk {
	return u.Update(func(s *DoctorContactUpsert) {
		s.UpdateSpeciality()
	})
}

// SetPhone sets the "phone" field.
func (u *DoctorContactUpsertBulk) SetPhone(v string) *DoctorContactUpsertBulk {
	return u.Update(func(s *DoctorContactUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *DoctorContactUpsertBulk) UpdatePhone() *DoctorContactUpsertBulk {
	return u.Update(func(s *DoctorContactUpsert) {
		s.UpdatePhone()
	})
}

// SetEmail sets the "email" field.
func (u *DoctorContactUpsertBulk) SetEmail(v string) *DoctorContactUpsertBulk {
	return u.Update(func(s *DoctorContactUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *DoctorContactUpsertBulk) UpdateEmail() *DoctorContactUpsertBulk {
	return u.Update(func(s *DoctorContactUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *DoctorContactUpsertBulk) ClearEmail() *DoctorContactUpsertBulk {
	return u.Update(func(s *DoctorContactUpsert) {
		s.ClearEmail()
	})
}

// SetNotes sets the "notes" field.
func (u *DoctorContactUpsertBulk) SetNotes(v string) *DoctorContactUpsertBulk {
	return u.Update(func(s *DoctorContactUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *DoctorContactUpsertBulk) UpdateNotes() *DoctorContactUpsertBulk {
	return u.Update(func(s *DoctorContactUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *DoctorContactUpsertBulk) ClearNotes() *DoctorContactUpsertBulk {
	return u.Update(func(s *DoctorContactUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *DoctorContactUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the DoctorContactCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DoctorContactCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DoctorContactUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
