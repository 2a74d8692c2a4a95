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
	"github.com/sumit1004/neurolink_backend/internal/repo/conversation"
	"github.com/sumit1004/neurolink_backend/internal/repo/patient"
	"github.com/sumit1004/neurolink_backend/internal/repo/predicate"
)

// ConversationUpdate is the builder for updating Conversation entities.
type ConversationUpdate struct {
	config
	hooks    []Hook
	mutation *ConversationMutation
}

// Where appends a list predicates to the ConversationUpdate builder.
func (_u *ConversationUpdate) Where(ps ...predicate.Conversation) *ConversationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *ConversationUpdate) SetPatientID(v uuid.UUID) *ConversationUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillablePatientID(v *uuid.UUID) *ConversationUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetPersonName sets the "person_name" field.
func (_u *ConversationUpdate) SetPersonName(v string) *ConversationUpdate {
	_u.mutation.SetPersonName(v)
	return _u
}

// SetNillablePersonName sets the "person_name" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillablePersonName(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetPersonName(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ConversationUpdate) SetSummary(v string) *ConversationUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableSummary(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ConversationUpdate) ClearSummary() *ConversationUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetTranscript sets the "transcript" field.
func (_u *ConversationUpdate) SetTranscript(v string) *ConversationUpdate {
	_u.mutation.SetTranscript(v)
	return _u
}

// SetNillableTranscript sets the "transcript" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableTranscript(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetTranscript(*v)
	}
	return _u
}

// ClearTranscript clears the value of the "transcript" field.
func (_u *ConversationUpdate) ClearTranscript() *ConversationUpdate {
	_u.mutation.ClearTranscript()
	return _u
}

// SetAudioURL sets the "audio_url" field.
func (_u *ConversationUpdate) SetAudioURL(v string) *ConversationUpdate {
	_u.mutation.SetAudioURL(v)
	return _u
}

// SetNillableAudioURL sets the "audio_url" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableAudioURL(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetAudioURL(*v)
	}
	return _u
}

// ClearAudioURL clears the value of the "audio_url" field.
func (_u *ConversationUpdate) ClearAudioURL() *ConversationUpdate {
	_u.mutation.ClearAudioURL()
	return _u
}

// SetOccurredAt sets the "occurred_at" field.
func (_u *ConversationUpdate) SetOccurredAt(v time.Time) *ConversationUpdate {
	_u.mutation.SetOccurredAt(v)
	return _u
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableOccurredAt(v *time.Time) *ConversationUpdate {
	if v != nil {
		_u.SetOccurredAt(*v)
	}
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *ConversationUpdate) SetPatient(v *Patient) *ConversationUpdate {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the ConversationMutation object of the builder.
func (_u *ConversationUpdate) Mutation() *ConversationMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *ConversationUpdate) ClearPatient() *ConversationUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConversationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConversationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationUpdate) check() error {
	if v, ok := _u.mutation.PersonName(); ok {
		if err := conversation.PersonNameValidator(v); err != nil {
			return &ValidationError{Name: "person_name", err: fmt.Errorf(`repo: validator failed for field "Conversation.person_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AudioURL(); ok {
		if err := conversation.AudioURLValidator(v); err != nil {
			return &ValidationError{Name: "audio_url", err: fmt.Errorf(`repo: validator failed for field "Conversation.audio_url": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Conversation.patient"`)
	}
	return nil
}

func (_u *ConversationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversation.Table, conversation.Columns, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PersonName(); ok {
		_spec.SetField(conversation.FieldPersonName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(conversation.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(conversation.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Transcript(); ok {
		_spec.SetField(conversation.FieldTranscript, field.TypeString, value)
	}
	if _u.mutation.TranscriptCleared() {
		_spec.ClearField(conversation.FieldTranscript, field.TypeString)
	}
	if value, ok := _u.mutation.AudioURL(); ok {
		_spec.SetField(conversation.FieldAudioURL, field.TypeString, value)
	}
	if _u.mutation.AudioURLCleared() {
		_spec.ClearField(conversation.FieldAudioURL, field.TypeString)
	}
	if value, ok := _u.mutation.OccurredAt(); ok {
		_spec.SetField(conversation.FieldOccurredAt, field.TypeTime, value)
	}
	if _u.mutation.PatientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConversationUpdateOne is the builder for updating a single Conversation entity.
type ConversationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConversationMutation
}

// SetPatientID sets the "patient_id" field.
func (_u *ConversationUpdateOne) SetPatientID(v uuid.UUID) *ConversationUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillablePatientID(v *uuid.UUID) *ConversationUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetPersonName sets the "person_name" field.
func (_u *ConversationUpdateOne) SetPersonName(v string) *ConversationUpdateOne {
	_u.mutation.SetPersonName(v)
	return _u
}

// SetNillablePersonName sets the "person_name" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillablePersonName(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetPersonName(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ConversationUpdateOne) SetSummary(v string) *ConversationUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableSummary(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ConversationUpdateOne) ClearSummary() *ConversationUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetTranscript sets the "transcript" field.
func (_u *ConversationUpdateOne) SetTranscript(v string) *ConversationUpdateOne {
	_u.mutation.SetTranscript(v)
	return _u
}

// SetNillableTranscript sets the "transcript" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableTranscript(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetTranscript(*v)
	}
	return _u
}

// ClearTranscript clears the value of the "transcript" field.
func (_u *ConversationUpdateOne) ClearTranscript() *ConversationUpdateOne {
	_u.mutation.ClearTranscript()
	return _u
}

// SetAudioURL sets the "audio_url" field.
func (_u *ConversationUpdateOne) SetAudioURL(v string) *ConversationUpdateOne {
	_u.mutation.SetAudioURL(v)
	return _u
}

// SetNillableAudioURL sets the "audio_url" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableAudioURL(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetAudioURL(*v)
	}
	return _u
}

// ClearAudioURL clears the value of the "audio_url" field.
func (_u *ConversationUpdateOne) ClearAudioURL() *ConversationUpdateOne {
	_u.mutation.ClearAudioURL()
	return _u
}

// SetOccurredAt sets the "occurred_at" field.
func (_u *ConversationUpdateOne) SetOccurredAt(v time.Time) *ConversationUpdateOne {
	_u.mutation.SetOccurredAt(v)
	return _u
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableOccurredAt(v *time.Time) *ConversationUpdateOne {
	if v != nil {
		_u.SetOccurredAt(*v)
	}
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *ConversationUpdateOne) SetPatient(v *Patient) *ConversationUpdateOne {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the ConversationMutation object of the builder.
func (_u *ConversationUpdateOne) Mutation() *ConversationMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *ConversationUpdateOne) ClearPatient() *ConversationUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// Where appends a list predicates to the ConversationUpdate builder.
func (_u *ConversationUpdateOne) Where(ps ...predicate.Conversation) *ConversationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConversationUpdateOne) Select(field string, fields ...string) *ConversationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Conversation entity.
func (_u *ConversationUpdateOne) Save(ctx context.Context) (*Conversation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationUpdateOne) SaveX(ctx context.Context) *Conversation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConversationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationUpdateOne) check() error {
	if v, ok := _u.mutation.PersonName(); ok {
		if err := conversation.PersonNameValidator(v); err != nil {
			return &ValidationError{Name: "person_name", err: fmt.Errorf(`repo: validator failed for field "Conversation.person_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AudioURL(); ok {
		if err := conversation.AudioURLValidator(v); err != nil {
			return &ValidationError{Name: "audio_url", err: fmt.Errorf(`repo: validator failed for field "Conversation.audio_url": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Conversation.patient"`)
	}
	return nil
}

func (_u *ConversationUpdateOne) sqlSave(ctx context.Context) (_node *Conversation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversation.Table, conversation.Columns, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Conversation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conversation.FieldID)
		for _, f := range fields {
			if !conversation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != conversation.FieldID {
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
	if value, ok := _u.mutation.PersonName(); ok {
		_spec.SetField(conversation.FieldPersonName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(conversation.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(conversation.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Transcript(); ok {
		_spec.SetField(conversation.FieldTranscript, field.TypeString, value)
	}
	if _u.mutation.TranscriptCleared() {
		_spec.ClearField(conversation.FieldTranscript, field.TypeString)
	}
	if value, ok := _u.mutation.AudioURL(); ok {
		_spec.SetField(conversation.FieldAudioURL, field.TypeString, value)
	}
	if _u.mutation.AudioURLCleared() {
		_spec.ClearField(conversation.FieldAudioURL, field.TypeString)
	}
	if value, ok := _u.mutation.OccurredAt(); ok {
		_spec.SetField(conversation.FieldOccurredAt, field.TypeTime, value)
	}
	if _u.mutation.PatientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Conversation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
