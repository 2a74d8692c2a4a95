// Code generated by ent, DO NOT EDIT.

package knownperson

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/sumit1004/neurolink_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldEQ(FieldUpdatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldEQ(FieldPatientID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldEQ(FieldName, v))
}

// Relation applies equality check predicate on the "relation" field. It's identical to RelationEQ.
func Relation(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldEQ(FieldRelation, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldEQ(FieldNotes, v))
}

// PhotoURL applies equality check predicate on the "photo_url" field. It's identical to PhotoURLEQ.
func PhotoURL(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldEQ(FieldPhotoURL, v))
}

// PhotoKey applies equality check predicate on the "photo_key" field. It's identical to PhotoKeyEQ.
func PhotoKey(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldEQ(FieldPhotoKey, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldLTE(FieldUpdatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldNotIn(FieldPatientID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldContainsFold(FieldName, v))
}

// RelationEQ applies the EQ predicate on the "relation" field.
func RelationEQ(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldEQ(FieldRelation, v))
}

// RelationNEQ applies the NEQ predicate on the "relation" field.
func RelationNEQ(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldNEQ(FieldRelation, v))
}

// RelationIn applies the In predicate on the "relation" field.
func RelationIn(vs ...string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldIn(FieldRelation, vs...))
}

// RelationNotIn applies the NotIn predicate on the "relation" field.
func RelationNotIn(vs ...string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldNotIn(FieldRelation, vs...))
}

// RelationGT applies the GT predicate on the "relation" field.
func RelationGT(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldGT(FieldRelation, v))
}

// RelationGTE applies the GTE predicate on the "relation" field.
func RelationGTE(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldGTE(FieldRelation, v))
}

// RelationLT applies the LT predicate on the "relation" field.
func RelationLT(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldLT(FieldRelation, v))
}

// RelationLTE applies the LTE predicate on the "relation" field.
func RelationLTE(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldLTE(FieldRelation, v))
}

// RelationContains applies the Contains predicate on the "relation" field.
func RelationContains(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldContains(FieldRelation, v))
}

// RelationHasPrefix applies the HasPrefix predicate on the "relation" field.
func RelationHasPrefix(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldHasPrefix(FieldRelation, v))
}

// RelationHasSuffix applies the HasSuffix predicate on the "relation" field.
func RelationHasSuffix(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldHasSuffix(FieldRelation, v))
}

// RelationEqualFold applies the EqualFold predicate on the "relation" field.
func RelationEqualFold(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldEqualFold(FieldRelation, v))
}

// RelationContainsFold applies the ContainsFold predicate on the "relation" field.
func RelationContainsFold(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldContainsFold(FieldRelation, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldContainsFold(FieldNotes, v))
}

// PhotoURLEQ applies the EQ predicate on the "photo_url" field.
func PhotoURLEQ(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldEQ(FieldPhotoURL, v))
}

// PhotoURLNEQ applies the NEQ predicate on the "photo_url" field.
func PhotoURLNEQ(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldNEQ(FieldPhotoURL, v))
}

// PhotoURLIn applies the In predicate on the "photo_url" field.
func PhotoURLIn(vs ...string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldIn(FieldPhotoURL, vs...))
}

// PhotoURLNotIn applies the NotIn predicate on the "photo_url" field.
func PhotoURLNotIn(vs ...string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldNotIn(FieldPhotoURL, vs...))
}

// PhotoURLGT applies the GT predicate on the "photo_url" field.
func PhotoURLGT(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldGT(FieldPhotoURL, v))
}

// PhotoURLGTE applies the GTE predicate on the "photo_url" field.
func PhotoURLGTE(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldGTE(FieldPhotoURL, v))
}

// PhotoURLLT applies the LT predicate on the "photo_url" field.
func PhotoURLLT(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldLT(FieldPhotoURL, v))
}

// PhotoURLLTE applies the LTE predicate on the "photo_url" field.
func PhotoURLLTE(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldLTE(FieldPhotoURL, v))
}

// PhotoURLContains applies the Contains predicate on the "photo_url" field.
func PhotoURLContains(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldContains(FieldPhotoURL, v))
}

// PhotoURLHasPrefix applies the HasPrefix predicate on the "photo_url" field.
func PhotoURLHasPrefix(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldHasPrefix(FieldPhotoURL, v))
}

// PhotoURLHasSuffix applies the HasSuffix predicate on the "photo_url" field.
func PhotoURLHasSuffix(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldHasSuffix(FieldPhotoURL, v))
}

// PhotoURLEqualFold applies the EqualFold predicate on the "photo_url" field.
func PhotoURLEqualFold(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldEqualFold(FieldPhotoURL, v))
}

// PhotoURLContainsFold applies the ContainsFold predicate on the "photo_url" field.
func PhotoURLContainsFold(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldContainsFold(FieldPhotoURL, v))
}

// PhotoKeyEQ applies the EQ predicate on the "photo_key" field.
func PhotoKeyEQ(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldEQ(FieldPhotoKey, v))
}

// PhotoKeyNEQ applies the NEQ predicate on the "photo_key" field.
func PhotoKeyNEQ(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldNEQ(FieldPhotoKey, v))
}

// PhotoKeyIn applies the In predicate on the "photo_key" field.
func PhotoKeyIn(vs ...string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldIn(FieldPhotoKey, vs...))
}

// PhotoKeyNotIn applies the NotIn predicate on the "photo_key" field.
func PhotoKeyNotIn(vs ...string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldNotIn(FieldPhotoKey, vs...))
}

// PhotoKeyGT applies the GT predicate on the "photo_key" field.
func PhotoKeyGT(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldGT(FieldPhotoKey, v))
}

// PhotoKeyGTE applies the GTE predicate on the "photo_key" field.
func PhotoKeyGTE(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldGTE(FieldPhotoKey, v))
}

// PhotoKeyLT applies the LT predicate on the "photo_key" field.
func PhotoKeyLT(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldLT(FieldPhotoKey, v))
}

// PhotoKeyLTE applies the LTE predicate on the "photo_key" field.
func PhotoKeyLTE(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldLTE(FieldPhotoKey, v))
}

// PhotoKeyContains applies the Contains predicate on the "photo_key" field.
func PhotoKeyContains(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldContains(FieldPhotoKey, v))
}

// PhotoKeyHasPrefix applies the HasPrefix predicate on the "photo_key" field.
func PhotoKeyHasPrefix(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldHasPrefix(FieldPhotoKey, v))
}

// PhotoKeyHasSuffix applies the HasSuffix predicate on the "photo_key" field.
func PhotoKeyHasSuffix(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldHasSuffix(FieldPhotoKey, v))
}

// PhotoKeyEqualFold applies the EqualFold predicate on the "photo_key" field.
func PhotoKeyEqualFold(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldEqualFold(FieldPhotoKey, v))
}

// PhotoKeyContainsFold applies the ContainsFold predicate on the "photo_key" field.
func PhotoKeyContainsFold(v string) predicate.KnownPerson {
	return predicate.KnownPerson(sql.FieldContainsFold(FieldPhotoKey, v))
}

// HasPatient applies the HasEdge predicate on the "patient" edge.
func HasPatient() predicate.KnownPerson {
	return predicate.KnownPerson(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatientWith applies the HasEdge predicate on the "patient" edge with a given conditions (other predicates).
func HasPatientWith(preds ...predicate.Patient) predicate.KnownPerson {
	return predicate.KnownPerson(func(s *sql.Selector) {
		step := newPatientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.KnownPerson) predicate.KnownPerson {
	return predicate.KnownPerson(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.KnownPerson) predicate.KnownPerson {
	return predicate.KnownPerson(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.KnownPerson) predicate.KnownPerson {
	return predicate.KnownPerson(sql.NotPredicates(p))
}
