// Code generated by ent, DO NOT EDIT.

package doctorcontact

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/sumit1004/neurolink_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldEQ(FieldUpdatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldEQ(FieldPatientID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldEQ(FieldName, v))
}

// Speciality applies equality check predicate on the "speciality" field. It's identical to SpecialityEQ.
func Speciality(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldEQ(FieldSpeciality, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldEQ(FieldPhone, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldEQ(FieldEmail, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldEQ(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldLTE(FieldUpdatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldNotIn(FieldPatientID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldContainsFold(FieldName, v))
}

// SpecialityEQ applies the EQ predicate on the "speciality" field.
func SpecialityEQ(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldEQ(FieldSpeciality, v))
}

// SpecialityNEQ applies the NEQ predicate on the "speciality" field.
func SpecialityNEQ(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldNEQ(FieldSpeciality, v))
}

// SpecialityIn applies the In predicate on the "speciality" field.
func SpecialityIn(vs ...string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldIn(FieldSpeciality, vs...))
}

// SpecialityNotIn applies the NotIn predicate on the "speciality" field.
func SpecialityNotIn(vs ...string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldNotIn(FieldSpeciality, vs...))
}

// SpecialityGT applies the GT predicate on the "speciality" field.
func SpecialityGT(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldGT(FieldSpeciality, v))
}

// SpecialityGTE applies the GTE predicate on the "speciality" field.
func SpecialityGTE(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldGTE(FieldSpeciality, v))
}

// SpecialityLT applies the LT predicate on the "speciality" field.
func SpecialityLT(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldLT(FieldSpeciality, v))
}

// SpecialityLTE applies the LTE predicate on the "speciality" field.
func SpecialityLTE(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldLTE(FieldSpeciality, v))
}

// SpecialityContains applies the Contains predicate on the "speciality" field.
func SpecialityContains(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldContains(FieldSpeciality, v))
}

// SpecialityHasPrefix applies the HasPrefix predicate on the "speciality" field.
func SpecialityHasPrefix(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldHasPrefix(FieldSpeciality, v))
}

// SpecialityHasSuffix applies the HasSuffix predicate on the "speciality" field.
func SpecialityHasSuffix(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldHasSuffix(FieldSpeciality, v))
}

// SpecialityEqualFold applies the EqualFold predicate on the "speciality" field.
func SpecialityEqualFold(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldEqualFold(FieldSpeciality, v))
}

// SpecialityContainsFold applies the ContainsFold predicate on the "speciality" field.
func SpecialityContainsFold(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldContainsFold(FieldSpeciality, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldContainsFold(FieldPhone, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldContainsFold(FieldEmail, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.DoctorContact {
	return predicate.DoctorContact(sql.FieldContainsFold(FieldNotes, v))
}

// HasPatient applies the HasEdge predicate on the "patient" edge.
func HasPatient() predicate.DoctorContact {
	return predicate.DoctorContact(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatientWith applies the HasEdge predicate on the "patient" edge with a given conditions (other predicates).
func HasPatientWith(preds ...predicate.Patient) predicate.DoctorContact {
	return predicate.DoctorContact(func(s *sql.Selector) {
		step := newPatientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DoctorContact) predicate.DoctorContact {
	return predicate.DoctorContact(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DoctorContact) predicate.DoctorContact {
	return predicate.DoctorContact(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DoctorContact) predicate.DoctorContact {
	return predicate.DoctorContact(sql.NotPredicates(p))
}
