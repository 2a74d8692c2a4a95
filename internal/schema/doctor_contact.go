package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// DoctorContact is an entry in the patient's care-team directory.
type DoctorContact struct {
	ent.Schema
}

func (DoctorContact) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (DoctorContact) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.String("name").
			MaxLen(100),

		field.String("speciality").
			MaxLen(100),

		field.String("phone").
			MaxLen(20),

		field.String("email").
			Optional().
			Nillable().
			MaxLen(255),

		field.Text("notes").
			Optional().
			Nillable(),
	}
}

func (DoctorContact) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("doctor_contacts").
			Unique().
			Required().
			Field("patient_id"),
	}
}

func (DoctorContact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id"),
	}
}
