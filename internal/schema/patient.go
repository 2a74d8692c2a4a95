package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Patient is the cared-for person. Each caregiver account keeps a single
// profile; services always operate on the account's oldest row.
type Patient struct {
	ent.Schema
}

func (Patient) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Comment("FK → users.id (the managing caregiver)"),

		field.String("display_name").
			MaxLen(100),

		field.Time("date_of_birth"),

		field.String("address").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("photo_url").
			Optional().
			Nillable().
			MaxLen(512),

		field.Text("condition_notes").
			Optional().
			Nillable(),

		field.JSON("emergency_contact", &EmergencyContact{}).
			Optional(),
	}
}

func (Patient) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("patients").
			Unique().
			Required().
			Field("user_id"),
		edge.To("routines", Routine.Type),
		edge.To("known_people", KnownPerson.Type),
		edge.To("doctor_contacts", DoctorContact.Type),
		edge.To("health_records", HealthRecord.Type),
		edge.To("conversations", Conversation.Type),
		edge.To("alerts", Alert.Type),
		edge.To("location_pings", LocationPing.Type),
	}
}

func (Patient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
