package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// KnownPerson is a face the patient should recognize, with a reference photo
// stored in object storage.
type KnownPerson struct {
	ent.Schema
}

func (KnownPerson) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (KnownPerson) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.String("name").
			MaxLen(100),

		field.String("relation").
			MaxLen(50),

		field.Text("notes").
			Optional().
			Nillable(),

		field.String("photo_url").
			MaxLen(512),

		field.String("photo_key").
			MaxLen(512).
			Comment("object storage key, kept for compensating deletes"),
	}
}

func (KnownPerson) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("known_people").
			Unique().
			Required().
			Field("patient_id"),
	}
}

func (KnownPerson) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id"),
	}
}
