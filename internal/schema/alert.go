package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Alert is an append-only safety event reported by the companion device.
type Alert struct {
	ent.Schema
}

func (Alert) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Alert) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.Enum("type").
			Values("unknown_person", "fall", "wandering", "sos", "other").
			Default("other"),

		field.JSON("payload", &AlertPayload{}).
			Optional(),
	}
}

func (Alert) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("alerts").
			Unique().
			Required().
			Field("patient_id"),
	}
}

func (Alert) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "created_at"),
		index.Fields("patient_id", "type", "created_at"),
	}
}
