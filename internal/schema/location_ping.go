package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// LocationPing is an append-only GPS sample from the companion device.
type LocationPing struct {
	ent.Schema
}

func (LocationPing) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (LocationPing) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.Float("lat"),

		field.Float("lon"),

		field.Float("accuracy").
			Optional().
			Nillable().
			Comment("reported accuracy radius in meters"),

		field.Time("recorded_at").
			Default(time.Now),
	}
}

func (LocationPing) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("location_pings").
			Unique().
			Required().
			Field("patient_id"),
	}
}

func (LocationPing) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "recorded_at"),
	}
}
