package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Conversation is a device-captured interaction log. Rows are written by the
// companion device and read-only for the dashboard.
type Conversation struct {
	ent.Schema
}

func (Conversation) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Conversation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.String("person_name").
			MaxLen(100),

		field.Text("summary").
			Optional().
			Nillable(),

		field.Text("transcript").
			Optional().
			Nillable(),

		field.String("audio_url").
			Optional().
			Nillable().
			MaxLen(512),

		field.Time("occurred_at").
			Default(time.Now),
	}
}

func (Conversation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("conversations").
			Unique().
			Required().
			Field("patient_id"),
	}
}

func (Conversation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "occurred_at"),
	}
}
