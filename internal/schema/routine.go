package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Routine is a recurring care activity with a weekly schedule.
type Routine struct {
	ent.Schema
}

func (Routine) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Routine) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.String("title").
			MaxLen(200),

		field.JSON("schedule", &Schedule{}),

		field.Bool("active").
			Default(true),
	}
}

func (Routine) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("routines").
			Unique().
			Required().
			Field("patient_id"),
		edge.To("tasks", Task.Type),
	}
}

func (Routine) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id"),
	}
}
