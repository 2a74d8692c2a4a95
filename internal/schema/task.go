package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Task is a single to-do item attached to a routine. Completion is one-way.
type Task struct {
	ent.Schema
}

func (Task) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("routine_id", uuid.UUID{}).
			Comment("FK → routines.id"),

		field.String("title").
			MaxLen(200),

		field.Time("due_at").
			Optional().
			Nillable(),

		field.Bool("completed").
			Default(false),

		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("routine", Routine.Type).
			Ref("tasks").
			Unique().
			Required().
			Field("routine_id"),
	}
}

func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("routine_id"),
		index.Fields("routine_id", "completed"),
	}
}
