package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// User is a caregiver account. Each account manages its own patient profile.
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			Unique().
			MaxLen(255),

		field.String("password_hash").
			Sensitive(),

		field.String("display_name").
			Optional().
			Nillable().
			MaxLen(100),

		field.Bool("email_confirmed").
			Default(false),

		field.Enum("status").
			Values("active", "suspended").
			Default("active"),

		field.Time("last_login_at").
			Optional().
			Nillable(),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("patients", Patient.Type),
	}
}
