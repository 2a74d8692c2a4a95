package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// HealthRecord is an uploaded medical document (report, prescription, scan).
type HealthRecord struct {
	ent.Schema
}

func (HealthRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (HealthRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.String("title").
			MaxLen(200),

		field.String("file_url").
			MaxLen(512),

		field.String("file_key").
			MaxLen(512).
			Comment("object storage key, kept for compensating deletes"),
	}
}

func (HealthRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("health_records").
			Unique().
			Required().
			Field("patient_id"),
	}
}

func (HealthRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id"),
	}
}
