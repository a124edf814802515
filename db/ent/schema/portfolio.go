package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Portfolio struct{ ent.Schema }

func (Portfolio) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "portfolios"},
	}
}

func (Portfolio) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty().Unique(),
		field.String("region").Optional().Nillable(),
		field.String("description").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Portfolio) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE portfolio -> MANY leases
		edge.To("leases", Lease.Type),
		// ONE portfolio -> MANY files
		edge.To("files", LeaseFile.Type),
		// ONE portfolio -> MANY jobs
		edge.To("jobs", ExtractJob.Type),
	}
}
