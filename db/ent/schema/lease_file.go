package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type LeaseFile struct{ ent.Schema }

func (LeaseFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "lease_files"},
	}
}

func (LeaseFile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("portfolio_id", uuid.UUID{}),
		field.UUID("lease_id", uuid.UUID{}).Optional().Nillable(),
		field.String("source_path").NotEmpty(),
		field.String("filename").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.Int("file_size").NonNegative(),
		field.Bytes("content_hash").NotEmpty(),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (LeaseFile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("portfolio", Portfolio.Type).
			Ref("files").
			Field("portfolio_id").
			Required().
			Unique(),
		edge.From("lease", Lease.Type).
			Ref("files").
			Field("lease_id").
			Unique(),
		edge.To("jobs", ExtractJob.Type),
	}
}

func (LeaseFile) Indexes() []ent.Index {
	return []ent.Index{
		// dedup key: one content hash per portfolio
		index.Fields("portfolio_id", "content_hash").Unique(),
	}
}
