package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/solargrid-io/lease-tracker/constants"
	"github.com/solargrid-io/lease-tracker/db/ent/schema/utils"
)

type ExtractJob struct{ ent.Schema }

func (ExtractJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extract_job"},
	}
}

func (ExtractJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("file_id", uuid.UUID{}),
		field.UUID("portfolio_id", uuid.UUID{}),
		field.UUID("lease_id", uuid.UUID{}).Optional().Nillable(),
		field.String("format").NotEmpty().
			Validate(utils.EnumValidator(constants.FileTypes...)),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.String("status").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
		field.Float32("extraction_confidence").Optional().Nillable(),
		field.Bool("needs_review").Default(false),
		field.String("doc_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("extracted_json", json.RawMessage{}).
			Optional(),
		field.String("method").Optional().Nillable(),
		field.JSON("method_params", json.RawMessage{}).
			Optional(),
	}
}

func (ExtractJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("file", LeaseFile.Type).
			Ref("jobs").
			Field("file_id").
			Unique().
			Required(),
		edge.From("portfolio", Portfolio.Type).
			Ref("jobs").
			Field("portfolio_id").
			Unique().
			Required(),
		edge.From("lease", Lease.Type).
			Ref("jobs").
			Field("lease_id").
			Unique(),
	}
}

func (ExtractJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("file_id", "started_at"),
		index.Fields("status"),
	}
}
