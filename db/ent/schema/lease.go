package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"

	"github.com/solargrid-io/lease-tracker/constants"
	"github.com/solargrid-io/lease-tracker/db/ent/schema/utils"
)

type Lease struct{ ent.Schema }

func (Lease) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "leases"},
	}
}

func (Lease) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("portfolio_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.Int("annual_rent").Optional().Nillable(),
		field.Int("term_years").Optional().Nillable(),
		field.Float("escalator").Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(6,4)"}),
		field.String("risk_tier").Default(constants.DefaultRiskTier).
			Validate(utils.EnumValidator(constants.RiskTiers...)),
		field.String("location").Optional().Nillable(),
		field.Float("acres").Optional().Nillable().Min(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("developer").Optional().Nillable(),
		field.String("landowners").Optional().Nillable(),
		field.Bool("needs_review").Default(false),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Lease) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY leases -> ONE portfolio (FK: leases.portfolio_id)
		edge.From("portfolio", Portfolio.Type).
			Ref("leases").
			Field("portfolio_id").
			Required().
			Unique(),
		// ONE lease -> MANY files
		edge.To("files", LeaseFile.Type),
		// ONE lease -> MANY jobs
		edge.To("jobs", ExtractJob.Type),
	}
}
