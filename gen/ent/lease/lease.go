// Code generated by ent, DO NOT EDIT.

package lease

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the lease type in the database.
	Label = "lease"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPortfolioID holds the string denoting the portfolio_id field in the database.
	FieldPortfolioID = "portfolio_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldAnnualRent holds the string denoting the annual_rent field in the database.
	FieldAnnualRent = "annual_rent"
	// FieldTermYears holds the string denoting the term_years field in the database.
	FieldTermYears = "term_years"
	// FieldEscalator holds the string denoting the escalator field in the database.
	FieldEscalator = "escalator"
	// FieldRiskTier holds the string denoting the risk_tier field in the database.
	FieldRiskTier = "risk_tier"
	// FieldLocation holds the string denoting the location field in the database.
	FieldLocation = "location"
	// FieldAcres holds the string denoting the acres field in the database.
	FieldAcres = "acres"
	// FieldDeveloper holds the string denoting the developer field in the database.
	FieldDeveloper = "developer"
	// FieldLandowners holds the string denoting the landowners field in the database.
	FieldLandowners = "landowners"
	// FieldNeedsReview holds the string denoting the needs_review field in the database.
	FieldNeedsReview = "needs_review"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgePortfolio holds the string denoting the portfolio edge name in mutations.
	EdgePortfolio = "portfolio"
	// EdgeFiles holds the string denoting the files edge name in mutations.
	EdgeFiles = "files"
	// EdgeJobs holds the string denoting the jobs edge name in mutations.
	EdgeJobs = "jobs"
	// Table holds the table name of the lease in the database.
	Table = "leases"
	// PortfolioTable is the table that holds the portfolio relation/edge.
	PortfolioTable = "leases"
	// PortfolioInverseTable is the table name for the Portfolio entity.
	// It exists in this package in order to avoid circular dependency with the "portfolio" package.
	PortfolioInverseTable = "portfolios"
	// PortfolioColumn is the table column denoting the portfolio relation/edge.
	PortfolioColumn = "portfolio_id"
	// FilesTable is the table that holds the files relation/edge.
	FilesTable = "lease_files"
	// FilesInverseTable is the table name for the LeaseFile entity.
	// It exists in this package in order to avoid circular dependency with the "leasefile" package.
	FilesInverseTable = "lease_files"
	// FilesColumn is the table column denoting the files relation/edge.
	FilesColumn = "lease_id"
	// JobsTable is the table that holds the jobs relation/edge.
	JobsTable = "extract_job"
	// JobsInverseTable is the table name for the ExtractJob entity.
	// It exists in this package in order to avoid circular dependency with the "extractjob" package.
	JobsInverseTable = "extract_job"
	// JobsColumn is the table column denoting the jobs relation/edge.
	JobsColumn = "lease_id"
)

// Columns holds all SQL columns for lease fields.
var Columns = []string{
	FieldID,
	FieldPortfolioID,
	FieldName,
	FieldAnnualRent,
	FieldTermYears,
	FieldEscalator,
	FieldRiskTier,
	FieldLocation,
	FieldAcres,
	FieldDeveloper,
	FieldLandowners,
	FieldNeedsReview,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultEscalator holds the default value on creation for the "escalator" field.
	DefaultEscalator float64
	// DefaultRiskTier holds the default value on creation for the "risk_tier" field.
	DefaultRiskTier string
	// RiskTierValidator is a validator for the "risk_tier" field. It is called by the builders before save.
	RiskTierValidator func(string) error
	// AcresValidator is a validator for the "acres" field. It is called by the builders before save.
	AcresValidator func(float64) error
	// DefaultNeedsReview holds the default value on creation for the "needs_review" field.
	DefaultNeedsReview bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Lease queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPortfolioID orders the results by the portfolio_id field.
func ByPortfolioID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPortfolioID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByAnnualRent orders the results by the annual_rent field.
func ByAnnualRent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnnualRent, opts...).ToFunc()
}

// ByTermYears orders the results by the term_years field.
func ByTermYears(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTermYears, opts...).ToFunc()
}

// ByEscalator orders the results by the escalator field.
func ByEscalator(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEscalator, opts...).ToFunc()
}

// ByRiskTier orders the results by the risk_tier field.
func ByRiskTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskTier, opts...).ToFunc()
}

// ByLocation orders the results by the location field.
func ByLocation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocation, opts...).ToFunc()
}

// ByAcres orders the results by the acres field.
func ByAcres(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAcres, opts...).ToFunc()
}

// ByDeveloper orders the results by the developer field.
func ByDeveloper(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeveloper, opts...).ToFunc()
}

// ByLandowners orders the results by the landowners field.
func ByLandowners(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLandowners, opts...).ToFunc()
}

// ByNeedsReview orders the results by the needs_review field.
func ByNeedsReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsReview, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByPortfolioField orders the results by portfolio field.
func ByPortfolioField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPortfolioStep(), sql.OrderByField(field, opts...))
	}
}

// ByFilesCount orders the results by files count.
func ByFilesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFilesStep(), opts...)
	}
}

// ByFiles orders the results by files terms.
func ByFiles(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFilesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByJobsCount orders the results by jobs count.
func ByJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newJobsStep(), opts...)
	}
}

// ByJobs orders the results by jobs terms.
func ByJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newPortfolioStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PortfolioInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PortfolioTable, PortfolioColumn),
	)
}
func newFilesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FilesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FilesTable, FilesColumn),
	)
}
func newJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
	)
}
