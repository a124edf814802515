// Code generated by ent, DO NOT EDIT.

package extractjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the extractjob type in the database.
	Label = "extract_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFileID holds the string denoting the file_id field in the database.
	FieldFileID = "file_id"
	// FieldPortfolioID holds the string denoting the portfolio_id field in the database.
	FieldPortfolioID = "portfolio_id"
	// FieldLeaseID holds the string denoting the lease_id field in the database.
	FieldLeaseID = "lease_id"
	// FieldFormat holds the string denoting the format field in the database.
	FieldFormat = "format"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldExtractionConfidence holds the string denoting the extraction_confidence field in the database.
	FieldExtractionConfidence = "extraction_confidence"
	// FieldNeedsReview holds the string denoting the needs_review field in the database.
	FieldNeedsReview = "needs_review"
	// FieldDocText holds the string denoting the doc_text field in the database.
	FieldDocText = "doc_text"
	// FieldExtractedJSON holds the string denoting the extracted_json field in the database.
	FieldExtractedJSON = "extracted_json"
	// FieldMethod holds the string denoting the method field in the database.
	FieldMethod = "method"
	// FieldMethodParams holds the string denoting the method_params field in the database.
	FieldMethodParams = "method_params"
	// EdgeFile holds the string denoting the file edge name in mutations.
	EdgeFile = "file"
	// EdgePortfolio holds the string denoting the portfolio edge name in mutations.
	EdgePortfolio = "portfolio"
	// EdgeLease holds the string denoting the lease edge name in mutations.
	EdgeLease = "lease"
	// Table holds the table name of the extractjob in the database.
	Table = "extract_job"
	// FileTable is the table that holds the file relation/edge.
	FileTable = "extract_job"
	// FileInverseTable is the table name for the LeaseFile entity.
	// It exists in this package in order to avoid circular dependency with the "leasefile" package.
	FileInverseTable = "lease_files"
	// FileColumn is the table column denoting the file relation/edge.
	FileColumn = "file_id"
	// PortfolioTable is the table that holds the portfolio relation/edge.
	PortfolioTable = "extract_job"
	// PortfolioInverseTable is the table name for the Portfolio entity.
	// It exists in this package in order to avoid circular dependency with the "portfolio" package.
	PortfolioInverseTable = "portfolios"
	// PortfolioColumn is the table column denoting the portfolio relation/edge.
	PortfolioColumn = "portfolio_id"
	// LeaseTable is the table that holds the lease relation/edge.
	LeaseTable = "extract_job"
	// LeaseInverseTable is the table name for the Lease entity.
	// It exists in this package in order to avoid circular dependency with the "lease" package.
	LeaseInverseTable = "leases"
	// LeaseColumn is the table column denoting the lease relation/edge.
	LeaseColumn = "lease_id"
)

// Columns holds all SQL columns for extractjob fields.
var Columns = []string{
	FieldID,
	FieldFileID,
	FieldPortfolioID,
	FieldLeaseID,
	FieldFormat,
	FieldStartedAt,
	FieldFinishedAt,
	FieldStatus,
	FieldErrorMessage,
	FieldExtractionConfidence,
	FieldNeedsReview,
	FieldDocText,
	FieldExtractedJSON,
	FieldMethod,
	FieldMethodParams,
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
	// FormatValidator is a validator for the "format" field. It is called by the builders before save.
	FormatValidator func(string) error
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultNeedsReview holds the default value on creation for the "needs_review" field.
	DefaultNeedsReview bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ExtractJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFileID orders the results by the file_id field.
func ByFileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileID, opts...).ToFunc()
}

// ByPortfolioID orders the results by the portfolio_id field.
func ByPortfolioID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPortfolioID, opts...).ToFunc()
}

// ByLeaseID orders the results by the lease_id field.
func ByLeaseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeaseID, opts...).ToFunc()
}

// ByFormat orders the results by the format field.
func ByFormat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFormat, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByExtractionConfidence orders the results by the extraction_confidence field.
func ByExtractionConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionConfidence, opts...).ToFunc()
}

// ByNeedsReview orders the results by the needs_review field.
func ByNeedsReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsReview, opts...).ToFunc()
}

// ByDocText orders the results by the doc_text field.
func ByDocText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocText, opts...).ToFunc()
}

// ByMethod orders the results by the method field.
func ByMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMethod, opts...).ToFunc()
}

// ByFileField orders the results by file field.
func ByFileField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFileStep(), sql.OrderByField(field, opts...))
	}
}

// ByPortfolioField orders the results by portfolio field.
func ByPortfolioField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPortfolioStep(), sql.OrderByField(field, opts...))
	}
}

// ByLeaseField orders the results by lease field.
func ByLeaseField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLeaseStep(), sql.OrderByField(field, opts...))
	}
}
func newFileStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FileInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FileTable, FileColumn),
	)
}
func newPortfolioStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PortfolioInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PortfolioTable, PortfolioColumn),
	)
}
func newLeaseStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LeaseInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, LeaseTable, LeaseColumn),
	)
}
