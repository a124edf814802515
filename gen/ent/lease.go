// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/solargrid-io/lease-tracker/gen/ent/lease"
	"github.com/solargrid-io/lease-tracker/gen/ent/portfolio"
)

// Lease is the model entity for the Lease schema.
type Lease struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// PortfolioID holds the value of the "portfolio_id" field.
	PortfolioID uuid.UUID `json:"portfolio_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// AnnualRent holds the value of the "annual_rent" field.
	AnnualRent *int `json:"annual_rent,omitempty"`
	// TermYears holds the value of the "term_years" field.
	TermYears *int `json:"term_years,omitempty"`
	// Escalator holds the value of the "escalator" field.
	Escalator float64 `json:"escalator,omitempty"`
	// RiskTier holds the value of the "risk_tier" field.
	RiskTier string `json:"risk_tier,omitempty"`
	// Location holds the value of the "location" field.
	Location *string `json:"location,omitempty"`
	// Acres holds the value of the "acres" field.
	Acres *float64 `json:"acres,omitempty"`
	// Developer holds the value of the "developer" field.
	Developer *string `json:"developer,omitempty"`
	// Landowners holds the value of the "landowners" field.
	Landowners *string `json:"landowners,omitempty"`
	// NeedsReview holds the value of the "needs_review" field.
	NeedsReview bool `json:"needs_review,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LeaseQuery when eager-loading is set.
	Edges        LeaseEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LeaseEdges holds the relations/edges for other nodes in the graph.
type LeaseEdges struct {
	// Portfolio holds the value of the portfolio edge.
	Portfolio *Portfolio `json:"portfolio,omitempty"`
	// Files holds the value of the files edge.
	Files []*LeaseFile `json:"files,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*ExtractJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// PortfolioOrErr returns the Portfolio value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LeaseEdges) PortfolioOrErr() (*Portfolio, error) {
	if e.Portfolio != nil {
		return e.Portfolio, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: portfolio.Label}
	}
	return nil, &NotLoadedError{edge: "portfolio"}
}

// FilesOrErr returns the Files value or an error if the edge
// was not loaded in eager-loading.
func (e LeaseEdges) FilesOrErr() ([]*LeaseFile, error) {
	if e.loadedTypes[1] {
		return e.Files, nil
	}
	return nil, &NotLoadedError{edge: "files"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e LeaseEdges) JobsOrErr() ([]*ExtractJob, error) {
	if e.loadedTypes[2] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Lease) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lease.FieldNeedsReview:
			values[i] = new(sql.NullBool)
		case lease.FieldEscalator, lease.FieldAcres:
			values[i] = new(sql.NullFloat64)
		case lease.FieldAnnualRent, lease.FieldTermYears:
			values[i] = new(sql.NullInt64)
		case lease.FieldName, lease.FieldRiskTier, lease.FieldLocation, lease.FieldDeveloper, lease.FieldLandowners:
			values[i] = new(sql.NullString)
		case lease.FieldCreatedAt, lease.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case lease.FieldID, lease.FieldPortfolioID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Lease fields.
func (_m *Lease) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lease.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case lease.FieldPortfolioID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field portfolio_id", values[i])
			} else if value != nil {
				_m.PortfolioID = *value
			}
		case lease.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case lease.FieldAnnualRent:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field annual_rent", values[i])
			} else if value.Valid {
				_m.AnnualRent = new(int)
				*_m.AnnualRent = int(value.Int64)
			}
		case lease.FieldTermYears:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field term_years", values[i])
			} else if value.Valid {
				_m.TermYears = new(int)
				*_m.TermYears = int(value.Int64)
			}
		case lease.FieldEscalator:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field escalator", values[i])
			} else if value.Valid {
				_m.Escalator = value.Float64
			}
		case lease.FieldRiskTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field risk_tier", values[i])
			} else if value.Valid {
				_m.RiskTier = value.String
			}
		case lease.FieldLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location", values[i])
			} else if value.Valid {
				_m.Location = new(string)
				*_m.Location = value.String
			}
		case lease.FieldAcres:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field acres", values[i])
			} else if value.Valid {
				_m.Acres = new(float64)
				*_m.Acres = value.Float64
			}
		case lease.FieldDeveloper:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field developer", values[i])
			} else if value.Valid {
				_m.Developer = new(string)
				*_m.Developer = value.String
			}
		case lease.FieldLandowners:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field landowners", values[i])
			} else if value.Valid {
				_m.Landowners = new(string)
				*_m.Landowners = value.String
			}
		case lease.FieldNeedsReview:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_review", values[i])
			} else if value.Valid {
				_m.NeedsReview = value.Bool
			}
		case lease.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case lease.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Lease.
// This includes values selected through modifiers, order, etc.
func (_m *Lease) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPortfolio queries the "portfolio" edge of the Lease entity.
func (_m *Lease) QueryPortfolio() *PortfolioQuery {
	return NewLeaseClient(_m.config).QueryPortfolio(_m)
}

// QueryFiles queries the "files" edge of the Lease entity.
func (_m *Lease) QueryFiles() *LeaseFileQuery {
	return NewLeaseClient(_m.config).QueryFiles(_m)
}

// QueryJobs queries the "jobs" edge of the Lease entity.
func (_m *Lease) QueryJobs() *ExtractJobQuery {
	return NewLeaseClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this Lease.
// Note that you need to call Lease.Unwrap() before calling this method if this Lease
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Lease) Update() *LeaseUpdateOne {
	return NewLeaseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Lease entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Lease) Unwrap() *Lease {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Lease is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Lease) String() string {
	var builder strings.Builder
	builder.WriteString("Lease(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("portfolio_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PortfolioID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.AnnualRent; v != nil {
		builder.WriteString("annual_rent=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TermYears; v != nil {
		builder.WriteString("term_years=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("escalator=")
	builder.WriteString(fmt.Sprintf("%v", _m.Escalator))
	builder.WriteString(", ")
	builder.WriteString("risk_tier=")
	builder.WriteString(_m.RiskTier)
	builder.WriteString(", ")
	if v := _m.Location; v != nil {
		builder.WriteString("location=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Acres; v != nil {
		builder.WriteString("acres=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Developer; v != nil {
		builder.WriteString("developer=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Landowners; v != nil {
		builder.WriteString("landowners=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("needs_review=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsReview))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Leases is a parsable slice of Lease.
type Leases []*Lease
