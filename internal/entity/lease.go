package entity

import (
	"time"

	"github.com/google/uuid"
)

// Lease represents an extracted lease for data transfer between layers.
type Lease struct {
	ID          uuid.UUID `json:"id"`
	PortfolioID uuid.UUID `json:"portfolio_id"`
	Name        string    `json:"name"`
	AnnualRent  *int      `json:"annual_rent,omitempty"`
	TermYears   *int      `json:"term_years,omitempty"`
	Escalator   float64   `json:"escalator"`
	RiskTier    string    `json:"risk_tier"`
	Location    *string   `json:"location,omitempty"`
	Acres       *float64  `json:"acres,omitempty"`
	Developer   *string   `json:"developer,omitempty"`
	Landowners  *string   `json:"landowners,omitempty"`
	NeedsReview bool      `json:"needs_review"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
