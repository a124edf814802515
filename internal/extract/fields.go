// Package extract turns normalized lease-document text into structured lease
// terms using ordered pattern passes with per-field plausibility bounds.
package extract

import (
	"path/filepath"
	"strings"

	"github.com/solargrid-io/lease-tracker/constants"
)

// LeaseFields is the flat record produced for one document. Optional fields
// are pointers so "not found" stays distinct from a zero value.
type LeaseFields struct {
	Name        string   `json:"name"`
	AnnualRent  *int     `json:"annual_rent"`
	TermYears   *int     `json:"term_years"`
	Escalator   float64  `json:"escalator"`
	RiskTier    string   `json:"risk_tier"`
	Location    *string  `json:"location"`
	Acres       *float64 `json:"acres"`
	Developer   *string  `json:"developer"`
	Landowners  *string  `json:"landowners"`
	NeedsReview bool     `json:"needs_review"`
}

// ExtractLeaseFields runs every field resolver over the document text and
// assembles the record. It is total: malformed or empty input yields a record
// with nil optionals and defaults, never an error.
func ExtractLeaseFields(text, docName string) LeaseFields {
	norm := Normalize(text)

	f := LeaseFields{
		Name:     BaseName(docName),
		RiskTier: constants.DefaultRiskTier,
	}

	f.AnnualRent = resolveRent(norm)
	f.TermYears = resolveTermYears(norm)
	// A resolved term this short is more likely a mis-matched sub-clause than
	// a real lease; keep the value but flag it for a human.
	f.NeedsReview = f.TermYears != nil && *f.TermYears < 10
	f.Escalator = resolveEscalator(norm)
	f.Acres = resolveAcres(norm)
	// Per-acre rates are read after acreage so the reconciliation sees both.
	f.AnnualRent = applyPerAcreOverride(norm, f.AnnualRent, f.Acres)
	f.Location = resolveLocation(norm)
	f.Developer = resolveDeveloper(norm)

	return f
}

// MissingCritical names the critical fields (rent, term) that did not
// resolve. A non-empty result is a warning for manual follow-up, not an error.
func (f LeaseFields) MissingCritical() []string {
	var missing []string
	if f.AnnualRent == nil {
		missing = append(missing, "annual_rent")
	}
	if f.TermYears == nil {
		missing = append(missing, "term_years")
	}
	return missing
}

// BaseName derives a display name from a document name: known extension
// stripped, underscores to spaces, title-cased.
func BaseName(docName string) string {
	base := filepath.Base(docName)
	if ext := filepath.Ext(base); ext != "" {
		if _, ok := constants.AllowedExtensions[constants.NormalizeExt(ext)]; ok {
			base = strings.TrimSuffix(base, ext)
		}
	}
	base = strings.ReplaceAll(base, "_", " ")
	return titleCase(base)
}
