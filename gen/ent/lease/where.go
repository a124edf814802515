// Code generated by ent, DO NOT EDIT.

package lease

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/solargrid-io/lease-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Lease {
	return predicate.Lease(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Lease {
	return predicate.Lease(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Lease {
	return predicate.Lease(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Lease {
	return predicate.Lease(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Lease {
	return predicate.Lease(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Lease {
	return predicate.Lease(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Lease {
	return predicate.Lease(sql.FieldLTE(FieldID, id))
}

// PortfolioID applies equality check predicate on the "portfolio_id" field. It's identical to PortfolioIDEQ.
func PortfolioID(v uuid.UUID) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldPortfolioID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldName, v))
}

// AnnualRent applies equality check predicate on the "annual_rent" field. It's identical to AnnualRentEQ.
func AnnualRent(v int) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldAnnualRent, v))
}

// TermYears applies equality check predicate on the "term_years" field. It's identical to TermYearsEQ.
func TermYears(v int) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldTermYears, v))
}

// Escalator applies equality check predicate on the "escalator" field. It's identical to EscalatorEQ.
func Escalator(v float64) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldEscalator, v))
}

// RiskTier applies equality check predicate on the "risk_tier" field. It's identical to RiskTierEQ.
func RiskTier(v string) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldRiskTier, v))
}

// Location applies equality check predicate on the "location" field. It's identical to LocationEQ.
func Location(v string) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldLocation, v))
}

// Acres applies equality check predicate on the "acres" field. It's identical to AcresEQ.
func Acres(v float64) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldAcres, v))
}

// Developer applies equality check predicate on the "developer" field. It's identical to DeveloperEQ.
func Developer(v string) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldDeveloper, v))
}

// Landowners applies equality check predicate on the "landowners" field. It's identical to LandownersEQ.
func Landowners(v string) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldLandowners, v))
}

// NeedsReview applies equality check predicate on the "needs_review" field. It's identical to NeedsReviewEQ.
func NeedsReview(v bool) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldNeedsReview, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldUpdatedAt, v))
}

// PortfolioIDEQ applies the EQ predicate on the "portfolio_id" field.
func PortfolioIDEQ(v uuid.UUID) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldPortfolioID, v))
}

// PortfolioIDNEQ applies the NEQ predicate on the "portfolio_id" field.
func PortfolioIDNEQ(v uuid.UUID) predicate.Lease {
	return predicate.Lease(sql.FieldNEQ(FieldPortfolioID, v))
}

// PortfolioIDIn applies the In predicate on the "portfolio_id" field.
func PortfolioIDIn(vs ...uuid.UUID) predicate.Lease {
	return predicate.Lease(sql.FieldIn(FieldPortfolioID, vs...))
}

// PortfolioIDNotIn applies the NotIn predicate on the "portfolio_id" field.
func PortfolioIDNotIn(vs ...uuid.UUID) predicate.Lease {
	return predicate.Lease(sql.FieldNotIn(FieldPortfolioID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Lease {
	return predicate.Lease(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Lease {
	return predicate.Lease(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Lease {
	return predicate.Lease(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Lease {
	return predicate.Lease(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Lease {
	return predicate.Lease(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Lease {
	return predicate.Lease(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Lease {
	return predicate.Lease(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Lease {
	return predicate.Lease(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Lease {
	return predicate.Lease(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Lease {
	return predicate.Lease(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Lease {
	return predicate.Lease(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Lease {
	return predicate.Lease(sql.FieldContainsFold(FieldName, v))
}

// AnnualRentEQ applies the EQ predicate on the "annual_rent" field.
func AnnualRentEQ(v int) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldAnnualRent, v))
}

// AnnualRentNEQ applies the NEQ predicate on the "annual_rent" field.
func AnnualRentNEQ(v int) predicate.Lease {
	return predicate.Lease(sql.FieldNEQ(FieldAnnualRent, v))
}

// AnnualRentIn applies the In predicate on the "annual_rent" field.
func AnnualRentIn(vs ...int) predicate.Lease {
	return predicate.Lease(sql.FieldIn(FieldAnnualRent, vs...))
}

// AnnualRentNotIn applies the NotIn predicate on the "annual_rent" field.
func AnnualRentNotIn(vs ...int) predicate.Lease {
	return predicate.Lease(sql.FieldNotIn(FieldAnnualRent, vs...))
}

// AnnualRentGT applies the GT predicate on the "annual_rent" field.
func AnnualRentGT(v int) predicate.Lease {
	return predicate.Lease(sql.FieldGT(FieldAnnualRent, v))
}

// AnnualRentGTE applies the GTE predicate on the "annual_rent" field.
func AnnualRentGTE(v int) predicate.Lease {
	return predicate.Lease(sql.FieldGTE(FieldAnnualRent, v))
}

// AnnualRentLT applies the LT predicate on the "annual_rent" field.
func AnnualRentLT(v int) predicate.Lease {
	return predicate.Lease(sql.FieldLT(FieldAnnualRent, v))
}

// AnnualRentLTE applies the LTE predicate on the "annual_rent" field.
func AnnualRentLTE(v int) predicate.Lease {
	return predicate.Lease(sql.FieldLTE(FieldAnnualRent, v))
}

// AnnualRentIsNil applies the IsNil predicate on the "annual_rent" field.
func AnnualRentIsNil() predicate.Lease {
	return predicate.Lease(sql.FieldIsNull(FieldAnnualRent))
}

// AnnualRentNotNil applies the NotNil predicate on the "annual_rent" field.
func AnnualRentNotNil() predicate.Lease {
	return predicate.Lease(sql.FieldNotNull(FieldAnnualRent))
}

// TermYearsEQ applies the EQ predicate on the "term_years" field.
func TermYearsEQ(v int) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldTermYears, v))
}

// TermYearsNEQ applies the NEQ predicate on the "term_years" field.
func TermYearsNEQ(v int) predicate.Lease {
	return predicate.Lease(sql.FieldNEQ(FieldTermYears, v))
}

// TermYearsIn applies the In predicate on the "term_years" field.
func TermYearsIn(vs ...int) predicate.Lease {
	return predicate.Lease(sql.FieldIn(FieldTermYears, vs...))
}

// TermYearsNotIn applies the NotIn predicate on the "term_years" field.
func TermYearsNotIn(vs ...int) predicate.Lease {
	return predicate.Lease(sql.FieldNotIn(FieldTermYears, vs...))
}

// TermYearsGT applies the GT predicate on the "term_years" field.
func TermYearsGT(v int) predicate.Lease {
	return predicate.Lease(sql.FieldGT(FieldTermYears, v))
}

// TermYearsGTE applies the GTE predicate on the "term_years" field.
func TermYearsGTE(v int) predicate.Lease {
	return predicate.Lease(sql.FieldGTE(FieldTermYears, v))
}

// TermYearsLT applies the LT predicate on the "term_years" field.
func TermYearsLT(v int) predicate.Lease {
	return predicate.Lease(sql.FieldLT(FieldTermYears, v))
}

// TermYearsLTE applies the LTE predicate on the "term_years" field.
func TermYearsLTE(v int) predicate.Lease {
	return predicate.Lease(sql.FieldLTE(FieldTermYears, v))
}

// TermYearsIsNil applies the IsNil predicate on the "term_years" field.
func TermYearsIsNil() predicate.Lease {
	return predicate.Lease(sql.FieldIsNull(FieldTermYears))
}

// TermYearsNotNil applies the NotNil predicate on the "term_years" field.
func TermYearsNotNil() predicate.Lease {
	return predicate.Lease(sql.FieldNotNull(FieldTermYears))
}

// EscalatorEQ applies the EQ predicate on the "escalator" field.
func EscalatorEQ(v float64) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldEscalator, v))
}

// EscalatorNEQ applies the NEQ predicate on the "escalator" field.
func EscalatorNEQ(v float64) predicate.Lease {
	return predicate.Lease(sql.FieldNEQ(FieldEscalator, v))
}

// EscalatorIn applies the In predicate on the "escalator" field.
func EscalatorIn(vs ...float64) predicate.Lease {
	return predicate.Lease(sql.FieldIn(FieldEscalator, vs...))
}

// EscalatorNotIn applies the NotIn predicate on the "escalator" field.
func EscalatorNotIn(vs ...float64) predicate.Lease {
	return predicate.Lease(sql.FieldNotIn(FieldEscalator, vs...))
}

// EscalatorGT applies the GT predicate on the "escalator" field.
func EscalatorGT(v float64) predicate.Lease {
	return predicate.Lease(sql.FieldGT(FieldEscalator, v))
}

// EscalatorGTE applies the GTE predicate on the "escalator" field.
func EscalatorGTE(v float64) predicate.Lease {
	return predicate.Lease(sql.FieldGTE(FieldEscalator, v))
}

// EscalatorLT applies the LT predicate on the "escalator" field.
func EscalatorLT(v float64) predicate.Lease {
	return predicate.Lease(sql.FieldLT(FieldEscalator, v))
}

// EscalatorLTE applies the LTE predicate on the "escalator" field.
func EscalatorLTE(v float64) predicate.Lease {
	return predicate.Lease(sql.FieldLTE(FieldEscalator, v))
}

// RiskTierEQ applies the EQ predicate on the "risk_tier" field.
func RiskTierEQ(v string) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldRiskTier, v))
}

// RiskTierNEQ applies the NEQ predicate on the "risk_tier" field.
func RiskTierNEQ(v string) predicate.Lease {
	return predicate.Lease(sql.FieldNEQ(FieldRiskTier, v))
}

// RiskTierIn applies the In predicate on the "risk_tier" field.
func RiskTierIn(vs ...string) predicate.Lease {
	return predicate.Lease(sql.FieldIn(FieldRiskTier, vs...))
}

// RiskTierNotIn applies the NotIn predicate on the "risk_tier" field.
func RiskTierNotIn(vs ...string) predicate.Lease {
	return predicate.Lease(sql.FieldNotIn(FieldRiskTier, vs...))
}

// RiskTierGT applies the GT predicate on the "risk_tier" field.
func RiskTierGT(v string) predicate.Lease {
	return predicate.Lease(sql.FieldGT(FieldRiskTier, v))
}

// RiskTierGTE applies the GTE predicate on the "risk_tier" field.
func RiskTierGTE(v string) predicate.Lease {
	return predicate.Lease(sql.FieldGTE(FieldRiskTier, v))
}

// RiskTierLT applies the LT predicate on the "risk_tier" field.
func RiskTierLT(v string) predicate.Lease {
	return predicate.Lease(sql.FieldLT(FieldRiskTier, v))
}

// RiskTierLTE applies the LTE predicate on the "risk_tier" field.
func RiskTierLTE(v string) predicate.Lease {
	return predicate.Lease(sql.FieldLTE(FieldRiskTier, v))
}

// RiskTierContains applies the Contains predicate on the "risk_tier" field.
func RiskTierContains(v string) predicate.Lease {
	return predicate.Lease(sql.FieldContains(FieldRiskTier, v))
}

// RiskTierHasPrefix applies the HasPrefix predicate on the "risk_tier" field.
func RiskTierHasPrefix(v string) predicate.Lease {
	return predicate.Lease(sql.FieldHasPrefix(FieldRiskTier, v))
}

// RiskTierHasSuffix applies the HasSuffix predicate on the "risk_tier" field.
func RiskTierHasSuffix(v string) predicate.Lease {
	return predicate.Lease(sql.FieldHasSuffix(FieldRiskTier, v))
}

// RiskTierEqualFold applies the EqualFold predicate on the "risk_tier" field.
func RiskTierEqualFold(v string) predicate.Lease {
	return predicate.Lease(sql.FieldEqualFold(FieldRiskTier, v))
}

// RiskTierContainsFold applies the ContainsFold predicate on the "risk_tier" field.
func RiskTierContainsFold(v string) predicate.Lease {
	return predicate.Lease(sql.FieldContainsFold(FieldRiskTier, v))
}

// LocationEQ applies the EQ predicate on the "location" field.
func LocationEQ(v string) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldLocation, v))
}

// LocationNEQ applies the NEQ predicate on the "location" field.
func LocationNEQ(v string) predicate.Lease {
	return predicate.Lease(sql.FieldNEQ(FieldLocation, v))
}

// LocationIn applies the In predicate on the "location" field.
func LocationIn(vs ...string) predicate.Lease {
	return predicate.Lease(sql.FieldIn(FieldLocation, vs...))
}

// LocationNotIn applies the NotIn predicate on the "location" field.
func LocationNotIn(vs ...string) predicate.Lease {
	return predicate.Lease(sql.FieldNotIn(FieldLocation, vs...))
}

// LocationGT applies the GT predicate on the "location" field.
func LocationGT(v string) predicate.Lease {
	return predicate.Lease(sql.FieldGT(FieldLocation, v))
}

// LocationGTE applies the GTE predicate on the "location" field.
func LocationGTE(v string) predicate.Lease {
	return predicate.Lease(sql.FieldGTE(FieldLocation, v))
}

// LocationLT applies the LT predicate on the "location" field.
func LocationLT(v string) predicate.Lease {
	return predicate.Lease(sql.FieldLT(FieldLocation, v))
}

// LocationLTE applies the LTE predicate on the "location" field.
func LocationLTE(v string) predicate.Lease {
	return predicate.Lease(sql.FieldLTE(FieldLocation, v))
}

// LocationContains applies the Contains predicate on the "location" field.
func LocationContains(v string) predicate.Lease {
	return predicate.Lease(sql.FieldContains(FieldLocation, v))
}

// LocationHasPrefix applies the HasPrefix predicate on the "location" field.
func LocationHasPrefix(v string) predicate.Lease {
	return predicate.Lease(sql.FieldHasPrefix(FieldLocation, v))
}

// LocationHasSuffix applies the HasSuffix predicate on the "location" field.
func LocationHasSuffix(v string) predicate.Lease {
	return predicate.Lease(sql.FieldHasSuffix(FieldLocation, v))
}

// LocationIsNil applies the IsNil predicate on the "location" field.
func LocationIsNil() predicate.Lease {
	return predicate.Lease(sql.FieldIsNull(FieldLocation))
}

// LocationNotNil applies the NotNil predicate on the "location" field.
func LocationNotNil() predicate.Lease {
	return predicate.Lease(sql.FieldNotNull(FieldLocation))
}

// LocationEqualFold applies the EqualFold predicate on the "location" field.
func LocationEqualFold(v string) predicate.Lease {
	return predicate.Lease(sql.FieldEqualFold(FieldLocation, v))
}

// LocationContainsFold applies the ContainsFold predicate on the "location" field.
func LocationContainsFold(v string) predicate.Lease {
	return predicate.Lease(sql.FieldContainsFold(FieldLocation, v))
}

// AcresEQ applies the EQ predicate on the "acres" field.
func AcresEQ(v float64) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldAcres, v))
}

// AcresNEQ applies the NEQ predicate on the "acres" field.
func AcresNEQ(v float64) predicate.Lease {
	return predicate.Lease(sql.FieldNEQ(FieldAcres, v))
}

// AcresIn applies the In predicate on the "acres" field.
func AcresIn(vs ...float64) predicate.Lease {
	return predicate.Lease(sql.FieldIn(FieldAcres, vs...))
}

// AcresNotIn applies the NotIn predicate on the "acres" field.
func AcresNotIn(vs ...float64) predicate.Lease {
	return predicate.Lease(sql.FieldNotIn(FieldAcres, vs...))
}

// AcresGT applies the GT predicate on the "acres" field.
func AcresGT(v float64) predicate.Lease {
	return predicate.Lease(sql.FieldGT(FieldAcres, v))
}

// AcresGTE applies the GTE predicate on the "acres" field.
func AcresGTE(v float64) predicate.Lease {
	return predicate.Lease(sql.FieldGTE(FieldAcres, v))
}

// AcresLT applies the LT predicate on the "acres" field.
func AcresLT(v float64) predicate.Lease {
	return predicate.Lease(sql.FieldLT(FieldAcres, v))
}

// AcresLTE applies the LTE predicate on the "acres" field.
func AcresLTE(v float64) predicate.Lease {
	return predicate.Lease(sql.FieldLTE(FieldAcres, v))
}

// AcresIsNil applies the IsNil predicate on the "acres" field.
func AcresIsNil() predicate.Lease {
	return predicate.Lease(sql.FieldIsNull(FieldAcres))
}

// AcresNotNil applies the NotNil predicate on the "acres" field.
func AcresNotNil() predicate.Lease {
	return predicate.Lease(sql.FieldNotNull(FieldAcres))
}

// DeveloperEQ applies the EQ predicate on the "developer" field.
func DeveloperEQ(v string) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldDeveloper, v))
}

// DeveloperNEQ applies the NEQ predicate on the "developer" field.
func DeveloperNEQ(v string) predicate.Lease {
	return predicate.Lease(sql.FieldNEQ(FieldDeveloper, v))
}

// DeveloperIn applies the In predicate on the "developer" field.
func DeveloperIn(vs ...string) predicate.Lease {
	return predicate.Lease(sql.FieldIn(FieldDeveloper, vs...))
}

// DeveloperNotIn applies the NotIn predicate on the "developer" field.
func DeveloperNotIn(vs ...string) predicate.Lease {
	return predicate.Lease(sql.FieldNotIn(FieldDeveloper, vs...))
}

// DeveloperGT applies the GT predicate on the "developer" field.
func DeveloperGT(v string) predicate.Lease {
	return predicate.Lease(sql.FieldGT(FieldDeveloper, v))
}

// DeveloperGTE applies the GTE predicate on the "developer" field.
func DeveloperGTE(v string) predicate.Lease {
	return predicate.Lease(sql.FieldGTE(FieldDeveloper, v))
}

// DeveloperLT applies the LT predicate on the "developer" field.
func DeveloperLT(v string) predicate.Lease {
	return predicate.Lease(sql.FieldLT(FieldDeveloper, v))
}

// DeveloperLTE applies the LTE predicate on the "developer" field.
func DeveloperLTE(v string) predicate.Lease {
	return predicate.Lease(sql.FieldLTE(FieldDeveloper, v))
}

// DeveloperContains applies the Contains predicate on the "developer" field.
func DeveloperContains(v string) predicate.Lease {
	return predicate.Lease(sql.FieldContains(FieldDeveloper, v))
}

// DeveloperHasPrefix applies the HasPrefix predicate on the "developer" field.
func DeveloperHasPrefix(v string) predicate.Lease {
	return predicate.Lease(sql.FieldHasPrefix(FieldDeveloper, v))
}

// DeveloperHasSuffix applies the HasSuffix predicate on the "developer" field.
func DeveloperHasSuffix(v string) predicate.Lease {
	return predicate.Lease(sql.FieldHasSuffix(FieldDeveloper, v))
}

// DeveloperIsNil applies the IsNil predicate on the "developer" field.
func DeveloperIsNil() predicate.Lease {
	return predicate.Lease(sql.FieldIsNull(FieldDeveloper))
}

// DeveloperNotNil applies the NotNil predicate on the "developer" field.
func DeveloperNotNil() predicate.Lease {
	return predicate.Lease(sql.FieldNotNull(FieldDeveloper))
}

// DeveloperEqualFold applies the EqualFold predicate on the "developer" field.
func DeveloperEqualFold(v string) predicate.Lease {
	return predicate.Lease(sql.FieldEqualFold(FieldDeveloper, v))
}

// DeveloperContainsFold applies the ContainsFold predicate on the "developer" field.
func DeveloperContainsFold(v string) predicate.Lease {
	return predicate.Lease(sql.FieldContainsFold(FieldDeveloper, v))
}

// LandownersEQ applies the EQ predicate on the "landowners" field.
func LandownersEQ(v string) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldLandowners, v))
}

// LandownersNEQ applies the NEQ predicate on the "landowners" field.
func LandownersNEQ(v string) predicate.Lease {
	return predicate.Lease(sql.FieldNEQ(FieldLandowners, v))
}

// LandownersIn applies the In predicate on the "landowners" field.
func LandownersIn(vs ...string) predicate.Lease {
	return predicate.Lease(sql.FieldIn(FieldLandowners, vs...))
}

// LandownersNotIn applies the NotIn predicate on the "landowners" field.
func LandownersNotIn(vs ...string) predicate.Lease {
	return predicate.Lease(sql.FieldNotIn(FieldLandowners, vs...))
}

// LandownersGT applies the GT predicate on the "landowners" field.
func LandownersGT(v string) predicate.Lease {
	return predicate.Lease(sql.FieldGT(FieldLandowners, v))
}

// LandownersGTE applies the GTE predicate on the "landowners" field.
func LandownersGTE(v string) predicate.Lease {
	return predicate.Lease(sql.FieldGTE(FieldLandowners, v))
}

// LandownersLT applies the LT predicate on the "landowners" field.
func LandownersLT(v string) predicate.Lease {
	return predicate.Lease(sql.FieldLT(FieldLandowners, v))
}

// LandownersLTE applies the LTE predicate on the "landowners" field.
func LandownersLTE(v string) predicate.Lease {
	return predicate.Lease(sql.FieldLTE(FieldLandowners, v))
}

// LandownersContains applies the Contains predicate on the "landowners" field.
func LandownersContains(v string) predicate.Lease {
	return predicate.Lease(sql.FieldContains(FieldLandowners, v))
}

// LandownersHasPrefix applies the HasPrefix predicate on the "landowners" field.
func LandownersHasPrefix(v string) predicate.Lease {
	return predicate.Lease(sql.FieldHasPrefix(FieldLandowners, v))
}

// LandownersHasSuffix applies the HasSuffix predicate on the "landowners" field.
func LandownersHasSuffix(v string) predicate.Lease {
	return predicate.Lease(sql.FieldHasSuffix(FieldLandowners, v))
}

// LandownersIsNil applies the IsNil predicate on the "landowners" field.
func LandownersIsNil() predicate.Lease {
	return predicate.Lease(sql.FieldIsNull(FieldLandowners))
}

// LandownersNotNil applies the NotNil predicate on the "landowners" field.
func LandownersNotNil() predicate.Lease {
	return predicate.Lease(sql.FieldNotNull(FieldLandowners))
}

// LandownersEqualFold applies the EqualFold predicate on the "landowners" field.
func LandownersEqualFold(v string) predicate.Lease {
	return predicate.Lease(sql.FieldEqualFold(FieldLandowners, v))
}

// LandownersContainsFold applies the ContainsFold predicate on the "landowners" field.
func LandownersContainsFold(v string) predicate.Lease {
	return predicate.Lease(sql.FieldContainsFold(FieldLandowners, v))
}

// NeedsReviewEQ applies the EQ predicate on the "needs_review" field.
func NeedsReviewEQ(v bool) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldNeedsReview, v))
}

// NeedsReviewNEQ applies the NEQ predicate on the "needs_review" field.
func NeedsReviewNEQ(v bool) predicate.Lease {
	return predicate.Lease(sql.FieldNEQ(FieldNeedsReview, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasPortfolio applies the HasEdge predicate on the "portfolio" edge.
func HasPortfolio() predicate.Lease {
	return predicate.Lease(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PortfolioTable, PortfolioColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPortfolioWith applies the HasEdge predicate on the "portfolio" edge with a given conditions (other predicates).
func HasPortfolioWith(preds ...predicate.Portfolio) predicate.Lease {
	return predicate.Lease(func(s *sql.Selector) {
		step := newPortfolioStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFiles applies the HasEdge predicate on the "files" edge.
func HasFiles() predicate.Lease {
	return predicate.Lease(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FilesTable, FilesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFilesWith applies the HasEdge predicate on the "files" edge with a given conditions (other predicates).
func HasFilesWith(preds ...predicate.LeaseFile) predicate.Lease {
	return predicate.Lease(func(s *sql.Selector) {
		step := newFilesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.Lease {
	return predicate.Lease(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.ExtractJob) predicate.Lease {
	return predicate.Lease(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Lease) predicate.Lease {
	return predicate.Lease(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Lease) predicate.Lease {
	return predicate.Lease(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Lease) predicate.Lease {
	return predicate.Lease(sql.NotPredicates(p))
}
