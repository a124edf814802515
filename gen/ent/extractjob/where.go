// Code generated by ent, DO NOT EDIT.

package extractjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/solargrid-io/lease-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldLTE(FieldID, id))
}

// FileID applies equality check predicate on the "file_id" field. It's identical to FileIDEQ.
func FileID(v uuid.UUID) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldEQ(FieldFileID, v))
}

// PortfolioID applies equality check predicate on the "portfolio_id" field. It's identical to PortfolioIDEQ.
func PortfolioID(v uuid.UUID) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldEQ(FieldPortfolioID, v))
}

// LeaseID applies equality check predicate on the "lease_id" field. It's identical to LeaseIDEQ.
func LeaseID(v uuid.UUID) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldEQ(FieldLeaseID, v))
}

// Format applies equality check predicate on the "format" field. It's identical to FormatEQ.
func Format(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldEQ(FieldFormat, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldEQ(FieldFinishedAt, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldEQ(FieldStatus, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ExtractionConfidence applies equality check predicate on the "extraction_confidence" field. It's identical to ExtractionConfidenceEQ.
func ExtractionConfidence(v float32) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldEQ(FieldExtractionConfidence, v))
}

// NeedsReview applies equality check predicate on the "needs_review" field. It's identical to NeedsReviewEQ.
func NeedsReview(v bool) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldEQ(FieldNeedsReview, v))
}

// DocText applies equality check predicate on the "doc_text" field. It's identical to DocTextEQ.
func DocText(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldEQ(FieldDocText, v))
}

// Method applies equality check predicate on the "method" field. It's identical to MethodEQ.
func Method(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldEQ(FieldMethod, v))
}

// FileIDEQ applies the EQ predicate on the "file_id" field.
func FileIDEQ(v uuid.UUID) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldEQ(FieldFileID, v))
}

// FileIDNEQ applies the NEQ predicate on the "file_id" field.
func FileIDNEQ(v uuid.UUID) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldNEQ(FieldFileID, v))
}

// FileIDIn applies the In predicate on the "file_id" field.
func FileIDIn(vs ...uuid.UUID) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldIn(FieldFileID, vs...))
}

// FileIDNotIn applies the NotIn predicate on the "file_id" field.
func FileIDNotIn(vs ...uuid.UUID) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldNotIn(FieldFileID, vs...))
}

// PortfolioIDEQ applies the EQ predicate on the "portfolio_id" field.
func PortfolioIDEQ(v uuid.UUID) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldEQ(FieldPortfolioID, v))
}

// PortfolioIDNEQ applies the NEQ predicate on the "portfolio_id" field.
func PortfolioIDNEQ(v uuid.UUID) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldNEQ(FieldPortfolioID, v))
}

// PortfolioIDIn applies the In predicate on the "portfolio_id" field.
func PortfolioIDIn(vs ...uuid.UUID) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldIn(FieldPortfolioID, vs...))
}

// PortfolioIDNotIn applies the NotIn predicate on the "portfolio_id" field.
func PortfolioIDNotIn(vs ...uuid.UUID) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldNotIn(FieldPortfolioID, vs...))
}

// LeaseIDEQ applies the EQ predicate on the "lease_id" field.
func LeaseIDEQ(v uuid.UUID) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldEQ(FieldLeaseID, v))
}

// LeaseIDNEQ applies the NEQ predicate on the "lease_id" field.
func LeaseIDNEQ(v uuid.UUID) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldNEQ(FieldLeaseID, v))
}

// LeaseIDIn applies the In predicate on the "lease_id" field.
func LeaseIDIn(vs ...uuid.UUID) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldIn(FieldLeaseID, vs...))
}

// LeaseIDNotIn applies the NotIn predicate on the "lease_id" field.
func LeaseIDNotIn(vs ...uuid.UUID) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldNotIn(FieldLeaseID, vs...))
}

// LeaseIDIsNil applies the IsNil predicate on the "lease_id" field.
func LeaseIDIsNil() predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldIsNull(FieldLeaseID))
}

// LeaseIDNotNil applies the NotNil predicate on the "lease_id" field.
func LeaseIDNotNil() predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldNotNull(FieldLeaseID))
}

// FormatEQ applies the EQ predicate on the "format" field.
func FormatEQ(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldEQ(FieldFormat, v))
}

// FormatNEQ applies the NEQ predicate on the "format" field.
func FormatNEQ(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldNEQ(FieldFormat, v))
}

// FormatIn applies the In predicate on the "format" field.
func FormatIn(vs ...string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldIn(FieldFormat, vs...))
}

// FormatNotIn applies the NotIn predicate on the "format" field.
func FormatNotIn(vs ...string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldNotIn(FieldFormat, vs...))
}

// FormatGT applies the GT predicate on the "format" field.
func FormatGT(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldGT(FieldFormat, v))
}

// FormatGTE applies the GTE predicate on the "format" field.
func FormatGTE(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldGTE(FieldFormat, v))
}

// FormatLT applies the LT predicate on the "format" field.
func FormatLT(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldLT(FieldFormat, v))
}

// FormatLTE applies the LTE predicate on the "format" field.
func FormatLTE(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldLTE(FieldFormat, v))
}

// FormatContains applies the Contains predicate on the "format" field.
func FormatContains(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldContains(FieldFormat, v))
}

// FormatHasPrefix applies the HasPrefix predicate on the "format" field.
func FormatHasPrefix(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldHasPrefix(FieldFormat, v))
}

// FormatHasSuffix applies the HasSuffix predicate on the "format" field.
func FormatHasSuffix(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldHasSuffix(FieldFormat, v))
}

// FormatEqualFold applies the EqualFold predicate on the "format" field.
func FormatEqualFold(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldEqualFold(FieldFormat, v))
}

// FormatContainsFold applies the ContainsFold predicate on the "format" field.
func FormatContainsFold(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldContainsFold(FieldFormat, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldNotNull(FieldFinishedAt))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusIsNil applies the IsNil predicate on the "status" field.
func StatusIsNil() predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldIsNull(FieldStatus))
}

// StatusNotNil applies the NotNil predicate on the "status" field.
func StatusNotNil() predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldNotNull(FieldStatus))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldContainsFold(FieldStatus, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ExtractionConfidenceEQ applies the EQ predicate on the "extraction_confidence" field.
func ExtractionConfidenceEQ(v float32) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldEQ(FieldExtractionConfidence, v))
}

// ExtractionConfidenceNEQ applies the NEQ predicate on the "extraction_confidence" field.
func ExtractionConfidenceNEQ(v float32) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldNEQ(FieldExtractionConfidence, v))
}

// ExtractionConfidenceIn applies the In predicate on the "extraction_confidence" field.
func ExtractionConfidenceIn(vs ...float32) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldIn(FieldExtractionConfidence, vs...))
}

// ExtractionConfidenceNotIn applies the NotIn predicate on the "extraction_confidence" field.
func ExtractionConfidenceNotIn(vs ...float32) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldNotIn(FieldExtractionConfidence, vs...))
}

// ExtractionConfidenceGT applies the GT predicate on the "extraction_confidence" field.
func ExtractionConfidenceGT(v float32) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldGT(FieldExtractionConfidence, v))
}

// ExtractionConfidenceGTE applies the GTE predicate on the "extraction_confidence" field.
func ExtractionConfidenceGTE(v float32) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldGTE(FieldExtractionConfidence, v))
}

// ExtractionConfidenceLT applies the LT predicate on the "extraction_confidence" field.
func ExtractionConfidenceLT(v float32) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldLT(FieldExtractionConfidence, v))
}

// ExtractionConfidenceLTE applies the LTE predicate on the "extraction_confidence" field.
func ExtractionConfidenceLTE(v float32) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldLTE(FieldExtractionConfidence, v))
}

// ExtractionConfidenceIsNil applies the IsNil predicate on the "extraction_confidence" field.
func ExtractionConfidenceIsNil() predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldIsNull(FieldExtractionConfidence))
}

// ExtractionConfidenceNotNil applies the NotNil predicate on the "extraction_confidence" field.
func ExtractionConfidenceNotNil() predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldNotNull(FieldExtractionConfidence))
}

// NeedsReviewEQ applies the EQ predicate on the "needs_review" field.
func NeedsReviewEQ(v bool) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldEQ(FieldNeedsReview, v))
}

// NeedsReviewNEQ applies the NEQ predicate on the "needs_review" field.
func NeedsReviewNEQ(v bool) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldNEQ(FieldNeedsReview, v))
}

// DocTextEQ applies the EQ predicate on the "doc_text" field.
func DocTextEQ(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldEQ(FieldDocText, v))
}

// DocTextNEQ applies the NEQ predicate on the "doc_text" field.
func DocTextNEQ(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldNEQ(FieldDocText, v))
}

// DocTextIn applies the In predicate on the "doc_text" field.
func DocTextIn(vs ...string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldIn(FieldDocText, vs...))
}

// DocTextNotIn applies the NotIn predicate on the "doc_text" field.
func DocTextNotIn(vs ...string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldNotIn(FieldDocText, vs...))
}

// DocTextGT applies the GT predicate on the "doc_text" field.
func DocTextGT(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldGT(FieldDocText, v))
}

// DocTextGTE applies the GTE predicate on the "doc_text" field.
func DocTextGTE(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldGTE(FieldDocText, v))
}

// DocTextLT applies the LT predicate on the "doc_text" field.
func DocTextLT(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldLT(FieldDocText, v))
}

// DocTextLTE applies the LTE predicate on the "doc_text" field.
func DocTextLTE(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldLTE(FieldDocText, v))
}

// DocTextContains applies the Contains predicate on the "doc_text" field.
func DocTextContains(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldContains(FieldDocText, v))
}

// DocTextHasPrefix applies the HasPrefix predicate on the "doc_text" field.
func DocTextHasPrefix(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldHasPrefix(FieldDocText, v))
}

// DocTextHasSuffix applies the HasSuffix predicate on the "doc_text" field.
func DocTextHasSuffix(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldHasSuffix(FieldDocText, v))
}

// DocTextIsNil applies the IsNil predicate on the "doc_text" field.
func DocTextIsNil() predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldIsNull(FieldDocText))
}

// DocTextNotNil applies the NotNil predicate on the "doc_text" field.
func DocTextNotNil() predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldNotNull(FieldDocText))
}

// DocTextEqualFold applies the EqualFold predicate on the "doc_text" field.
func DocTextEqualFold(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldEqualFold(FieldDocText, v))
}

// DocTextContainsFold applies the ContainsFold predicate on the "doc_text" field.
func DocTextContainsFold(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldContainsFold(FieldDocText, v))
}

// ExtractedJSONIsNil applies the IsNil predicate on the "extracted_json" field.
func ExtractedJSONIsNil() predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldIsNull(FieldExtractedJSON))
}

// ExtractedJSONNotNil applies the NotNil predicate on the "extracted_json" field.
func ExtractedJSONNotNil() predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldNotNull(FieldExtractedJSON))
}

// MethodEQ applies the EQ predicate on the "method" field.
func MethodEQ(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldEQ(FieldMethod, v))
}

// MethodNEQ applies the NEQ predicate on the "method" field.
func MethodNEQ(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldNEQ(FieldMethod, v))
}

// MethodIn applies the In predicate on the "method" field.
func MethodIn(vs ...string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldIn(FieldMethod, vs...))
}

// MethodNotIn applies the NotIn predicate on the "method" field.
func MethodNotIn(vs ...string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldNotIn(FieldMethod, vs...))
}

// MethodGT applies the GT predicate on the "method" field.
func MethodGT(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldGT(FieldMethod, v))
}

// MethodGTE applies the GTE predicate on the "method" field.
func MethodGTE(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldGTE(FieldMethod, v))
}

// MethodLT applies the LT predicate on the "method" field.
func MethodLT(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldLT(FieldMethod, v))
}

// MethodLTE applies the LTE predicate on the "method" field.
func MethodLTE(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldLTE(FieldMethod, v))
}

// MethodContains applies the Contains predicate on the "method" field.
func MethodContains(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldContains(FieldMethod, v))
}

// MethodHasPrefix applies the HasPrefix predicate on the "method" field.
func MethodHasPrefix(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldHasPrefix(FieldMethod, v))
}

// MethodHasSuffix applies the HasSuffix predicate on the "method" field.
func MethodHasSuffix(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldHasSuffix(FieldMethod, v))
}

// MethodIsNil applies the IsNil predicate on the "method" field.
func MethodIsNil() predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldIsNull(FieldMethod))
}

// MethodNotNil applies the NotNil predicate on the "method" field.
func MethodNotNil() predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldNotNull(FieldMethod))
}

// MethodEqualFold applies the EqualFold predicate on the "method" field.
func MethodEqualFold(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldEqualFold(FieldMethod, v))
}

// MethodContainsFold applies the ContainsFold predicate on the "method" field.
func MethodContainsFold(v string) predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldContainsFold(FieldMethod, v))
}

// MethodParamsIsNil applies the IsNil predicate on the "method_params" field.
func MethodParamsIsNil() predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldIsNull(FieldMethodParams))
}

// MethodParamsNotNil applies the NotNil predicate on the "method_params" field.
func MethodParamsNotNil() predicate.ExtractJob {
	return predicate.ExtractJob(sql.FieldNotNull(FieldMethodParams))
}

// HasFile applies the HasEdge predicate on the "file" edge.
func HasFile() predicate.ExtractJob {
	return predicate.ExtractJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FileTable, FileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFileWith applies the HasEdge predicate on the "file" edge with a given conditions (other predicates).
func HasFileWith(preds ...predicate.LeaseFile) predicate.ExtractJob {
	return predicate.ExtractJob(func(s *sql.Selector) {
		step := newFileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPortfolio applies the HasEdge predicate on the "portfolio" edge.
func HasPortfolio() predicate.ExtractJob {
	return predicate.ExtractJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PortfolioTable, PortfolioColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPortfolioWith applies the HasEdge predicate on the "portfolio" edge with a given conditions (other predicates).
func HasPortfolioWith(preds ...predicate.Portfolio) predicate.ExtractJob {
	return predicate.ExtractJob(func(s *sql.Selector) {
		step := newPortfolioStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLease applies the HasEdge predicate on the "lease" edge.
func HasLease() predicate.ExtractJob {
	return predicate.ExtractJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LeaseTable, LeaseColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLeaseWith applies the HasEdge predicate on the "lease" edge with a given conditions (other predicates).
func HasLeaseWith(preds ...predicate.Lease) predicate.ExtractJob {
	return predicate.ExtractJob(func(s *sql.Selector) {
		step := newLeaseStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractJob) predicate.ExtractJob {
	return predicate.ExtractJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractJob) predicate.ExtractJob {
	return predicate.ExtractJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractJob) predicate.ExtractJob {
	return predicate.ExtractJob(sql.NotPredicates(p))
}
