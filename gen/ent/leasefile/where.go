// Code generated by ent, DO NOT EDIT.

package leasefile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/solargrid-io/lease-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldLTE(FieldID, id))
}

// PortfolioID applies equality check predicate on the "portfolio_id" field. It's identical to PortfolioIDEQ.
func PortfolioID(v uuid.UUID) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldEQ(FieldPortfolioID, v))
}

// LeaseID applies equality check predicate on the "lease_id" field. It's identical to LeaseIDEQ.
func LeaseID(v uuid.UUID) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldEQ(FieldLeaseID, v))
}

// SourcePath applies equality check predicate on the "source_path" field. It's identical to SourcePathEQ.
func SourcePath(v string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldEQ(FieldSourcePath, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldEQ(FieldFilename, v))
}

// FileExt applies equality check predicate on the "file_ext" field. It's identical to FileExtEQ.
func FileExt(v string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldEQ(FieldFileExt, v))
}

// FileSize applies equality check predicate on the "file_size" field. It's identical to FileSizeEQ.
func FileSize(v int) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldEQ(FieldFileSize, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v []byte) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldEQ(FieldContentHash, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldEQ(FieldUploadedAt, v))
}

// PortfolioIDEQ applies the EQ predicate on the "portfolio_id" field.
func PortfolioIDEQ(v uuid.UUID) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldEQ(FieldPortfolioID, v))
}

// PortfolioIDNEQ applies the NEQ predicate on the "portfolio_id" field.
func PortfolioIDNEQ(v uuid.UUID) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldNEQ(FieldPortfolioID, v))
}

// PortfolioIDIn applies the In predicate on the "portfolio_id" field.
func PortfolioIDIn(vs ...uuid.UUID) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldIn(FieldPortfolioID, vs...))
}

// PortfolioIDNotIn applies the NotIn predicate on the "portfolio_id" field.
func PortfolioIDNotIn(vs ...uuid.UUID) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldNotIn(FieldPortfolioID, vs...))
}

// LeaseIDEQ applies the EQ predicate on the "lease_id" field.
func LeaseIDEQ(v uuid.UUID) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldEQ(FieldLeaseID, v))
}

// LeaseIDNEQ applies the NEQ predicate on the "lease_id" field.
func LeaseIDNEQ(v uuid.UUID) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldNEQ(FieldLeaseID, v))
}

// LeaseIDIn applies the In predicate on the "lease_id" field.
func LeaseIDIn(vs ...uuid.UUID) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldIn(FieldLeaseID, vs...))
}

// LeaseIDNotIn applies the NotIn predicate on the "lease_id" field.
func LeaseIDNotIn(vs ...uuid.UUID) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldNotIn(FieldLeaseID, vs...))
}

// LeaseIDIsNil applies the IsNil predicate on the "lease_id" field.
func LeaseIDIsNil() predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldIsNull(FieldLeaseID))
}

// LeaseIDNotNil applies the NotNil predicate on the "lease_id" field.
func LeaseIDNotNil() predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldNotNull(FieldLeaseID))
}

// SourcePathEQ applies the EQ predicate on the "source_path" field.
func SourcePathEQ(v string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldEQ(FieldSourcePath, v))
}

// SourcePathNEQ applies the NEQ predicate on the "source_path" field.
func SourcePathNEQ(v string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldNEQ(FieldSourcePath, v))
}

// SourcePathIn applies the In predicate on the "source_path" field.
func SourcePathIn(vs ...string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldIn(FieldSourcePath, vs...))
}

// SourcePathNotIn applies the NotIn predicate on the "source_path" field.
func SourcePathNotIn(vs ...string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldNotIn(FieldSourcePath, vs...))
}

// SourcePathGT applies the GT predicate on the "source_path" field.
func SourcePathGT(v string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldGT(FieldSourcePath, v))
}

// SourcePathGTE applies the GTE predicate on the "source_path" field.
func SourcePathGTE(v string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldGTE(FieldSourcePath, v))
}

// SourcePathLT applies the LT predicate on the "source_path" field.
func SourcePathLT(v string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldLT(FieldSourcePath, v))
}

// SourcePathLTE applies the LTE predicate on the "source_path" field.
func SourcePathLTE(v string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldLTE(FieldSourcePath, v))
}

// SourcePathContains applies the Contains predicate on the "source_path" field.
func SourcePathContains(v string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldContains(FieldSourcePath, v))
}

// SourcePathHasPrefix applies the HasPrefix predicate on the "source_path" field.
func SourcePathHasPrefix(v string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldHasPrefix(FieldSourcePath, v))
}

// SourcePathHasSuffix applies the HasSuffix predicate on the "source_path" field.
func SourcePathHasSuffix(v string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldHasSuffix(FieldSourcePath, v))
}

// SourcePathEqualFold applies the EqualFold predicate on the "source_path" field.
func SourcePathEqualFold(v string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldEqualFold(FieldSourcePath, v))
}

// SourcePathContainsFold applies the ContainsFold predicate on the "source_path" field.
func SourcePathContainsFold(v string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldContainsFold(FieldSourcePath, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldContainsFold(FieldFilename, v))
}

// FileExtEQ applies the EQ predicate on the "file_ext" field.
func FileExtEQ(v string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldEQ(FieldFileExt, v))
}

// FileExtNEQ applies the NEQ predicate on the "file_ext" field.
func FileExtNEQ(v string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldNEQ(FieldFileExt, v))
}

// FileExtIn applies the In predicate on the "file_ext" field.
func FileExtIn(vs ...string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldIn(FieldFileExt, vs...))
}

// FileExtNotIn applies the NotIn predicate on the "file_ext" field.
func FileExtNotIn(vs ...string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldNotIn(FieldFileExt, vs...))
}

// FileExtGT applies the GT predicate on the "file_ext" field.
func FileExtGT(v string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldGT(FieldFileExt, v))
}

// FileExtGTE applies the GTE predicate on the "file_ext" field.
func FileExtGTE(v string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldGTE(FieldFileExt, v))
}

// FileExtLT applies the LT predicate on the "file_ext" field.
func FileExtLT(v string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldLT(FieldFileExt, v))
}

// FileExtLTE applies the LTE predicate on the "file_ext" field.
func FileExtLTE(v string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldLTE(FieldFileExt, v))
}

// FileExtContains applies the Contains predicate on the "file_ext" field.
func FileExtContains(v string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldContains(FieldFileExt, v))
}

// FileExtHasPrefix applies the HasPrefix predicate on the "file_ext" field.
func FileExtHasPrefix(v string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldHasPrefix(FieldFileExt, v))
}

// FileExtHasSuffix applies the HasSuffix predicate on the "file_ext" field.
func FileExtHasSuffix(v string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldHasSuffix(FieldFileExt, v))
}

// FileExtEqualFold applies the EqualFold predicate on the "file_ext" field.
func FileExtEqualFold(v string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldEqualFold(FieldFileExt, v))
}

// FileExtContainsFold applies the ContainsFold predicate on the "file_ext" field.
func FileExtContainsFold(v string) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldContainsFold(FieldFileExt, v))
}

// FileSizeEQ applies the EQ predicate on the "file_size" field.
func FileSizeEQ(v int) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldEQ(FieldFileSize, v))
}

// FileSizeNEQ applies the NEQ predicate on the "file_size" field.
func FileSizeNEQ(v int) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldNEQ(FieldFileSize, v))
}

// FileSizeIn applies the In predicate on the "file_size" field.
func FileSizeIn(vs ...int) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldIn(FieldFileSize, vs...))
}

// FileSizeNotIn applies the NotIn predicate on the "file_size" field.
func FileSizeNotIn(vs ...int) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldNotIn(FieldFileSize, vs...))
}

// FileSizeGT applies the GT predicate on the "file_size" field.
func FileSizeGT(v int) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldGT(FieldFileSize, v))
}

// FileSizeGTE applies the GTE predicate on the "file_size" field.
func FileSizeGTE(v int) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldGTE(FieldFileSize, v))
}

// FileSizeLT applies the LT predicate on the "file_size" field.
func FileSizeLT(v int) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldLT(FieldFileSize, v))
}

// FileSizeLTE applies the LTE predicate on the "file_size" field.
func FileSizeLTE(v int) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldLTE(FieldFileSize, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v []byte) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v []byte) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...[]byte) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...[]byte) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v []byte) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v []byte) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v []byte) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v []byte) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldLTE(FieldContentHash, v))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.LeaseFile {
	return predicate.LeaseFile(sql.FieldLTE(FieldUploadedAt, v))
}

// HasPortfolio applies the HasEdge predicate on the "portfolio" edge.
func HasPortfolio() predicate.LeaseFile {
	return predicate.LeaseFile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PortfolioTable, PortfolioColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPortfolioWith applies the HasEdge predicate on the "portfolio" edge with a given conditions (other predicates).
func HasPortfolioWith(preds ...predicate.Portfolio) predicate.LeaseFile {
	return predicate.LeaseFile(func(s *sql.Selector) {
		step := newPortfolioStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLease applies the HasEdge predicate on the "lease" edge.
func HasLease() predicate.LeaseFile {
	return predicate.LeaseFile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LeaseTable, LeaseColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLeaseWith applies the HasEdge predicate on the "lease" edge with a given conditions (other predicates).
func HasLeaseWith(preds ...predicate.Lease) predicate.LeaseFile {
	return predicate.LeaseFile(func(s *sql.Selector) {
		step := newLeaseStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.LeaseFile {
	return predicate.LeaseFile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.ExtractJob) predicate.LeaseFile {
	return predicate.LeaseFile(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LeaseFile) predicate.LeaseFile {
	return predicate.LeaseFile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LeaseFile) predicate.LeaseFile {
	return predicate.LeaseFile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LeaseFile) predicate.LeaseFile {
	return predicate.LeaseFile(sql.NotPredicates(p))
}
