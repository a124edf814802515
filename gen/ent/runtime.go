// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/solargrid-io/lease-tracker/db/ent/schema"
	"github.com/solargrid-io/lease-tracker/gen/ent/extractjob"
	"github.com/solargrid-io/lease-tracker/gen/ent/lease"
	"github.com/solargrid-io/lease-tracker/gen/ent/leasefile"
	"github.com/solargrid-io/lease-tracker/gen/ent/portfolio"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	extractjobFields := schema.ExtractJob{}.Fields()
	_ = extractjobFields
	// extractjobDescFormat is the schema descriptor for format field.
	extractjobDescFormat := extractjobFields[4].Descriptor()
	// extractjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	extractjob.FormatValidator = func() func(string) error {
		validators := extractjobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractjobDescStartedAt is the schema descriptor for started_at field.
	extractjobDescStartedAt := extractjobFields[5].Descriptor()
	// extractjob.DefaultStartedAt holds the default value on creation for the started_at field.
	extractjob.DefaultStartedAt = extractjobDescStartedAt.Default.(func() time.Time)
	// extractjobDescNeedsReview is the schema descriptor for needs_review field.
	extractjobDescNeedsReview := extractjobFields[10].Descriptor()
	// extractjob.DefaultNeedsReview holds the default value on creation for the needs_review field.
	extractjob.DefaultNeedsReview = extractjobDescNeedsReview.Default.(bool)
	// extractjobDescID is the schema descriptor for id field.
	extractjobDescID := extractjobFields[0].Descriptor()
	// extractjob.DefaultID holds the default value on creation for the id field.
	extractjob.DefaultID = extractjobDescID.Default.(func() uuid.UUID)
	leaseFields := schema.Lease{}.Fields()
	_ = leaseFields
	// leaseDescName is the schema descriptor for name field.
	leaseDescName := leaseFields[2].Descriptor()
	// lease.NameValidator is a validator for the "name" field. It is called by the builders before save.
	lease.NameValidator = leaseDescName.Validators[0].(func(string) error)
	// leaseDescEscalator is the schema descriptor for escalator field.
	leaseDescEscalator := leaseFields[5].Descriptor()
	// lease.DefaultEscalator holds the default value on creation for the escalator field.
	lease.DefaultEscalator = leaseDescEscalator.Default.(float64)
	// leaseDescRiskTier is the schema descriptor for risk_tier field.
	leaseDescRiskTier := leaseFields[6].Descriptor()
	// lease.DefaultRiskTier holds the default value on creation for the risk_tier field.
	lease.DefaultRiskTier = leaseDescRiskTier.Default.(string)
	// lease.RiskTierValidator is a validator for the "risk_tier" field. It is called by the builders before save.
	lease.RiskTierValidator = leaseDescRiskTier.Validators[0].(func(string) error)
	// leaseDescAcres is the schema descriptor for acres field.
	leaseDescAcres := leaseFields[8].Descriptor()
	// lease.AcresValidator is a validator for the "acres" field. It is called by the builders before save.
	lease.AcresValidator = leaseDescAcres.Validators[0].(func(float64) error)
	// leaseDescNeedsReview is the schema descriptor for needs_review field.
	leaseDescNeedsReview := leaseFields[11].Descriptor()
	// lease.DefaultNeedsReview holds the default value on creation for the needs_review field.
	lease.DefaultNeedsReview = leaseDescNeedsReview.Default.(bool)
	// leaseDescCreatedAt is the schema descriptor for created_at field.
	leaseDescCreatedAt := leaseFields[12].Descriptor()
	// lease.DefaultCreatedAt holds the default value on creation for the created_at field.
	lease.DefaultCreatedAt = leaseDescCreatedAt.Default.(func() time.Time)
	// leaseDescUpdatedAt is the schema descriptor for updated_at field.
	leaseDescUpdatedAt := leaseFields[13].Descriptor()
	// lease.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lease.DefaultUpdatedAt = leaseDescUpdatedAt.Default.(func() time.Time)
	// lease.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lease.UpdateDefaultUpdatedAt = leaseDescUpdatedAt.UpdateDefault.(func() time.Time)
	// leaseDescID is the schema descriptor for id field.
	leaseDescID := leaseFields[0].Descriptor()
	// lease.DefaultID holds the default value on creation for the id field.
	lease.DefaultID = leaseDescID.Default.(func() uuid.UUID)
	leasefileFields := schema.LeaseFile{}.Fields()
	_ = leasefileFields
	// leasefileDescSourcePath is the schema descriptor for source_path field.
	leasefileDescSourcePath := leasefileFields[3].Descriptor()
	// leasefile.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	leasefile.SourcePathValidator = leasefileDescSourcePath.Validators[0].(func(string) error)
	// leasefileDescFilename is the schema descriptor for filename field.
	leasefileDescFilename := leasefileFields[4].Descriptor()
	// leasefile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	leasefile.FilenameValidator = leasefileDescFilename.Validators[0].(func(string) error)
	// leasefileDescFileExt is the schema descriptor for file_ext field.
	leasefileDescFileExt := leasefileFields[5].Descriptor()
	// leasefile.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	leasefile.FileExtValidator = leasefileDescFileExt.Validators[0].(func(string) error)
	// leasefileDescFileSize is the schema descriptor for file_size field.
	leasefileDescFileSize := leasefileFields[6].Descriptor()
	// leasefile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	leasefile.FileSizeValidator = leasefileDescFileSize.Validators[0].(func(int) error)
	// leasefileDescContentHash is the schema descriptor for content_hash field.
	leasefileDescContentHash := leasefileFields[7].Descriptor()
	// leasefile.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	leasefile.ContentHashValidator = leasefileDescContentHash.Validators[0].(func([]byte) error)
	// leasefileDescUploadedAt is the schema descriptor for uploaded_at field.
	leasefileDescUploadedAt := leasefileFields[8].Descriptor()
	// leasefile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	leasefile.DefaultUploadedAt = leasefileDescUploadedAt.Default.(func() time.Time)
	// leasefileDescID is the schema descriptor for id field.
	leasefileDescID := leasefileFields[0].Descriptor()
	// leasefile.DefaultID holds the default value on creation for the id field.
	leasefile.DefaultID = leasefileDescID.Default.(func() uuid.UUID)
	portfolioFields := schema.Portfolio{}.Fields()
	_ = portfolioFields
	// portfolioDescName is the schema descriptor for name field.
	portfolioDescName := portfolioFields[1].Descriptor()
	// portfolio.NameValidator is a validator for the "name" field. It is called by the builders before save.
	portfolio.NameValidator = portfolioDescName.Validators[0].(func(string) error)
	// portfolioDescCreatedAt is the schema descriptor for created_at field.
	portfolioDescCreatedAt := portfolioFields[4].Descriptor()
	// portfolio.DefaultCreatedAt holds the default value on creation for the created_at field.
	portfolio.DefaultCreatedAt = portfolioDescCreatedAt.Default.(func() time.Time)
	// portfolioDescUpdatedAt is the schema descriptor for updated_at field.
	portfolioDescUpdatedAt := portfolioFields[5].Descriptor()
	// portfolio.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	portfolio.DefaultUpdatedAt = portfolioDescUpdatedAt.Default.(func() time.Time)
	// portfolio.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	portfolio.UpdateDefaultUpdatedAt = portfolioDescUpdatedAt.UpdateDefault.(func() time.Time)
	// portfolioDescID is the schema descriptor for id field.
	portfolioDescID := portfolioFields[0].Descriptor()
	// portfolio.DefaultID holds the default value on creation for the id field.
	portfolio.DefaultID = portfolioDescID.Default.(func() uuid.UUID)
}
