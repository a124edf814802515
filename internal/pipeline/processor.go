package processor

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	parse "github.com/solargrid-io/lease-tracker/internal/pipeline/parsefields"
	"github.com/solargrid-io/lease-tracker/internal/pipeline/textextract"
)

// Processor coordinates text acquisition then field parse.
type Processor struct {
	Logger *slog.Logger
	Text   *textextract.Pipeline
	Parse  *parse.Pipeline
}

func NewProcessor(logger *slog.Logger, text *textextract.Pipeline, parse *parse.Pipeline) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Text: text, Parse: parse}
}

// ProcessFile runs the text stage for a fileID (creating/advancing
// extract_job), then runs the field parse on the resulting job, and upserts
// the lease. Returns the final jobID (same one started by the text stage).
func (p *Processor) ProcessFile(ctx context.Context, fileID uuid.UUID) (uuid.UUID, error) {
	jobID, txtRes, err := p.Text.Run(ctx, fileID)
	if err != nil {
		p.Logger.Error("processor.text.failed", "file_id", fileID, "err", err)
		return jobID, err
	}
	p.Logger.Info("processor.text.ok",
		"file_id", fileID,
		"job_id", jobID,
		"method", txtRes.Method,
		"pages", txtRes.Pages,
		"confidence", txtRes.Confidence,
	)

	if _, err := p.Parse.Run(ctx, jobID); err != nil {
		p.Logger.Error("processor.parse.failed", "job_id", jobID, "err", err)
		return jobID, err
	}
	p.Logger.Info("processor.parse.ok", "job_id", jobID)
	return jobID, nil
}
