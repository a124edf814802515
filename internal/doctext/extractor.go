package doctext

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/solargrid-io/lease-tracker/constants"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	MaxPages  int    // 0 = no limit
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Extract picks a strategy based on file extension. An unsupported extension
// is the only fatal outcome at this boundary.
func (e *Extractor) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	e.logger.Debug("starting text extraction", "path", path, "ext", ext)

	var res TextExtractionResult
	var err error
	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		res, err = e.extractPDF(ctx, path)
	case constants.DOCX:
		res, err = e.extractDOCX(path)
	case constants.TXT:
		res, err = e.extractTXT(path)
	default:
		e.logger.Error("unsupported document extension", "extension", ext)
		return TextExtractionResult{}, fmt.Errorf("unsupported extension: %q", ext)
	}
	res.Duration = time.Since(start)
	if err != nil {
		return res, err
	}

	res.Confidence = heuristicConfidence(res.Text)
	if res.Empty() {
		res.Warnings = append(res.Warnings, "no text extracted")
		e.logger.Warn("document produced no text", "path", path, "method", res.Method)
	}
	return res, nil
}

func (e *Extractor) extractPDF(ctx context.Context, path string) (TextExtractionResult, error) {
	args := []string{"-layout", "-enc", "UTF-8", "-eol", "unix"}
	if e.cfg.MaxPages > 0 {
		args = append(args, "-l", fmt.Sprintf("%d", e.cfg.MaxPages))
	}
	args = append(args, path, "-")

	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, args...)
	if err != nil {
		return TextExtractionResult{SourceType: constants.PDF, Warnings: []string{string(errb)}},
			fmt.Errorf("pdftotext: %w", err)
	}
	text := string(out)
	// pdftotext separates pages with a form feed
	pages := 1 + strings.Count(text, "\f")
	return TextExtractionResult{
		Text:       text,
		Pages:      pages,
		SourceType: constants.PDF,
		Method:     "pdf-text",
	}, nil
}

func (e *Extractor) extractTXT(path string) (TextExtractionResult, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return TextExtractionResult{SourceType: constants.TXT}, fmt.Errorf("read txt: %w", err)
	}
	return TextExtractionResult{
		Text:       string(b),
		Pages:      1,
		SourceType: constants.TXT,
		Method:     "txt-read",
	}, nil
}
