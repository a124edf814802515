package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/solargrid-io/lease-tracker/constants"
	"github.com/solargrid-io/lease-tracker/internal/common"
	"github.com/solargrid-io/lease-tracker/internal/doctext"
	"github.com/solargrid-io/lease-tracker/internal/extract"
)

// runextract extracts lease fields from a single document and prints them
// as JSON. No database involved; useful for spot checks and debugging
// pattern changes.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: runextract <document-path>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := common.LoadConfig()
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Extract.Timeout)
	defer cancel()

	var fields extract.LeaseFields
	ext := constants.NormalizeExt(filepath.Ext(path))
	if constants.MapExtToFormat(ext) == constants.JSON {
		raw, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read: %v\n", err)
			os.Exit(1)
		}
		fields, err = extract.DecodeStructured(raw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "decode: %v\n", err)
			os.Exit(1)
		}
	} else {
		extractor := doctext.NewExtractor(doctext.Config{
			Pdftotext: cfg.Extract.Pdftotext,
			MaxPages:  cfg.Extract.MaxPages,
		}, logger)

		start := time.Now()
		res, err := extractor.Extract(ctx, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "extract text: %v\n", err)
			os.Exit(1)
		}
		logger.Debug("text acquired",
			"method", res.Method, "pages", res.Pages,
			"elapsed_ms", time.Since(start).Milliseconds())

		fields = extract.ExtractLeaseFields(res.Text, filepath.Base(path))
	}

	if missing := fields.MissingCritical(); len(missing) > 0 {
		fmt.Fprintf(os.Stderr, "warning: missing fields: %v\n", missing)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fields); err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		os.Exit(1)
	}
}
