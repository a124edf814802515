package entity

import (
	"time"

	"github.com/google/uuid"
)

// LeaseFile represents an ingested source document for data transfer between layers.
type LeaseFile struct {
	ID          uuid.UUID  `json:"id"`
	PortfolioID uuid.UUID  `json:"portfolio_id"`
	LeaseID     *uuid.UUID `json:"lease_id,omitempty"`
	SourcePath  string     `json:"source_path"`
	Filename    string     `json:"filename"`
	FileExt     string     `json:"file_ext"`
	FileSize    int        `json:"file_size"`
	ContentHash []byte     `json:"content_hash"`
	UploadedAt  time.Time  `json:"uploaded_at"`
}
