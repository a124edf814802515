package entity

import (
	"time"

	"github.com/google/uuid"
)

// Portfolio represents a portfolio for data transfer between layers.
type Portfolio struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Region      *string   `json:"region,omitempty"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
