package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateReviewRequest entrada para crear una review (rating 1-5).
type CreateReviewRequest struct {
	TechnologyID string          `json:"technology_id" validate:"required,uuid"`
	Rating       decimal.Decimal `json:"rating" validate:"required"`
	Comment      string          `json:"comment" validate:"required"`
}

// UpdateReviewRequest entrada para actualizar; campos nil no se tocan.
type UpdateReviewRequest struct {
	Rating  *decimal.Decimal `json:"rating"`
	Comment *string          `json:"comment"`
}

// ReviewResponse salida de una review con autor y tecnología.
type ReviewResponse struct {
	ID         string            `json:"id"`
	Rating     decimal.Decimal   `json:"rating"`
	Comment    string            `json:"comment"`
	User       UserSummary       `json:"user"`
	Technology TechnologySummary `json:"technology"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}
