package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Review es la valoración de un usuario sobre una tecnología (rating 1-5).
type Review struct {
	ID           string
	UserID       string
	TechnologyID string
	Rating       decimal.Decimal // 1.0 - 5.0
	Comment      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // soft delete: nil = activo
}
