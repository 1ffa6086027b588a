package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTechnologyRequest entrada para crear una tecnología. La imagen llega por multipart.
type CreateTechnologyRequest struct {
	CategoryID  string `json:"category_id" validate:"required,uuid"`
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Brand       string `json:"brand" validate:"omitempty,max=200"`
	Description string `json:"description"`
}

// UpdateTechnologyRequest entrada para actualizar; campos nil no se tocan.
type UpdateTechnologyRequest struct {
	CategoryID  *string `json:"category_id" validate:"omitempty,uuid"`
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Brand       *string `json:"brand"`
	Description *string `json:"description"`
}

// TechnologyResponse salida completa de una tecnología.
type TechnologyResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand,omitempty"`
	Description string          `json:"description,omitempty"`
	Image       string          `json:"image,omitempty"`
	Rating      decimal.Decimal `json:"rating"`
	Category    CategorySummary `json:"category"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TechnologySummary referencia mínima a una tecnología dentro de otra respuesta.
type TechnologySummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Brand string `json:"brand,omitempty"`
}
