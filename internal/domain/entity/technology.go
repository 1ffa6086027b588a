package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Technology es una entrada del catálogo (un teléfono, una laptop, etc.).
// Rating es derivado: lo recalcula el caso de uso de reviews como promedio
// de las reviews activas; nadie más lo escribe.
type Technology struct {
	ID          string
	CategoryID  string
	Name        string
	Brand       string
	Description string
	Image       string // URL en el object storage, vacío si no tiene
	Rating      decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // soft delete: nil = activo
}
