package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/techreview-api/internal/domain/entity"
)

// TechnologyRepository define el puerto de persistencia para Technology (DIP).
type TechnologyRepository interface {
	Create(tech *entity.Technology) error
	// GetByID busca por id crudo, incluyendo registros borrados (auditoría).
	GetByID(id string) (*entity.Technology, error)
	// GetActiveByID busca por id solo entre registros activos.
	GetActiveByID(id string) (*entity.Technology, error)
	// FindActiveByIDs devuelve las tecnologías activas cuyo id esté en ids.
	// Puede devolver menos elementos que ids; el caller decide qué hacer.
	FindActiveByIDs(ids []string) ([]*entity.Technology, error)
	ListActive() ([]*entity.Technology, error)
	ListActiveByCategory(categoryID string) ([]*entity.Technology, error)
	// SearchActiveByName busca por nombre con coincidencia parcial sin distinguir mayúsculas.
	SearchActiveByName(query string) ([]*entity.Technology, error)
	Update(tech *entity.Technology) error
	// UpdateRating actualiza solo el rating derivado (lo usa el caso de uso de reviews).
	UpdateRating(id string, rating decimal.Decimal) error
	SoftDelete(id string) (*entity.Technology, error)
}
