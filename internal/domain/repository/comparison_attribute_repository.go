package repository

import "github.com/tu-usuario/techreview-api/internal/domain/entity"

// ComparisonAttributeRepository define el puerto de persistencia para las filas
// clave/valor del motor de comparación (DIP).
type ComparisonAttributeRepository interface {
	Create(attr *entity.ComparisonAttribute) error
	// GetByID busca por id crudo, incluyendo filas borradas (auditoría).
	GetByID(id string) (*entity.ComparisonAttribute, error)
	// ListActiveByTechnology devuelve las filas activas de una tecnología en
	// orden de inserción (created_at, id). Ese orden es el que fija el
	// resultado determinista del diff.
	ListActiveByTechnology(technologyID string) ([]*entity.ComparisonAttribute, error)
	ListActive() ([]*entity.ComparisonAttribute, error)
	Update(attr *entity.ComparisonAttribute) error
	SoftDelete(id string) (*entity.ComparisonAttribute, error)
}
