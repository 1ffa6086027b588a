package repository

import "github.com/tu-usuario/techreview-api/internal/domain/entity"

// ReviewRepository define el puerto de persistencia para Review (DIP).
type ReviewRepository interface {
	Create(review *entity.Review) error
	GetByID(id string) (*entity.Review, error)
	ListActive() ([]*entity.Review, error)
	// ListActiveByTechnology alimenta el recálculo del rating promedio.
	ListActiveByTechnology(technologyID string) ([]*entity.Review, error)
	Update(review *entity.Review) error
	SoftDelete(id string) (*entity.Review, error)
}
