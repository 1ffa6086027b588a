package repository

import "github.com/tu-usuario/techreview-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Category no tiene soft delete: Delete es físico.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	List() ([]*entity.Category, error)
	FindByIDs(ids []string) ([]*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id string) (*entity.Category, error)
}
