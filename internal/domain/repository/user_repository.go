package repository

import "github.com/tu-usuario/techreview-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos Get/Find/List devuelven solo registros activos salvo GetByID,
// que busca por id crudo (auditoría).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	ListActive() ([]*entity.User, error)
	SoftDelete(id string) (*entity.User, error)
}
