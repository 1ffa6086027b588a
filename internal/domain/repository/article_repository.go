package repository

import "github.com/tu-usuario/techreview-api/internal/domain/entity"

// ArticleRepository define el puerto de persistencia para Article (DIP).
type ArticleRepository interface {
	Create(article *entity.Article) error
	GetByID(id string) (*entity.Article, error)
	ListActive() ([]*entity.Article, error)
	// SearchActiveByTitle busca por título con coincidencia parcial sin distinguir mayúsculas.
	SearchActiveByTitle(query string) ([]*entity.Article, error)
	Update(article *entity.Article) error
	SoftDelete(id string) (*entity.Article, error)
}
