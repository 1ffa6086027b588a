package entity

import "time"

// Article es un artículo editorial asociado a una tecnología.
type Article struct {
	ID           string
	UserID       string // autor
	TechnologyID string
	Title        string
	Content      string
	Excerpt      string
	Image        string // URL de portada, opcional
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // soft delete: nil = activo
}
