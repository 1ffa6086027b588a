package entity

import "time"

// Favorite es la lista de favoritos de un usuario (una por usuario).
type Favorite struct {
	ID        string
	UserID    string
	CreatedAt time.Time
	DeletedAt *time.Time // soft delete: nil = activo
}

// FavoriteItem vincula una tecnología a una lista de favoritos.
// La pareja (FavoriteID, TechnologyID) es única.
type FavoriteItem struct {
	FavoriteID   string
	TechnologyID string
	CreatedAt    time.Time
}
