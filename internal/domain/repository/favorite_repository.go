package repository

import "github.com/tu-usuario/techreview-api/internal/domain/entity"

// FavoriteRepository define el puerto de persistencia para la lista de
// favoritos y sus elementos (DIP).
type FavoriteRepository interface {
	Create(fav *entity.Favorite) error
	// GetActiveByUser devuelve la lista activa del usuario o nil si no tiene.
	GetActiveByUser(userID string) (*entity.Favorite, error)
	AddItem(item *entity.FavoriteItem) error
	HasItem(favoriteID, technologyID string) (bool, error)
	RemoveItem(favoriteID, technologyID string) error
	// ListItems devuelve los ids de tecnología de la lista en orden de inserción.
	ListItems(favoriteID string) ([]string, error)
}
