package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/techreview-api/internal/domain"
	"github.com/tu-usuario/techreview-api/internal/domain/entity"
	"github.com/tu-usuario/techreview-api/internal/domain/repository"
)

var _ repository.FavoriteRepository = (*FavoriteRepo)(nil)

// FavoriteRepo implementación del puerto FavoriteRepository sobre PostgreSQL.
// Los elementos viven en favorite_items con PK compuesta (favorite_id, technology_id).
type FavoriteRepo struct {
	q Querier
}

// NewFavoriteRepository construye el adaptador de persistencia para favoritos.
func NewFavoriteRepository(q Querier) *FavoriteRepo {
	return &FavoriteRepo{q: q}
}

// Create persiste una nueva lista de favoritos.
func (r *FavoriteRepo) Create(fav *entity.Favorite) error {
	query := `INSERT INTO favorites (id, user_id, created_at) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, fav.ID, fav.UserID, fav.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: el usuario ya tiene lista de favoritos", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert favorite: %w", err)
	}
	return nil
}

// GetActiveByUser devuelve la lista activa del usuario o nil si no tiene.
func (r *FavoriteRepo) GetActiveByUser(userID string) (*entity.Favorite, error) {
	query := `SELECT id, user_id, created_at, deleted_at FROM favorites
		WHERE user_id = $1 AND deleted_at IS NULL`
	var f entity.Favorite
	err := r.q.QueryRow(context.Background(), query, userID).
		Scan(&f.ID, &f.UserID, &f.CreatedAt, &f.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get favorite by user: %w", err)
	}
	return &f, nil
}

// AddItem agrega una tecnología a la lista.
func (r *FavoriteRepo) AddItem(item *entity.FavoriteItem) error {
	query := `INSERT INTO favorite_items (favorite_id, technology_id, created_at) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, item.FavoriteID, item.TechnologyID, item.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: la tecnología ya está en favoritos", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert favorite item: %w", err)
	}
	return nil
}

// HasItem verifica si la tecnología ya está en la lista.
func (r *FavoriteRepo) HasItem(favoriteID, technologyID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM favorite_items WHERE favorite_id = $1 AND technology_id = $2)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, favoriteID, technologyID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check favorite item: %w", err)
	}
	return exists, nil
}

// RemoveItem quita una tecnología de la lista.
func (r *FavoriteRepo) RemoveItem(favoriteID, technologyID string) error {
	query := `DELETE FROM favorite_items WHERE favorite_id = $1 AND technology_id = $2`
	tag, err := r.q.Exec(context.Background(), query, favoriteID, technologyID)
	if err != nil {
		return fmt.Errorf("delete favorite item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: la tecnología no está en favoritos", domain.ErrNotFound)
	}
	return nil
}

// ListItems devuelve los ids de tecnología de la lista en orden de inserción.
func (r *FavoriteRepo) ListItems(favoriteID string) ([]string, error) {
	query := `SELECT technology_id FROM favorite_items
		WHERE favorite_id = $1 ORDER BY created_at, technology_id`
	rows, err := r.q.Query(context.Background(), query, favoriteID)
	if err != nil {
		return nil, fmt.Errorf("list favorite items: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan favorite item: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
