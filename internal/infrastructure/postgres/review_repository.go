package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/techreview-api/internal/domain/entity"
	"github.com/tu-usuario/techreview-api/internal/domain/repository"
)

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

const reviewColumns = `id, user_id, technology_id, rating, comment, created_at, updated_at, deleted_at`

// ReviewRepo implementación del puerto ReviewRepository sobre PostgreSQL.
type ReviewRepo struct {
	q Querier
}

// NewReviewRepository construye el adaptador de persistencia para reviews.
func NewReviewRepository(q Querier) *ReviewRepo {
	return &ReviewRepo{q: q}
}

// Create persiste una nueva review.
func (r *ReviewRepo) Create(review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, technology_id, rating, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		review.ID, review.UserID, review.TechnologyID, review.Rating,
		review.Comment, review.CreatedAt, review.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

// GetByID busca por id crudo, incluyendo registros borrados.
func (r *ReviewRepo) GetByID(id string) (*entity.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get review")
}

// ListActive lista las reviews activas, más recientes primero.
func (r *ReviewRepo) ListActive() ([]*entity.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE deleted_at IS NULL ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return r.scanAll(rows)
}

// ListActiveByTechnology lista las reviews activas de una tecnología.
// Alimenta el recálculo del rating promedio.
func (r *ReviewRepo) ListActiveByTechnology(technologyID string) ([]*entity.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews
		WHERE technology_id = $1 AND deleted_at IS NULL ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, technologyID)
	if err != nil {
		return nil, fmt.Errorf("list reviews by technology: %w", err)
	}
	return r.scanAll(rows)
}

// Update actualiza una review existente.
func (r *ReviewRepo) Update(review *entity.Review) error {
	query := `
		UPDATE reviews SET rating = $2, comment = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		review.ID, review.Rating, review.Comment, review.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	return nil
}

// SoftDelete marca la review como borrada y devuelve la fila actualizada.
func (r *ReviewRepo) SoftDelete(id string) (*entity.Review, error) {
	query := `
		UPDATE reviews SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + reviewColumns
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "soft delete review")
}

func (r *ReviewRepo) scanOne(row pgx.Row, op string) (*entity.Review, error) {
	var rv entity.Review
	err := row.Scan(&rv.ID, &rv.UserID, &rv.TechnologyID, &rv.Rating, &rv.Comment,
		&rv.CreatedAt, &rv.UpdatedAt, &rv.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &rv, nil
}

func (r *ReviewRepo) scanAll(rows pgx.Rows) ([]*entity.Review, error) {
	defer rows.Close()
	var list []*entity.Review
	for rows.Next() {
		var rv entity.Review
		if err := rows.Scan(&rv.ID, &rv.UserID, &rv.TechnologyID, &rv.Rating, &rv.Comment,
			&rv.CreatedAt, &rv.UpdatedAt, &rv.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		list = append(list, &rv)
	}
	return list, rows.Err()
}
