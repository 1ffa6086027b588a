package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/techreview-api/internal/domain/entity"
	"github.com/tu-usuario/techreview-api/internal/domain/repository"
)

var _ repository.TechnologyRepository = (*TechnologyRepo)(nil)

const technologyColumns = `id, category_id, name, brand, description, image, rating, created_at, updated_at, deleted_at`

// TechnologyRepo implementación del puerto TechnologyRepository sobre PostgreSQL.
type TechnologyRepo struct {
	q Querier
}

// NewTechnologyRepository construye el adaptador de persistencia para tecnologías.
func NewTechnologyRepository(q Querier) *TechnologyRepo {
	return &TechnologyRepo{q: q}
}

// Create persiste una nueva tecnología.
func (r *TechnologyRepo) Create(tech *entity.Technology) error {
	query := `
		INSERT INTO technologies (id, category_id, name, brand, description, image, rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		tech.ID, tech.CategoryID, tech.Name, tech.Brand, tech.Description,
		tech.Image, tech.Rating, tech.CreatedAt, tech.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert technology: %w", err)
	}
	return nil
}

// GetByID busca por id crudo, incluyendo registros borrados (auditoría).
func (r *TechnologyRepo) GetByID(id string) (*entity.Technology, error) {
	query := `SELECT ` + technologyColumns + ` FROM technologies WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get technology")
}

// GetActiveByID busca por id solo entre registros activos.
func (r *TechnologyRepo) GetActiveByID(id string) (*entity.Technology, error) {
	query := `SELECT ` + technologyColumns + ` FROM technologies WHERE id = $1 AND deleted_at IS NULL`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get active technology")
}

// FindActiveByIDs devuelve las tecnologías activas cuyo id esté en ids.
func (r *TechnologyRepo) FindActiveByIDs(ids []string) ([]*entity.Technology, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + technologyColumns + ` FROM technologies WHERE id = ANY($1) AND deleted_at IS NULL`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("find technologies by ids: %w", err)
	}
	return r.scanAll(rows)
}

// ListActive lista las tecnologías activas, más recientes primero.
func (r *TechnologyRepo) ListActive() ([]*entity.Technology, error) {
	query := `SELECT ` + technologyColumns + ` FROM technologies WHERE deleted_at IS NULL ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list technologies: %w", err)
	}
	return r.scanAll(rows)
}

// ListActiveByCategory lista las tecnologías activas de una categoría.
func (r *TechnologyRepo) ListActiveByCategory(categoryID string) ([]*entity.Technology, error) {
	query := `SELECT ` + technologyColumns + ` FROM technologies WHERE category_id = $1 AND deleted_at IS NULL ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list technologies by category: %w", err)
	}
	return r.scanAll(rows)
}

// SearchActiveByName busca por nombre con ILIKE (coincidencia parcial).
func (r *TechnologyRepo) SearchActiveByName(search string) ([]*entity.Technology, error) {
	query := `SELECT ` + technologyColumns + ` FROM technologies
		WHERE deleted_at IS NULL AND name ILIKE '%' || $1 || '%' ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, search)
	if err != nil {
		return nil, fmt.Errorf("search technologies: %w", err)
	}
	return r.scanAll(rows)
}

// Update actualiza una tecnología existente. Rating no se toca aquí (ver UpdateRating).
func (r *TechnologyRepo) Update(tech *entity.Technology) error {
	query := `
		UPDATE technologies SET category_id = $2, name = $3, brand = $4, description = $5, image = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		tech.ID, tech.CategoryID, tech.Name, tech.Brand, tech.Description, tech.Image, tech.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update technology: %w", err)
	}
	return nil
}

// UpdateRating actualiza solo el rating derivado (lo usa el recálculo de reviews).
func (r *TechnologyRepo) UpdateRating(id string, rating decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE technologies SET rating = $2, updated_at = now() WHERE id = $1`,
		id, rating,
	)
	if err != nil {
		return fmt.Errorf("update technology rating: %w", err)
	}
	return nil
}

// SoftDelete marca la tecnología como borrada y devuelve la fila actualizada.
func (r *TechnologyRepo) SoftDelete(id string) (*entity.Technology, error) {
	query := `
		UPDATE technologies SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + technologyColumns
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "soft delete technology")
}

func (r *TechnologyRepo) scanOne(row pgx.Row, op string) (*entity.Technology, error) {
	var t entity.Technology
	err := row.Scan(&t.ID, &t.CategoryID, &t.Name, &t.Brand, &t.Description, &t.Image,
		&t.Rating, &t.CreatedAt, &t.UpdatedAt, &t.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &t, nil
}

func (r *TechnologyRepo) scanAll(rows pgx.Rows) ([]*entity.Technology, error) {
	defer rows.Close()
	var list []*entity.Technology
	for rows.Next() {
		var t entity.Technology
		if err := rows.Scan(&t.ID, &t.CategoryID, &t.Name, &t.Brand, &t.Description, &t.Image,
			&t.Rating, &t.CreatedAt, &t.UpdatedAt, &t.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan technology: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
