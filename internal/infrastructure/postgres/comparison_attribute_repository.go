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

var _ repository.ComparisonAttributeRepository = (*ComparisonAttributeRepo)(nil)

const comparisonAttributeColumns = `id, technology_id, key, value, image, created_at, updated_at, deleted_at`

// ComparisonAttributeRepo implementación del puerto ComparisonAttributeRepository
// sobre PostgreSQL. La tabla tiene un índice parcial único sobre
// (technology_id, key) WHERE deleted_at IS NULL.
type ComparisonAttributeRepo struct {
	q Querier
}

// NewComparisonAttributeRepository construye el adaptador. Acepta el pool o una
// transacción (ver TxRunner para la creación en lote).
func NewComparisonAttributeRepository(q Querier) *ComparisonAttributeRepo {
	return &ComparisonAttributeRepo{q: q}
}

// Create persiste una fila clave/valor.
func (r *ComparisonAttributeRepo) Create(attr *entity.ComparisonAttribute) error {
	query := `
		INSERT INTO comparison_attributes (id, technology_id, key, value, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		attr.ID, attr.TechnologyID, attr.Key, attr.Value, attr.Image, attr.CreatedAt, attr.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: clave '%s' ya existe para la tecnología", domain.ErrDuplicate, attr.Key)
		}
		return fmt.Errorf("insert comparison attribute: %w", err)
	}
	return nil
}

// GetByID busca por id crudo, incluyendo filas borradas (auditoría).
func (r *ComparisonAttributeRepo) GetByID(id string) (*entity.ComparisonAttribute, error) {
	query := `SELECT ` + comparisonAttributeColumns + ` FROM comparison_attributes WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get comparison attribute")
}

// ListActiveByTechnology devuelve las filas activas de una tecnología en orden
// de inserción. Ese orden fija el resultado determinista del diff.
func (r *ComparisonAttributeRepo) ListActiveByTechnology(technologyID string) ([]*entity.ComparisonAttribute, error) {
	query := `SELECT ` + comparisonAttributeColumns + ` FROM comparison_attributes
		WHERE technology_id = $1 AND deleted_at IS NULL ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query, technologyID)
	if err != nil {
		return nil, fmt.Errorf("list comparison attributes by technology: %w", err)
	}
	return r.scanAll(rows)
}

// ListActive lista todas las filas activas, más recientes primero.
func (r *ComparisonAttributeRepo) ListActive() ([]*entity.ComparisonAttribute, error) {
	query := `SELECT ` + comparisonAttributeColumns + ` FROM comparison_attributes
		WHERE deleted_at IS NULL ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list comparison attributes: %w", err)
	}
	return r.scanAll(rows)
}

// Update actualiza una fila existente.
func (r *ComparisonAttributeRepo) Update(attr *entity.ComparisonAttribute) error {
	query := `
		UPDATE comparison_attributes SET technology_id = $2, key = $3, value = $4, image = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		attr.ID, attr.TechnologyID, attr.Key, attr.Value, attr.Image, attr.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: clave '%s' ya existe para la tecnología", domain.ErrDuplicate, attr.Key)
		}
		return fmt.Errorf("update comparison attribute: %w", err)
	}
	return nil
}

// SoftDelete marca la fila como borrada y devuelve la fila actualizada.
func (r *ComparisonAttributeRepo) SoftDelete(id string) (*entity.ComparisonAttribute, error) {
	query := `
		UPDATE comparison_attributes SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + comparisonAttributeColumns
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "soft delete comparison attribute")
}

func (r *ComparisonAttributeRepo) scanOne(row pgx.Row, op string) (*entity.ComparisonAttribute, error) {
	var a entity.ComparisonAttribute
	err := row.Scan(&a.ID, &a.TechnologyID, &a.Key, &a.Value, &a.Image, &a.CreatedAt, &a.UpdatedAt, &a.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &a, nil
}

func (r *ComparisonAttributeRepo) scanAll(rows pgx.Rows) ([]*entity.ComparisonAttribute, error) {
	defer rows.Close()
	var list []*entity.ComparisonAttribute
	for rows.Next() {
		var a entity.ComparisonAttribute
		if err := rows.Scan(&a.ID, &a.TechnologyID, &a.Key, &a.Value, &a.Image, &a.CreatedAt, &a.UpdatedAt, &a.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan comparison attribute: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
