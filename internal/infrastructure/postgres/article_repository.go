package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/techreview-api/internal/domain/entity"
	"github.com/tu-usuario/techreview-api/internal/domain/repository"
)

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

const articleColumns = `id, user_id, technology_id, title, content, excerpt, image, created_at, updated_at, deleted_at`

// ArticleRepo implementación del puerto ArticleRepository sobre PostgreSQL.
type ArticleRepo struct {
	q Querier
}

// NewArticleRepository construye el adaptador de persistencia para artículos.
func NewArticleRepository(q Querier) *ArticleRepo {
	return &ArticleRepo{q: q}
}

// Create persiste un nuevo artículo.
func (r *ArticleRepo) Create(article *entity.Article) error {
	query := `
		INSERT INTO articles (id, user_id, technology_id, title, content, excerpt, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		article.ID, article.UserID, article.TechnologyID, article.Title,
		article.Content, article.Excerpt, article.Image, article.CreatedAt, article.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// GetByID busca por id crudo, incluyendo registros borrados.
func (r *ArticleRepo) GetByID(id string) (*entity.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get article")
}

// ListActive lista los artículos activos, más recientes primero.
func (r *ArticleRepo) ListActive() ([]*entity.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE deleted_at IS NULL ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return r.scanAll(rows)
}

// SearchActiveByTitle busca por título con ILIKE (coincidencia parcial).
func (r *ArticleRepo) SearchActiveByTitle(search string) ([]*entity.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles
		WHERE deleted_at IS NULL AND title ILIKE '%' || $1 || '%' ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, search)
	if err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}
	return r.scanAll(rows)
}

// Update actualiza un artículo existente.
func (r *ArticleRepo) Update(article *entity.Article) error {
	query := `
		UPDATE articles SET technology_id = $2, title = $3, content = $4, excerpt = $5, image = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		article.ID, article.TechnologyID, article.Title, article.Content,
		article.Excerpt, article.Image, article.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	return nil
}

// SoftDelete marca el artículo como borrado y devuelve la fila actualizada.
func (r *ArticleRepo) SoftDelete(id string) (*entity.Article, error) {
	query := `
		UPDATE articles SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + articleColumns
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "soft delete article")
}

func (r *ArticleRepo) scanOne(row pgx.Row, op string) (*entity.Article, error) {
	var a entity.Article
	err := row.Scan(&a.ID, &a.UserID, &a.TechnologyID, &a.Title, &a.Content,
		&a.Excerpt, &a.Image, &a.CreatedAt, &a.UpdatedAt, &a.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &a, nil
}

func (r *ArticleRepo) scanAll(rows pgx.Rows) ([]*entity.Article, error) {
	defer rows.Close()
	var list []*entity.Article
	for rows.Next() {
		var a entity.Article
		if err := rows.Scan(&a.ID, &a.UserID, &a.TechnologyID, &a.Title, &a.Content,
			&a.Excerpt, &a.Image, &a.CreatedAt, &a.UpdatedAt, &a.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
