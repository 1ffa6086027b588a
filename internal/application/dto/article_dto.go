package dto

// CreateArticleRequest entrada para crear un artículo. La portada llega por multipart.
type CreateArticleRequest struct {
	TechnologyID string `json:"technology_id" form:"technology_id" validate:"required,uuid"`
	Title        string `json:"title" form:"title" validate:"required,min=1,max=300"`
	Content      string `json:"content" form:"content" validate:"required"`
	Excerpt      string `json:"excerpt" form:"excerpt"`
}

// UpdateArticleRequest entrada para actualizar; campos nil no se tocan.
type UpdateArticleRequest struct {
	TechnologyID *string `json:"technology_id" form:"technology_id" validate:"omitempty,uuid"`
	Title        *string `json:"title" form:"title"`
	Content      *string `json:"content" form:"content"`
	Excerpt      *string `json:"excerpt" form:"excerpt"`
}

// ArticleListItem forma compacta para listados y búsqueda
// (la forma que consume el frontend).
type ArticleListItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Author    string `json:"author"`
	Category  string `json:"category"`
	Date      string `json:"date"` // YYYY-MM-DD
	Excerpt   string `json:"excerpt,omitempty"`
}

// ArticleResponse salida completa de un artículo.
type ArticleResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Excerpt   string `json:"excerpt,omitempty"`
	Image     string `json:"image,omitempty"`
	Author    string `json:"author"`
	Category  string `json:"category"`
	Date      string `json:"date"` // YYYY-MM-DD
}
