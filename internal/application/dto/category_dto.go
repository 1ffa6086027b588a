package dto

// CreateCategoryRequest entrada para crear una categoría. El ícono llega por multipart.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"required"`
}

// UpdateCategoryRequest entrada para actualizar; campos nil no se tocan.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

// CategorySummary referencia mínima a la categoría dentro de otra respuesta.
type CategorySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CategoryWithTechnologiesResponse categoría con sus tecnologías activas (vista admin).
type CategoryWithTechnologiesResponse struct {
	CategoryResponse
	Technologies []TechnologySummary `json:"technologies"`
}
