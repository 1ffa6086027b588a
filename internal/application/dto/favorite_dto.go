package dto

// FavoriteResponse la lista de favoritos del usuario con el detalle de cada
// tecnología. Una lista vacía se representa con Technologies = [].
type FavoriteResponse struct {
	ID           string               `json:"id,omitempty"`
	Technologies []TechnologyResponse `json:"technologies"`
}
