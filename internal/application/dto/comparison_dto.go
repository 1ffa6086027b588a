package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ComparisonRow una fila del diff: la clave y el valor de cada tecnología
// (o "-" cuando un lado no tiene la clave).
type ComparisonRow struct {
	KeySpec    string `json:"key_spec"`
	Tech1Value string `json:"tech1_value"`
	Tech2Value string `json:"tech2_value"`
}

// ComparisonTech resumen de una tecnología dentro del resultado de comparación.
type ComparisonTech struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Brand    string          `json:"brand,omitempty"`
	Image    string          `json:"image,omitempty"`
	Rating   decimal.Decimal `json:"rating"`
	Category CategorySummary `json:"category"`
}

// CompareResponse resultado de comparar dos tecnologías lado a lado.
// Es un valor derivado: se construye por petición y nunca se persiste.
type CompareResponse struct {
	Tech1      ComparisonTech  `json:"tech1"`
	Tech2      ComparisonTech  `json:"tech2"`
	Comparison []ComparisonRow `json:"comparison"`
}

// CreateComparisonRequest entrada para crear atributos de comparación.
// Acepta un solo par (Key/Value) o varios en paralelo (Keys/Values, misma
// longitud). La imagen opcional llega por multipart y se comparte entre
// todas las filas del lote.
type CreateComparisonRequest struct {
	TechnologyID string   `json:"technology_id" form:"technology_id" validate:"required,uuid"`
	Key          string   `json:"key" form:"key"`
	Value        string   `json:"value" form:"value"`
	Keys         []string `json:"keys" form:"keys"`
	Values       []string `json:"values" form:"values"`
}

// Pairs normaliza la entrada a listas paralelas. No valida longitudes.
func (r CreateComparisonRequest) Pairs() (keys, values []string) {
	if len(r.Keys) > 0 || len(r.Values) > 0 {
		return r.Keys, r.Values
	}
	if r.Key != "" || r.Value != "" {
		return []string{r.Key}, []string{r.Value}
	}
	return nil, nil
}

// UpdateComparisonRequest entrada para actualizar un atributo; campos nil no
// se tocan. La imagen, si llega, reemplaza la anterior.
type UpdateComparisonRequest struct {
	TechnologyID *string `json:"technology_id" form:"technology_id" validate:"omitempty,uuid"`
	Key          *string `json:"key" form:"key"`
	Value        *string `json:"value" form:"value"`
}

// AttributeTechnology tecnología dueña de un atributo, con su categoría.
type AttributeTechnology struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category CategorySummary `json:"category"`
}

// ComparisonAttributeResponse salida de una fila clave/valor.
// DeletedAt solo aparece en lecturas de auditoría por id.
type ComparisonAttributeResponse struct {
	ID         string              `json:"id"`
	Key        string              `json:"key"`
	Value      string              `json:"value"`
	Image      string              `json:"image,omitempty"`
	Technology AttributeTechnology `json:"technology"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
	DeletedAt  *time.Time          `json:"deleted_at,omitempty"`
}
