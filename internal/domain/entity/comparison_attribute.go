package entity

import "time"

// ComparisonAttribute es un hecho comparable de una tecnología: una fila
// clave/valor (ej. "RAM" -> "8GB") con imagen opcional. El motor de
// comparación calcula la unión de claves de dos tecnologías sobre estas filas.
//
// Dentro de las filas activas de una tecnología la clave debería ser única
// (índice parcial en el store); si datos legados tienen duplicados, gana la
// primera fila en orden de inserción.
type ComparisonAttribute struct {
	ID           string
	TechnologyID string
	Key          string
	Value        string
	Image        string // URL opcional
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // soft delete: nil = activo
}
