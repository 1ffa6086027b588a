package entity

import "time"

// Category agrupa tecnologías (ej. "Smartphones", "Laptops").
// No tiene soft delete: el borrado es físico y las tecnologías que la
// referencian quedan colgando (comportamiento heredado, ver DESIGN.md).
type Category struct {
	ID          string
	Name        string
	Description string
	Icon        string // URL del ícono, opcional
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
