package entity

import "time"

// Roles válidos para User. Un token ausente o inválido se resuelve como RoleGuest
// en el middleware; RoleGuest nunca se persiste.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
	RoleGuest = "guest"
)

// User representa un usuario del catálogo.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	ProfileImage string // URL en el object storage, vacío si no tiene
	Role         string // admin, user
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // soft delete: nil = activo
}
