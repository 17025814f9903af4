package entity

import "time"

// User representa un usuario autenticado (el principal actuante).
// Cada usuario es dueño de a lo sumo un BusinessProfile.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FullName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
