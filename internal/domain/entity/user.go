package entity

import "time"

// Papéis de usuário.
const (
	RoleAdmin      = "admin"
	RoleAlmoxarife = "almoxarife" // opera o almoxarifado (movimentações)
	RoleConsultivo = "consulta"   // somente leitura
)

// User usuário do sistema (autenticação e atribuição de auditoria).
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
