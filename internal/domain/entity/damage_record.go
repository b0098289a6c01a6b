package entity

import "time"

// DamageRecord baixa de estoque por avaria, registrada sobre uma devolução
// concluída. Imutável após a criação.
type DamageRecord struct {
	ID            string
	MovementID    string // devolução COMPLETED
	ItemVariantID string
	Quantity      int
	Description   string
	ActorID       string
	ActorName     string
	CreatedAt     time.Time
}
