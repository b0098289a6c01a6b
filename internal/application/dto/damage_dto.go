package dto

import "time"

// DamageItemRequest item avariado a baixar do estoque.
type DamageItemRequest struct {
	ItemVariantID string `json:"item_variant_id"`
	Quantity      int    `json:"quantity"`
	Description   string `json:"description,omitempty"`
}

// RegisterDamageRequest corpo de registro de avarias sobre uma devolução.
type RegisterDamageRequest struct {
	Items []DamageItemRequest `json:"items"`
}

// DamageRecordResponse registro de avaria criado (sem relações pesadas).
type DamageRecordResponse struct {
	ID            string    `json:"id"`
	ItemVariantID string    `json:"item_variant_id"`
	Quantity      int       `json:"quantity"`
	Description   string    `json:"description,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
