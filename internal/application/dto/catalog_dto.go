package dto

import "time"

// CreateLocationRequest criação/atualização de unidade.
type CreateLocationRequest struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

// LocationResponse unidade na resposta.
type LocationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateItemTypeRequest criação/atualização de tipo de item.
type CreateItemTypeRequest struct {
	Name string `json:"name"`
}

// ItemTypeResponse tipo de item na resposta.
type ItemTypeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateItemVariantRequest criação/atualização de variação.
type CreateItemVariantRequest struct {
	ItemTypeID string `json:"item_type_id"`
	Size       string `json:"size"`
	Gender     string `json:"gender"`
}

// ItemVariantResponse variação na resposta.
type ItemVariantResponse struct {
	ID         string    `json:"id"`
	ItemTypeID string    `json:"item_type_id"`
	Size       string    `json:"size"`
	Gender     string    `json:"gender"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateEmployeeRequest criação/atualização de colaborador.
type CreateEmployeeRequest struct {
	Name         string `json:"name"`
	Registration string `json:"registration"`
	LocationID   string `json:"location_id"`
}

// EmployeeResponse colaborador na resposta.
type EmployeeResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Registration string    `json:"registration"`
	LocationID   string    `json:"location_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// StockRecordResponse contadores de estoque na resposta de consulta.
type StockRecordResponse struct {
	ItemVariantID string    `json:"item_variant_id"`
	LocationID    string    `json:"location_id"`
	Total         int       `json:"total"`
	Reserved      int       `json:"reserved"`
	Available     int       `json:"available"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// EmployeeBalanceResponse saldo de um colaborador por variação.
type EmployeeBalanceResponse struct {
	ItemVariantID string    `json:"item_variant_id"`
	Quantity      int       `json:"quantity"`
	UpdatedAt     time.Time `json:"updated_at"`
}
