package dto

import "time"

// MovementLineRequest linha de uma movimentação a criar.
type MovementLineRequest struct {
	ItemVariantID string `json:"item_variant_id"`
	Quantity      int    `json:"quantity"`
}

// CreateMovementRequest criação de entrega ou devolução.
type CreateMovementRequest struct {
	Kind         string                `json:"kind"` // ENTREGA | DEVOLUCAO
	LocationID   string                `json:"location_id"`
	EmployeeID   string                `json:"employee_id"`
	EmployeeName string                `json:"employee_name"`
	Lines        []MovementLineRequest `json:"lines"`
}

// AdvanceStatusRequest mudança de status de uma movimentação.
type AdvanceStatusRequest struct {
	Status string `json:"status"` // IN_TRANSIT | COMPLETED | CANCELED
}

// ListMovementsRequest filtros de listagem.
type ListMovementsRequest struct {
	LocationID string `query:"location_id"`
	Kind       string `query:"kind"`
	Status     string `query:"status"`
	From       string `query:"from"` // RFC 3339 ou 2006-01-02
	To         string `query:"to"`
	Query      string `query:"q"` // nome do colaborador (busca parcial)
	PageRequest
}

// MovementLineResponse linha na resposta.
type MovementLineResponse struct {
	ID            string `json:"id"`
	ItemVariantID string `json:"item_variant_id"`
	Quantity      int    `json:"quantity"`
}

// MovementEventResponse evento da trilha de auditoria na resposta.
type MovementEventResponse struct {
	Status    string    `json:"status"`
	ActorID   string    `json:"actor_id"`
	ActorName string    `json:"actor_name"`
	CreatedAt time.Time `json:"created_at"`
}

// MovementResponse movimentação completa (detalhe) ou resumida (listagem).
type MovementResponse struct {
	ID           string                  `json:"id"`
	Kind         string                  `json:"kind"`
	Status       string                  `json:"status"`
	LocationID   string                  `json:"location_id"`
	EmployeeID   string                  `json:"employee_id"`
	EmployeeName string                  `json:"employee_name"`
	Lines        []MovementLineResponse  `json:"lines,omitempty"`
	Events       []MovementEventResponse `json:"events,omitempty"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

// Actor usuário autenticado atribuído à trilha de auditoria.
type Actor struct {
	ID   string
	Name string
}
