package entity

import "time"

// Tipos de movimentação.
const (
	MovementKindDelivery = "ENTREGA"   // estoque -> colaborador
	MovementKindReturn   = "DEVOLUCAO" // colaborador -> estoque
)

// Status do ciclo de vida de uma movimentação.
const (
	StatusCreated   = "CREATED"
	StatusInTransit = "IN_TRANSIT"
	StatusCompleted = "COMPLETED"
	StatusCanceled  = "CANCELED"
)

// allowedTransitions tabela de transições válidas do status atual para o próximo.
// COMPLETED e CANCELED são terminais.
var allowedTransitions = map[string][]string{
	StatusCreated:   {StatusInTransit, StatusCompleted, StatusCanceled},
	StatusInTransit: {StatusCompleted, StatusCanceled},
	StatusCompleted: {},
	StatusCanceled:  {},
}

// ValidKind informa se o tipo de movimentação é conhecido.
func ValidKind(kind string) bool {
	return kind == MovementKindDelivery || kind == MovementKindReturn
}

// ValidStatus informa se o status é conhecido.
func ValidStatus(status string) bool {
	_, ok := allowedTransitions[status]
	return ok
}

// CanTransition informa se a transição from -> to está na tabela.
func CanTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Movement agrega uma entrega ou devolução: linhas imutáveis e trilha de
// eventos append-only. Kind e as linhas não mudam após a criação; apenas
// Status e a lista de eventos são mutáveis.
type Movement struct {
	ID           string
	Kind         string // ENTREGA | DEVOLUCAO
	Status       string
	LocationID   string
	EmployeeID   string
	EmployeeName string // denormalizado na criação, nunca atualizado
	Lines        []MovementLine
	Events       []MovementEvent
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MovementLine item de uma movimentação (quantidade sempre > 0).
type MovementLine struct {
	ID            string
	MovementID    string
	ItemVariantID string
	Quantity      int
}

// MovementEvent registro de auditoria de uma mudança de status,
// incluindo o status inicial.
type MovementEvent struct {
	ID         string
	MovementID string
	Status     string
	ActorID    string
	ActorName  string
	CreatedAt  time.Time
}

// LineFor devolve a linha da variação informada, ou nil se não existir.
func (m *Movement) LineFor(itemVariantID string) *MovementLine {
	for i := range m.Lines {
		if m.Lines[i].ItemVariantID == itemVariantID {
			return &m.Lines[i]
		}
	}
	return nil
}
