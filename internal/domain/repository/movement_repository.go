package repository

import (
	"time"

	"github.com/jmoreiradev/fardamento-api/internal/domain/entity"
)

// MovementFilter filtros para listagem de movimentações.
type MovementFilter struct {
	LocationID string
	Kind       string
	Status     string
	From       *time.Time
	To         *time.Time
	TextQuery  string // busca parcial no nome do colaborador
	Limit      int
	Offset     int
}

// MovementRepository porta de persistência do agregado Movement
// (movimentação + linhas + eventos).
type MovementRepository interface {
	// Create persiste a movimentação, suas linhas e o evento inicial
	// na mesma transação do Querier subjacente.
	Create(movement *entity.Movement) error
	// GetByID carrega a movimentação com linhas e eventos; nil, nil se ausente.
	GetByID(id string) (*entity.Movement, error)
	// GetByIDForUpdate idem, bloqueando a linha da movimentação (FOR UPDATE).
	GetByIDForUpdate(id string) (*entity.Movement, error)
	// UpdateStatus grava status e updated_at.
	UpdateStatus(movement *entity.Movement) error
	// AppendEvent acrescenta um evento à trilha de auditoria.
	AppendEvent(event *entity.MovementEvent) error
	List(filter MovementFilter) ([]*entity.Movement, error)
}
