package repository

import "github.com/jmoreiradev/fardamento-api/internal/domain/entity"

// DamageRepository porta de persistência dos registros de avaria.
type DamageRepository interface {
	Create(record *entity.DamageRecord) error
	// SumByMovementAndVariant soma as quantidades já baixadas por avaria
	// para uma linha (movimentação + variação).
	SumByMovementAndVariant(movementID, itemVariantID string) (int, error)
	ListByMovement(movementID string) ([]*entity.DamageRecord, error)
}
