package postgres

import (
	"context"
	"fmt"

	"github.com/jmoreiradev/fardamento-api/internal/domain/entity"
	"github.com/jmoreiradev/fardamento-api/internal/domain/repository"
)

var _ repository.DamageRepository = (*DamageRepo)(nil)

// DamageRepo implementação de DamageRepository sobre PostgreSQL (pool ou tx).
type DamageRepo struct {
	q Querier
}

// NewDamageRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewDamageRepository(q Querier) *DamageRepo {
	return &DamageRepo{q: q}
}

// Create persiste um registro de avaria.
func (r *DamageRepo) Create(record *entity.DamageRecord) error {
	query := `
		INSERT INTO damage_records (id, movement_id, item_variant_id, quantity, description, actor_id, actor_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	description := (*string)(nil)
	if record.Description != "" {
		description = &record.Description
	}
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.MovementID, record.ItemVariantID, record.Quantity,
		description, record.ActorID, record.ActorName, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert damage record: %w", err)
	}
	return nil
}

// SumByMovementAndVariant soma as quantidades já baixadas para uma linha.
func (r *DamageRepo) SumByMovementAndVariant(movementID, itemVariantID string) (int, error) {
	query := `
		SELECT COALESCE(SUM(quantity), 0)
		FROM damage_records WHERE movement_id = $1 AND item_variant_id = $2`
	var total int
	err := r.q.QueryRow(context.Background(), query, movementID, itemVariantID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum damage records: %w", err)
	}
	return total, nil
}

// ListByMovement lista as avarias registradas sobre uma devolução.
func (r *DamageRepo) ListByMovement(movementID string) ([]*entity.DamageRecord, error) {
	query := `
		SELECT id, movement_id, item_variant_id, quantity, description, actor_id, actor_name, created_at
		FROM damage_records WHERE movement_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, movementID)
	if err != nil {
		return nil, fmt.Errorf("list damage records: %w", err)
	}
	defer rows.Close()
	var list []*entity.DamageRecord
	for rows.Next() {
		var d entity.DamageRecord
		var description *string
		if err := rows.Scan(&d.ID, &d.MovementID, &d.ItemVariantID, &d.Quantity,
			&description, &d.ActorID, &d.ActorName, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan damage record: %w", err)
		}
		if description != nil {
			d.Description = *description
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
