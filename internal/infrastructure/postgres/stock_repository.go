package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jmoreiradev/fardamento-api/internal/domain/entity"
	"github.com/jmoreiradev/fardamento-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementação de StockRepository sobre PostgreSQL (pool ou tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository constrói o adaptador de estoque. Passar pool ou tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockColumns = "item_variant_id, location_id, total, reserved, updated_at"

// Get obtém os contadores de uma variação em uma unidade; nil se ausente.
func (r *StockRepo) Get(itemVariantID, locationID string) (*entity.StockRecord, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stock_records WHERE item_variant_id = $1 AND location_id = $2`
	return r.scanOne(query, itemVariantID, locationID)
}

// GetForUpdate obtém os contadores bloqueando a linha (SELECT FOR UPDATE);
// nil se ausente.
func (r *StockRepo) GetForUpdate(itemVariantID, locationID string) (*entity.StockRecord, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stock_records WHERE item_variant_id = $1 AND location_id = $2
		FOR UPDATE`
	return r.scanOne(query, itemVariantID, locationID)
}

func (r *StockRepo) scanOne(query, itemVariantID, locationID string) (*entity.StockRecord, error) {
	var s entity.StockRecord
	err := r.q.QueryRow(context.Background(), query, itemVariantID, locationID).Scan(
		&s.ItemVariantID, &s.LocationID, &s.Total, &s.Reserved, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock record: %w", err)
	}
	return &s, nil
}

// Upsert insere ou atualiza os contadores (por variação e unidade).
func (r *StockRepo) Upsert(record *entity.StockRecord) error {
	query := `
		INSERT INTO stock_records (item_variant_id, location_id, total, reserved, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (item_variant_id, location_id)
		DO UPDATE SET total = EXCLUDED.total, reserved = EXCLUDED.reserved, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		record.ItemVariantID, record.LocationID, record.Total, record.Reserved,
	)
	if err != nil {
		return fmt.Errorf("upsert stock record: %w", err)
	}
	return nil
}

// ListByLocation lista os contadores de uma unidade com paginação.
func (r *StockRepo) ListByLocation(locationID string, limit, offset int) ([]*entity.StockRecord, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stock_records WHERE location_id = $1
		ORDER BY item_variant_id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, locationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock records: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockRecord
	for rows.Next() {
		var s entity.StockRecord
		if err := rows.Scan(&s.ItemVariantID, &s.LocationID, &s.Total, &s.Reserved, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock record: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
