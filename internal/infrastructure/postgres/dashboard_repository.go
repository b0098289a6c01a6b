package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoreiradev/fardamento-api/internal/application/dto"
	"github.com/jmoreiradev/fardamento-api/internal/domain/entity"
	"github.com/jmoreiradev/fardamento-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas do painel, somente leitura.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository constrói o adaptador.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// CountMovementsByStatus conta movimentações agrupadas por status.
// Status sem ocorrências aparecem com zero.
func (r *DashboardRepo) CountMovementsByStatus(ctx context.Context) (map[string]int, error) {
	out := map[string]int{
		entity.StatusCreated:   0,
		entity.StatusInTransit: 0,
		entity.StatusCompleted: 0,
		entity.StatusCanceled:  0,
	}
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM movements GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count movements by status: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		out[status] = count
	}
	return out, rows.Err()
}

// CountMovementsByKind conta movimentações agrupadas por tipo.
func (r *DashboardRepo) CountMovementsByKind(ctx context.Context) (map[string]int, error) {
	out := map[string]int{
		entity.MovementKindDelivery: 0,
		entity.MovementKindReturn:   0,
	}
	rows, err := r.pool.Query(ctx, `SELECT kind, COUNT(*) FROM movements GROUP BY kind`)
	if err != nil {
		return nil, fmt.Errorf("count movements by kind: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var kind string
		var count int
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, fmt.Errorf("scan kind count: %w", err)
		}
		out[kind] = count
	}
	return out, rows.Err()
}

// StockTotalsByLocation soma total e reservado por unidade.
func (r *DashboardRepo) StockTotalsByLocation(ctx context.Context) ([]dto.LocationStockDTO, error) {
	query := `
		SELECT l.id, l.name, COALESCE(SUM(s.total), 0), COALESCE(SUM(s.reserved), 0)
		FROM locations l
		LEFT JOIN stock_records s ON s.location_id = l.id
		GROUP BY l.id, l.name
		ORDER BY l.name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("stock totals by location: %w", err)
	}
	defer rows.Close()
	var list []dto.LocationStockDTO
	for rows.Next() {
		var item dto.LocationStockDTO
		if err := rows.Scan(&item.LocationID, &item.LocationName, &item.Total, &item.Reserved); err != nil {
			return nil, fmt.Errorf("scan location stock: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// TopDeliveredVariants ranking das variações mais entregues desde `since`,
// considerando apenas entregas concluídas.
func (r *DashboardRepo) TopDeliveredVariants(ctx context.Context, since time.Time, limit int) ([]dto.VariantCounterDTO, error) {
	query := `
		SELECT ml.item_variant_id, SUM(ml.quantity)
		FROM movement_lines ml
		JOIN movements m ON m.id = ml.movement_id
		WHERE m.kind = $1 AND m.status = $2 AND m.updated_at >= $3
		GROUP BY ml.item_variant_id
		ORDER BY SUM(ml.quantity) DESC
		LIMIT $4`
	rows, err := r.pool.Query(ctx, query, entity.MovementKindDelivery, entity.StatusCompleted, since, limit)
	if err != nil {
		return nil, fmt.Errorf("top delivered variants: %w", err)
	}
	defer rows.Close()
	var list []dto.VariantCounterDTO
	for rows.Next() {
		var item dto.VariantCounterDTO
		if err := rows.Scan(&item.ItemVariantID, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan variant counter: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}
