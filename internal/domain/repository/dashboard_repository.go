package repository

import (
	"context"
	"time"

	"github.com/jmoreiradev/fardamento-api/internal/application/dto"
)

// DashboardRepository consultas agregadas, somente leitura, para o painel.
type DashboardRepository interface {
	CountMovementsByStatus(ctx context.Context) (map[string]int, error)
	CountMovementsByKind(ctx context.Context) (map[string]int, error)
	StockTotalsByLocation(ctx context.Context) ([]dto.LocationStockDTO, error)
	TopDeliveredVariants(ctx context.Context, since time.Time, limit int) ([]dto.VariantCounterDTO, error)
}
