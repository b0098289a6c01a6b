package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jmoreiradev/fardamento-api/internal/application/dto"
	"github.com/jmoreiradev/fardamento-api/internal/domain/repository"
)

const (
	dashboardTopVariants = 5
	dashboardCacheKey    = "dashboard:summary"
	dashboardCacheTTL    = 60 * time.Second
)

// Cache contrato mínimo de cache usado pelo dashboard. A implementação
// concreta (Redis) vive na infraestrutura; nil desliga o cache.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

// DashboardUseCase monta os agregados do painel: movimentações por
// status/tipo, estoque por unidade e variações mais entregues nos últimos
// 30 dias. Resultado cacheado por um TTL curto quando há cache configurado.
type DashboardUseCase struct {
	repo  repository.DashboardRepository
	cache Cache
}

// NewDashboardUseCase constrói o caso de uso. cache pode ser nil.
func NewDashboardUseCase(repo repository.DashboardRepository, cache Cache) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, cache: cache}
}

// GetSummary devolve o resumo do painel, servindo do cache quando possível.
// Falha de cache degrada para consulta direta, nunca para erro.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardResponse, error) {
	if uc.cache != nil {
		if raw, err := uc.cache.Get(ctx, dashboardCacheKey); err == nil && raw != "" {
			var cached dto.DashboardResponse
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return &cached, nil
			}
		}
	}

	byStatus, err := uc.repo.CountMovementsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	byKind, err := uc.repo.CountMovementsByKind(ctx)
	if err != nil {
		return nil, err
	}
	stock, err := uc.repo.StockTotalsByLocation(ctx)
	if err != nil {
		return nil, err
	}
	top, err := uc.repo.TopDeliveredVariants(ctx, time.Now().AddDate(0, 0, -30), dashboardTopVariants)
	if err != nil {
		return nil, err
	}

	out := &dto.DashboardResponse{
		MovementsByStatus: byStatus,
		MovementsByKind:   byKind,
		StockByLocation:   stock,
		TopDelivered:      top,
	}
	if uc.cache != nil {
		if raw, err := json.Marshal(out); err == nil {
			_ = uc.cache.Set(ctx, dashboardCacheKey, string(raw), dashboardCacheTTL)
		}
	}
	return out, nil
}
