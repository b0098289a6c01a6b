package usecase

import (
	"github.com/jmoreiradev/fardamento-api/internal/application/dto"
	"github.com/jmoreiradev/fardamento-api/internal/domain"
	"github.com/jmoreiradev/fardamento-api/internal/domain/repository"
)

// StockQueryUseCase consulta de estoque por unidade (somente leitura).
type StockQueryUseCase struct {
	stockRepo    repository.StockRepository
	locationRepo repository.LocationRepository
}

// NewStockQueryUseCase constrói o caso de uso.
func NewStockQueryUseCase(stockRepo repository.StockRepository, locationRepo repository.LocationRepository) *StockQueryUseCase {
	return &StockQueryUseCase{stockRepo: stockRepo, locationRepo: locationRepo}
}

// ListByLocation lista os contadores de estoque de uma unidade.
func (uc *StockQueryUseCase) ListByLocation(locationID string, page dto.PageRequest) ([]*dto.StockRecordResponse, error) {
	location, err := uc.locationRepo.GetByID(locationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}
	page.DefaultPage()
	records, err := uc.stockRepo.ListByLocation(locationID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.StockRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, &dto.StockRecordResponse{
			ItemVariantID: r.ItemVariantID,
			LocationID:    r.LocationID,
			Total:         r.Total,
			Reserved:      r.Reserved,
			Available:     r.Available(),
			UpdatedAt:     r.UpdatedAt,
		})
	}
	return out, nil
}
