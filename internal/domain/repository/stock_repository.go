package repository

import "github.com/jmoreiradev/fardamento-api/internal/domain/entity"

// StockRepository porta de persistência dos contadores de estoque
// (variação + unidade). Usada dentro de transações para garantir consistência.
type StockRepository interface {
	// Get devolve nil, nil se o registro não existir.
	Get(itemVariantID, locationID string) (*entity.StockRecord, error)
	// GetForUpdate bloqueia a linha para escrita (SELECT FOR UPDATE).
	// Devolve nil, nil se o registro não existir.
	GetForUpdate(itemVariantID, locationID string) (*entity.StockRecord, error)
	Upsert(record *entity.StockRecord) error
	ListByLocation(locationID string, limit, offset int) ([]*entity.StockRecord, error)
}
