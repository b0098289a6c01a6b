package entity

import "time"

// StockRecord contadores de estoque de uma variação em uma unidade.
// Invariante em repouso: 0 <= Reserved <= Total.
type StockRecord struct {
	ItemVariantID string
	LocationID    string
	Total         int // unidades fisicamente presentes
	Reserved      int // unidades reservadas por entregas em andamento
	UpdatedAt     time.Time
}

// Available quantidade elegível para novas reservas.
func (s *StockRecord) Available() int {
	return s.Total - s.Reserved
}
