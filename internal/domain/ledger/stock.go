// Package ledger contém os serviços de domínio que mutam os contadores de
// estoque e de saldo por colaborador. Todas as operações recebem repositórios
// atados à transação do chamador e fazem read-then-write sobre a mesma linha
// (GetForUpdate -> Upsert); a transação é a única barreira de concorrência.
package ledger

import (
	"time"

	"github.com/jmoreiradev/fardamento-api/internal/domain"
	"github.com/jmoreiradev/fardamento-api/internal/domain/entity"
	"github.com/jmoreiradev/fardamento-api/internal/domain/repository"
)

// ReserveStock reserva qty unidades para uma entrega em andamento.
// Falha com ErrStockNotFound se o registro não existir e com
// ErrInsufficientStock se total - reserved < qty.
func ReserveStock(stockRepo repository.StockRepository, itemVariantID, locationID string, qty int) error {
	record, err := stockRepo.GetForUpdate(itemVariantID, locationID)
	if err != nil {
		return err
	}
	if record == nil {
		return domain.ErrStockNotFound
	}
	if record.Available() < qty {
		return domain.ErrInsufficientStock
	}
	record.Reserved += qty
	record.UpdatedAt = time.Now()
	return stockRepo.Upsert(record)
}

// ReleaseStock devolve uma reserva ao cancelar uma entrega. Operação de
// reconciliação: nunca falha por saldo e satura em zero caso seja chamada
// mais vezes do que o previsto. Registro ausente é um no-op.
func ReleaseStock(stockRepo repository.StockRepository, itemVariantID, locationID string, qty int) error {
	record, err := stockRepo.GetForUpdate(itemVariantID, locationID)
	if err != nil {
		return err
	}
	if record == nil {
		return nil
	}
	record.Reserved = max(0, record.Reserved-qty)
	record.UpdatedAt = time.Now()
	return stockRepo.Upsert(record)
}

// DebitStock consome as unidades reservadas ao concluir uma entrega:
// baixa total e libera a reserva correspondente, ambos saturando em zero.
func DebitStock(stockRepo repository.StockRepository, itemVariantID, locationID string, qty int) error {
	record, err := stockRepo.GetForUpdate(itemVariantID, locationID)
	if err != nil {
		return err
	}
	if record == nil {
		return domain.ErrStockNotFound
	}
	record.Total = max(0, record.Total-qty)
	record.Reserved = max(0, record.Reserved-qty)
	record.UpdatedAt = time.Now()
	return stockRepo.Upsert(record)
}

// CreditStock acrescenta unidades ao concluir uma devolução. Cria o registro
// zerado se ainda não existir (primeiro crédito naquela unidade).
func CreditStock(stockRepo repository.StockRepository, itemVariantID, locationID string, qty int) error {
	record, err := stockRepo.GetForUpdate(itemVariantID, locationID)
	if err != nil {
		return err
	}
	if record == nil {
		record = &entity.StockRecord{ItemVariantID: itemVariantID, LocationID: locationID}
	}
	record.Total += qty
	record.UpdatedAt = time.Now()
	return stockRepo.Upsert(record)
}

// WriteOffStock baixa direta do total por avaria (não mexe na reserva).
// Falha com ErrStockNotFound se o registro não existir e com
// ErrInsufficientStock se qty > total.
func WriteOffStock(stockRepo repository.StockRepository, itemVariantID, locationID string, qty int) error {
	record, err := stockRepo.GetForUpdate(itemVariantID, locationID)
	if err != nil {
		return err
	}
	if record == nil {
		return domain.ErrStockNotFound
	}
	if qty > record.Total {
		return domain.ErrInsufficientStock
	}
	record.Total -= qty
	record.UpdatedAt = time.Now()
	return stockRepo.Upsert(record)
}
