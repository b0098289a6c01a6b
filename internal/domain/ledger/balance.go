package ledger

import (
	"time"

	"github.com/jmoreiradev/fardamento-api/internal/domain"
	"github.com/jmoreiradev/fardamento-api/internal/domain/entity"
	"github.com/jmoreiradev/fardamento-api/internal/domain/repository"
)

// ValidateBalance verificação de admissão para devoluções, somente leitura.
// Falha com ErrInsufficientBalance se o saldo não existir ou for menor que qty.
func ValidateBalance(balanceRepo repository.EmployeeBalanceRepository, employeeID, itemVariantID string, qty int) error {
	balance, err := balanceRepo.Get(employeeID, itemVariantID)
	if err != nil {
		return err
	}
	if balance == nil || balance.Quantity < qty {
		return domain.ErrInsufficientBalance
	}
	return nil
}

// IncrementBalance credita itens ao colaborador ao concluir uma entrega.
// Cria o saldo zerado se ainda não existir.
func IncrementBalance(balanceRepo repository.EmployeeBalanceRepository, employeeID, itemVariantID string, qty int) error {
	balance, err := balanceRepo.GetForUpdate(employeeID, itemVariantID)
	if err != nil {
		return err
	}
	if balance == nil {
		balance = &entity.EmployeeBalance{EmployeeID: employeeID, ItemVariantID: itemVariantID}
	}
	balance.Quantity += qty
	balance.UpdatedAt = time.Now()
	return balanceRepo.Upsert(balance)
}

// DecrementBalance debita itens do colaborador ao concluir uma devolução.
// Revalida o saldo sob o bloqueio de linha: duas devoluções concorrentes
// podem ter passado pela validação de admissão antes de qualquer conclusão,
// então a segunda falha aqui com ErrInsufficientBalance.
func DecrementBalance(balanceRepo repository.EmployeeBalanceRepository, employeeID, itemVariantID string, qty int) error {
	balance, err := balanceRepo.GetForUpdate(employeeID, itemVariantID)
	if err != nil {
		return err
	}
	if balance == nil {
		return domain.ErrBalanceNotFound
	}
	if balance.Quantity < qty {
		return domain.ErrInsufficientBalance
	}
	balance.Quantity = max(0, balance.Quantity-qty)
	balance.UpdatedAt = time.Now()
	return balanceRepo.Upsert(balance)
}
