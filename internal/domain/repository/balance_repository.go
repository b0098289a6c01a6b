package repository

import "github.com/jmoreiradev/fardamento-api/internal/domain/entity"

// EmployeeBalanceRepository porta de persistência do saldo de itens em posse
// de cada colaborador (colaborador + variação).
type EmployeeBalanceRepository interface {
	// Get devolve nil, nil se o saldo não existir.
	Get(employeeID, itemVariantID string) (*entity.EmployeeBalance, error)
	// GetForUpdate bloqueia a linha para escrita (SELECT FOR UPDATE).
	// Devolve nil, nil se o saldo não existir.
	GetForUpdate(employeeID, itemVariantID string) (*entity.EmployeeBalance, error)
	Upsert(balance *entity.EmployeeBalance) error
	ListByEmployee(employeeID string) ([]*entity.EmployeeBalance, error)
}
