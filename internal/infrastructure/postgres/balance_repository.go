package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jmoreiradev/fardamento-api/internal/domain/entity"
	"github.com/jmoreiradev/fardamento-api/internal/domain/repository"
)

var _ repository.EmployeeBalanceRepository = (*EmployeeBalanceRepo)(nil)

// EmployeeBalanceRepo implementação de EmployeeBalanceRepository sobre
// PostgreSQL (pool ou tx).
type EmployeeBalanceRepo struct {
	q Querier
}

// NewEmployeeBalanceRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewEmployeeBalanceRepository(q Querier) *EmployeeBalanceRepo {
	return &EmployeeBalanceRepo{q: q}
}

const balanceColumns = "employee_id, item_variant_id, quantity, updated_at"

// Get obtém o saldo de uma variação em posse do colaborador; nil se ausente.
func (r *EmployeeBalanceRepo) Get(employeeID, itemVariantID string) (*entity.EmployeeBalance, error) {
	query := `
		SELECT ` + balanceColumns + `
		FROM employee_balances WHERE employee_id = $1 AND item_variant_id = $2`
	return r.scanOne(query, employeeID, itemVariantID)
}

// GetForUpdate obtém o saldo bloqueando a linha (SELECT FOR UPDATE); nil se ausente.
func (r *EmployeeBalanceRepo) GetForUpdate(employeeID, itemVariantID string) (*entity.EmployeeBalance, error) {
	query := `
		SELECT ` + balanceColumns + `
		FROM employee_balances WHERE employee_id = $1 AND item_variant_id = $2
		FOR UPDATE`
	return r.scanOne(query, employeeID, itemVariantID)
}

func (r *EmployeeBalanceRepo) scanOne(query, employeeID, itemVariantID string) (*entity.EmployeeBalance, error) {
	var b entity.EmployeeBalance
	err := r.q.QueryRow(context.Background(), query, employeeID, itemVariantID).Scan(
		&b.EmployeeID, &b.ItemVariantID, &b.Quantity, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee balance: %w", err)
	}
	return &b, nil
}

// Upsert insere ou atualiza o saldo (por colaborador e variação).
func (r *EmployeeBalanceRepo) Upsert(balance *entity.EmployeeBalance) error {
	query := `
		INSERT INTO employee_balances (employee_id, item_variant_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (employee_id, item_variant_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		balance.EmployeeID, balance.ItemVariantID, balance.Quantity,
	)
	if err != nil {
		return fmt.Errorf("upsert employee balance: %w", err)
	}
	return nil
}

// ListByEmployee lista os saldos de um colaborador.
func (r *EmployeeBalanceRepo) ListByEmployee(employeeID string) ([]*entity.EmployeeBalance, error) {
	query := `
		SELECT ` + balanceColumns + `
		FROM employee_balances WHERE employee_id = $1
		ORDER BY item_variant_id`
	rows, err := r.q.Query(context.Background(), query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list employee balances: %w", err)
	}
	defer rows.Close()
	var list []*entity.EmployeeBalance
	for rows.Next() {
		var b entity.EmployeeBalance
		if err := rows.Scan(&b.EmployeeID, &b.ItemVariantID, &b.Quantity, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan employee balance: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
