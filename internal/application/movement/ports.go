package movement

import (
	"context"

	"github.com/jmoreiradev/fardamento-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa transação. Garante atomicidade do motor de
// movimentações: erro em qualquer passo aborta a transação inteira.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		balanceRepo repository.EmployeeBalanceRepository,
	) error) error
}
