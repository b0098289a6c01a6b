package movement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoreiradev/fardamento-api/internal/application/dto"
	"github.com/jmoreiradev/fardamento-api/internal/domain"
	"github.com/jmoreiradev/fardamento-api/internal/domain/entity"
	"github.com/jmoreiradev/fardamento-api/internal/domain/ledger"
	"github.com/jmoreiradev/fardamento-api/internal/domain/repository"
)

// AdvanceStatus conduz a movimentação para targetStatus conforme a tabela de
// transições. Os efeitos nos razões acontecem na mesma transação da mudança
// de status e do evento de auditoria:
//
//	ENTREGA   COMPLETED -> débito de estoque + crédito do saldo, por linha
//	ENTREGA   CANCELED  -> liberação das reservas
//	DEVOLUCAO COMPLETED -> crédito de estoque + débito do saldo, por linha
//	DEVOLUCAO CANCELED  -> sem efeito nos razões (saldo só foi validado)
func (uc *UseCase) AdvanceStatus(ctx context.Context, movementID, targetStatus string, actor dto.Actor) (*entity.Movement, error) {
	if !entity.ValidStatus(targetStatus) {
		return nil, domain.ErrInvalidTransition
	}

	current, err := uc.movRepo.GetByID(movementID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	if !entity.CanTransition(current.Status, targetStatus) {
		return nil, domain.ErrInvalidTransition
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		balanceRepo repository.EmployeeBalanceRepository,
	) error {
		// Recarrega sob FOR UPDATE: duas transições concorrentes sobre a
		// mesma movimentação não podem ambas passar pela verificação.
		mov, err := movRepo.GetByIDForUpdate(movementID)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrNotFound
		}
		if !entity.CanTransition(mov.Status, targetStatus) {
			return domain.ErrInvalidTransition
		}

		switch targetStatus {
		case entity.StatusCanceled:
			if mov.Kind == entity.MovementKindDelivery {
				for _, line := range mov.Lines {
					if err := ledger.ReleaseStock(stockRepo, line.ItemVariantID, mov.LocationID, line.Quantity); err != nil {
						return err
					}
				}
			}
		case entity.StatusCompleted:
			for _, line := range mov.Lines {
				if mov.Kind == entity.MovementKindDelivery {
					if err := ledger.DebitStock(stockRepo, line.ItemVariantID, mov.LocationID, line.Quantity); err != nil {
						return err
					}
					if err := ledger.IncrementBalance(balanceRepo, mov.EmployeeID, line.ItemVariantID, line.Quantity); err != nil {
						return err
					}
				} else {
					if err := ledger.CreditStock(stockRepo, line.ItemVariantID, mov.LocationID, line.Quantity); err != nil {
						return err
					}
					if err := ledger.DecrementBalance(balanceRepo, mov.EmployeeID, line.ItemVariantID, line.Quantity); err != nil {
						return err
					}
				}
			}
		}

		now := time.Now()
		mov.Status = targetStatus
		mov.UpdatedAt = now
		if err := movRepo.UpdateStatus(mov); err != nil {
			return err
		}
		// Nunca mudar status sem o evento correspondente, e vice-versa.
		return movRepo.AppendEvent(&entity.MovementEvent{
			ID:         uuid.New().String(),
			MovementID: mov.ID,
			Status:     targetStatus,
			ActorID:    actor.ID,
			ActorName:  actor.Name,
			CreatedAt:  now,
		})
	})
	if err != nil {
		return nil, err
	}

	return uc.movRepo.GetByID(movementID)
}
