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

// UseCase cria movimentações (ENTREGA/DEVOLUCAO) e conduz a máquina de
// estados, de forma transacional com bloqueio de linha (SELECT FOR UPDATE)
// e Commit/Rollback.
type UseCase struct {
	txRunner     TxRunner
	movRepo      repository.MovementRepository
	balanceRepo  repository.EmployeeBalanceRepository
	locationRepo repository.LocationRepository
	variantRepo  repository.ItemVariantRepository
	employeeRepo repository.EmployeeRepository
}

// NewUseCase constrói o caso de uso. movRepo e balanceRepo aqui são os
// atados ao pool (leituras fora de transação).
func NewUseCase(
	txRunner TxRunner,
	movRepo repository.MovementRepository,
	balanceRepo repository.EmployeeBalanceRepository,
	locationRepo repository.LocationRepository,
	variantRepo repository.ItemVariantRepository,
	employeeRepo repository.EmployeeRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		movRepo:      movRepo,
		balanceRepo:  balanceRepo,
		locationRepo: locationRepo,
		variantRepo:  variantRepo,
		employeeRepo: employeeRepo,
	}
}

// CreateMovement valida referências, cria a movimentação em CREATED e, na
// mesma transação, reserva estoque (ENTREGA). Para DEVOLUCAO a admissão é a
// validação de saldo do colaborador, tudo-ou-nada, sem mutação.
func (uc *UseCase) CreateMovement(ctx context.Context, in dto.CreateMovementRequest, actor dto.Actor) (*entity.Movement, error) {
	if !entity.ValidKind(in.Kind) || in.EmployeeID == "" || len(in.Lines) == 0 {
		if len(in.Lines) == 0 {
			return nil, domain.ErrEmptyRequest
		}
		return nil, domain.ErrInvalidInput
	}
	for _, line := range in.Lines {
		if line.ItemVariantID == "" || line.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	location, err := uc.locationRepo.GetByID(in.LocationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrInvalidReference
	}

	employeeName := in.EmployeeName
	if employee, err := uc.employeeRepo.GetByID(in.EmployeeID); err != nil {
		return nil, err
	} else if employee == nil {
		return nil, domain.ErrInvalidReference
	} else if employeeName == "" {
		employeeName = employee.Name
	}

	// Resolve todas as variações em um único lote; contagem divergente
	// denuncia id desconhecido ou duplicado inválido.
	distinct := distinctVariantIDs(in.Lines)
	variants, err := uc.variantRepo.GetByIDs(distinct)
	if err != nil {
		return nil, err
	}
	if len(variants) != len(distinct) {
		return nil, domain.ErrInvalidReference
	}

	// Admissão de devolução: valida o saldo de cada linha antes de qualquer
	// escrita. O débito em si só acontece na conclusão.
	if in.Kind == entity.MovementKindReturn {
		for _, line := range in.Lines {
			if err := ledger.ValidateBalance(uc.balanceRepo, in.EmployeeID, line.ItemVariantID, line.Quantity); err != nil {
				return nil, err
			}
		}
	}

	now := time.Now()
	mov := &entity.Movement{
		ID:           uuid.New().String(),
		Kind:         in.Kind,
		Status:       entity.StatusCreated,
		LocationID:   in.LocationID,
		EmployeeID:   in.EmployeeID,
		EmployeeName: employeeName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, line := range in.Lines {
		mov.Lines = append(mov.Lines, entity.MovementLine{
			ID:            uuid.New().String(),
			MovementID:    mov.ID,
			ItemVariantID: line.ItemVariantID,
			Quantity:      line.Quantity,
		})
	}
	mov.Events = append(mov.Events, entity.MovementEvent{
		ID:         uuid.New().String(),
		MovementID: mov.ID,
		Status:     entity.StatusCreated,
		ActorID:    actor.ID,
		ActorName:  actor.Name,
		CreatedAt:  now,
	})

	// Transação única: movimentação + linhas + evento inicial e, para
	// entregas, a reserva de cada linha. Commit ou Rollback integral.
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		_ repository.EmployeeBalanceRepository,
	) error {
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		if mov.Kind == entity.MovementKindDelivery {
			for _, line := range mov.Lines {
				if err := ledger.ReserveStock(stockRepo, line.ItemVariantID, mov.LocationID, line.Quantity); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.movRepo.GetByID(mov.ID)
}

// distinctVariantIDs ids de variação sem repetição, na ordem de envio.
func distinctVariantIDs(lines []dto.MovementLineRequest) []string {
	seen := make(map[string]struct{}, len(lines))
	var ids []string
	for _, line := range lines {
		if _, ok := seen[line.ItemVariantID]; ok {
			continue
		}
		seen[line.ItemVariantID] = struct{}{}
		ids = append(ids, line.ItemVariantID)
	}
	return ids
}
