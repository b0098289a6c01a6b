package damage

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

// TxRunner transação com os repositórios necessários ao registro de avarias.
type TxRunner interface {
	RunDamage(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		damageRepo repository.DamageRepository,
	) error) error
}

// UseCase registra avarias: baixa do estoque físico sobre os itens de uma
// devolução concluída, limitada pelo que foi devolvido e ainda não baixado.
type UseCase struct {
	txRunner    TxRunner
	movRepo     repository.MovementRepository
	damageRepo  repository.DamageRepository
	variantRepo repository.ItemVariantRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(
	txRunner TxRunner,
	movRepo repository.MovementRepository,
	damageRepo repository.DamageRepository,
	variantRepo repository.ItemVariantRepository,
) *UseCase {
	return &UseCase{txRunner: txRunner, movRepo: movRepo, damageRepo: damageRepo, variantRepo: variantRepo}
}

// RegisterDamage valida a devolução e os itens e grava um DamageRecord por
// item, debitando o total do estoque na mesma transação. A avaria debita o
// total, não a reserva: é baixa física, não uma nova reserva.
func (uc *UseCase) RegisterDamage(ctx context.Context, movementID string, in dto.RegisterDamageRequest, actor dto.Actor) ([]*entity.DamageRecord, error) {
	mov, err := uc.movRepo.GetByID(movementID)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	if mov.Kind != entity.MovementKindReturn || mov.Status != entity.StatusCompleted {
		return nil, domain.ErrInvalidState
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyRequest
	}
	for _, item := range in.Items {
		if item.ItemVariantID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	ids := make([]string, 0, len(in.Items))
	seen := make(map[string]struct{}, len(in.Items))
	for _, item := range in.Items {
		if _, ok := seen[item.ItemVariantID]; ok {
			continue
		}
		seen[item.ItemVariantID] = struct{}{}
		ids = append(ids, item.ItemVariantID)
	}
	variants, err := uc.variantRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(variants) != len(ids) {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	var created []*entity.DamageRecord

	err = uc.txRunner.RunDamage(ctx, func(
		_ repository.MovementRepository,
		stockRepo repository.StockRepository,
		damageRepo repository.DamageRepository,
	) error {
		for _, item := range in.Items {
			// Limite: avarias já registradas + esta não podem exceder a
			// quantidade originalmente devolvida para a linha.
			line := mov.LineFor(item.ItemVariantID)
			returned := 0
			if line != nil {
				returned = line.Quantity
			}
			prior, err := damageRepo.SumByMovementAndVariant(mov.ID, item.ItemVariantID)
			if err != nil {
				return err
			}
			if prior+item.Quantity > returned {
				return domain.ErrDamageExceedsReturned
			}

			if err := ledger.WriteOffStock(stockRepo, item.ItemVariantID, mov.LocationID, item.Quantity); err != nil {
				return err
			}

			record := &entity.DamageRecord{
				ID:            uuid.New().String(),
				MovementID:    mov.ID,
				ItemVariantID: item.ItemVariantID,
				Quantity:      item.Quantity,
				Description:   item.Description,
				ActorID:       actor.ID,
				ActorName:     actor.Name,
				CreatedAt:     now,
			}
			if err := damageRepo.Create(record); err != nil {
				return err
			}
			created = append(created, record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ListByMovement projeção de leitura das avarias de uma devolução.
func (uc *UseCase) ListByMovement(ctx context.Context, movementID string) ([]*entity.DamageRecord, error) {
	mov, err := uc.movRepo.GetByID(movementID)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	return uc.damageRepo.ListByMovement(movementID)
}

// ToResponse converte o registro para o DTO de resposta, sem relações pesadas.
func ToResponse(d *entity.DamageRecord) dto.DamageRecordResponse {
	return dto.DamageRecordResponse{
		ID:            d.ID,
		ItemVariantID: d.ItemVariantID,
		Quantity:      d.Quantity,
		Description:   d.Description,
		CreatedAt:     d.CreatedAt,
	}
}
