package movement_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmoreiradev/fardamento-api/internal/application/dto"
	"github.com/jmoreiradev/fardamento-api/internal/domain"
	"github.com/jmoreiradev/fardamento-api/internal/domain/entity"
)

// createDelivery cria uma entrega pronta para transicionar.
func createDelivery(t *testing.T, fx *fixture, lines ...dto.MovementLineRequest) *entity.Movement {
	t.Helper()
	mov, err := fx.uc.CreateMovement(context.Background(), deliveryRequest(lines...), testActor())
	require.NoError(t, err)
	return mov
}

func createReturn(t *testing.T, fx *fixture, lines ...dto.MovementLineRequest) *entity.Movement {
	t.Helper()
	mov, err := fx.uc.CreateMovement(context.Background(), returnRequest(lines...), testActor())
	require.NoError(t, err)
	return mov
}

// Ciclo completo da entrega: CREATED -> IN_TRANSIT -> COMPLETED.
// A conclusão consome a reserva e credita o saldo do colaborador.
func TestAdvanceStatus_EntregaConcluida(t *testing.T) {
	fx := newFixture()
	fx.stockRepo.seed(variantP, locationA, 10, 0)
	mov := createDelivery(t, fx, dto.MovementLineRequest{ItemVariantID: variantP, Quantity: 3})
	ctx := context.Background()

	mov, err := fx.uc.AdvanceStatus(ctx, mov.ID, entity.StatusInTransit, testActor())
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInTransit, mov.Status)

	mov, err = fx.uc.AdvanceStatus(ctx, mov.ID, entity.StatusCompleted, testActor())
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, mov.Status)

	record, _ := fx.stockRepo.Get(variantP, locationA)
	assert.Equal(t, 7, record.Total)
	assert.Equal(t, 0, record.Reserved)

	balance, _ := fx.balanceRepo.Get(employee1, variantP)
	require.NotNil(t, balance)
	assert.Equal(t, 3, balance.Quantity)

	// Trilha de auditoria: CREATED, IN_TRANSIT, COMPLETED.
	require.Len(t, mov.Events, 3)
	assert.Equal(t, entity.StatusCreated, mov.Events[0].Status)
	assert.Equal(t, entity.StatusInTransit, mov.Events[1].Status)
	assert.Equal(t, entity.StatusCompleted, mov.Events[2].Status)
}

// Cancelar uma entrega devolve as reservas sem mexer no total nem no saldo.
func TestAdvanceStatus_EntregaCancelada(t *testing.T) {
	fx := newFixture()
	fx.stockRepo.seed(variantP, locationA, 10, 0)
	mov := createDelivery(t, fx, dto.MovementLineRequest{ItemVariantID: variantP, Quantity: 4})

	mov, err := fx.uc.AdvanceStatus(context.Background(), mov.ID, entity.StatusCanceled, testActor())
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCanceled, mov.Status)

	record, _ := fx.stockRepo.Get(variantP, locationA)
	assert.Equal(t, 10, record.Total)
	assert.Equal(t, 0, record.Reserved)

	balance, _ := fx.balanceRepo.Get(employee1, variantP)
	assert.Nil(t, balance, "cancelamento não credita saldo")
}

// Concluir uma devolução credita o estoque e debita o saldo do colaborador.
func TestAdvanceStatus_DevolucaoConcluida(t *testing.T) {
	fx := newFixture()
	fx.stockRepo.seed(variantP, locationA, 6, 0)
	fx.balanceRepo.seed(employee1, variantP, 3)
	mov := createReturn(t, fx, dto.MovementLineRequest{ItemVariantID: variantP, Quantity: 2})

	mov, err := fx.uc.AdvanceStatus(context.Background(), mov.ID, entity.StatusCompleted, testActor())
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, mov.Status)

	record, _ := fx.stockRepo.Get(variantP, locationA)
	assert.Equal(t, 8, record.Total)
	assert.Equal(t, 0, record.Reserved)

	balance, _ := fx.balanceRepo.Get(employee1, variantP)
	assert.Equal(t, 1, balance.Quantity)
}

// Devolução de variação que a unidade nunca estocou cria o registro.
func TestAdvanceStatus_DevolucaoCriaRegistroDeEstoque(t *testing.T) {
	fx := newFixture()
	fx.balanceRepo.seed(employee1, variantP, 2)
	mov := createReturn(t, fx, dto.MovementLineRequest{ItemVariantID: variantP, Quantity: 2})

	_, err := fx.uc.AdvanceStatus(context.Background(), mov.ID, entity.StatusCompleted, testActor())
	require.NoError(t, err)

	record, _ := fx.stockRepo.Get(variantP, locationA)
	require.NotNil(t, record)
	assert.Equal(t, 2, record.Total)
}

// O saldo pode ter sido consumido entre a admissão e a conclusão. A conclusão
// revalida sob bloqueio e falha, revertendo o crédito de estoque da própria
// transação.
func TestAdvanceStatus_DevolucaoSaldoConsumidoEntreAdmissaoEConclusao(t *testing.T) {
	fx := newFixture()
	fx.stockRepo.seed(variantP, locationA, 6, 0)
	fx.balanceRepo.seed(employee1, variantP, 2)
	mov := createReturn(t, fx, dto.MovementLineRequest{ItemVariantID: variantP, Quantity: 2})

	// Outra devolução concluída no meio tempo consumiu o saldo.
	fx.balanceRepo.seed(employee1, variantP, 1)

	_, err := fx.uc.AdvanceStatus(context.Background(), mov.ID, entity.StatusCompleted, testActor())
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	record, _ := fx.stockRepo.Get(variantP, locationA)
	assert.Equal(t, 6, record.Total, "crédito de estoque revertido junto")

	current, _ := fx.movRepo.GetByID(mov.ID)
	assert.Equal(t, entity.StatusCreated, current.Status, "status preservado no rollback")
}

// Cancelar uma devolução não tem efeito nenhum nos razões.
func TestAdvanceStatus_DevolucaoCancelada(t *testing.T) {
	fx := newFixture()
	fx.stockRepo.seed(variantP, locationA, 6, 0)
	fx.balanceRepo.seed(employee1, variantP, 3)
	mov := createReturn(t, fx, dto.MovementLineRequest{ItemVariantID: variantP, Quantity: 2})

	mov, err := fx.uc.AdvanceStatus(context.Background(), mov.ID, entity.StatusCanceled, testActor())
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCanceled, mov.Status)

	record, _ := fx.stockRepo.Get(variantP, locationA)
	assert.Equal(t, 6, record.Total)
	balance, _ := fx.balanceRepo.Get(employee1, variantP)
	assert.Equal(t, 3, balance.Quantity)
}

func TestAdvanceStatus_TransicoesInvalidas(t *testing.T) {
	fx := newFixture()
	fx.stockRepo.seed(variantP, locationA, 10, 0)
	mov := createDelivery(t, fx, dto.MovementLineRequest{ItemVariantID: variantP, Quantity: 1})
	ctx := context.Background()

	// Status desconhecido.
	_, err := fx.uc.AdvanceStatus(ctx, mov.ID, "PENDING", testActor())
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// Regressão IN_TRANSIT -> CREATED.
	_, err = fx.uc.AdvanceStatus(ctx, mov.ID, entity.StatusInTransit, testActor())
	require.NoError(t, err)
	_, err = fx.uc.AdvanceStatus(ctx, mov.ID, entity.StatusCreated, testActor())
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// Estado terminal não tem saída.
	_, err = fx.uc.AdvanceStatus(ctx, mov.ID, entity.StatusCompleted, testActor())
	require.NoError(t, err)
	_, err = fx.uc.AdvanceStatus(ctx, mov.ID, entity.StatusCanceled, testActor())
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestAdvanceStatus_MovimentacaoInexistente(t *testing.T) {
	fx := newFixture()

	_, err := fx.uc.AdvanceStatus(context.Background(), "movement-zz", entity.StatusCompleted, testActor())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Transição falhada não deixa evento órfão na trilha.
func TestAdvanceStatus_FalhaNaoGeraEvento(t *testing.T) {
	fx := newFixture()
	fx.balanceRepo.seed(employee1, variantP, 2)
	mov := createReturn(t, fx, dto.MovementLineRequest{ItemVariantID: variantP, Quantity: 2})
	fx.balanceRepo.seed(employee1, variantP, 0)

	_, err := fx.uc.AdvanceStatus(context.Background(), mov.ID, entity.StatusCompleted, testActor())
	require.Error(t, err)

	current, _ := fx.movRepo.GetByID(mov.ID)
	assert.Len(t, current.Events, 1, "apenas o evento inicial CREATED")
}
