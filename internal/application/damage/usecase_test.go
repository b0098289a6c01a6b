package damage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmoreiradev/fardamento-api/internal/application/damage"
	"github.com/jmoreiradev/fardamento-api/internal/application/dto"
	"github.com/jmoreiradev/fardamento-api/internal/domain"
	"github.com/jmoreiradev/fardamento-api/internal/domain/entity"
	"github.com/jmoreiradev/fardamento-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeStockRepo struct {
	records map[string]*entity.StockRecord
}

func stockKey(itemVariantID, locationID string) string { return itemVariantID + "|" + locationID }

func (f *fakeStockRepo) seed(itemVariantID, locationID string, total, reserved int) {
	f.records[stockKey(itemVariantID, locationID)] = &entity.StockRecord{
		ItemVariantID: itemVariantID, LocationID: locationID, Total: total, Reserved: reserved,
	}
}

func (f *fakeStockRepo) Get(itemVariantID, locationID string) (*entity.StockRecord, error) {
	record, ok := f.records[stockKey(itemVariantID, locationID)]
	if !ok {
		return nil, nil
	}
	clone := *record
	return &clone, nil
}

func (f *fakeStockRepo) GetForUpdate(itemVariantID, locationID string) (*entity.StockRecord, error) {
	return f.Get(itemVariantID, locationID)
}

func (f *fakeStockRepo) Upsert(record *entity.StockRecord) error {
	clone := *record
	f.records[stockKey(record.ItemVariantID, record.LocationID)] = &clone
	return nil
}

func (f *fakeStockRepo) ListByLocation(locationID string, limit, offset int) ([]*entity.StockRecord, error) {
	return nil, nil
}

type fakeMovementRepo struct {
	movements map[string]*entity.Movement
}

func (f *fakeMovementRepo) Create(m *entity.Movement) error { f.movements[m.ID] = m; return nil }

func (f *fakeMovementRepo) GetByID(id string) (*entity.Movement, error) {
	return f.movements[id], nil
}

func (f *fakeMovementRepo) GetByIDForUpdate(id string) (*entity.Movement, error) {
	return f.movements[id], nil
}

func (f *fakeMovementRepo) UpdateStatus(m *entity.Movement) error { return nil }

func (f *fakeMovementRepo) AppendEvent(event *entity.MovementEvent) error { return nil }

func (f *fakeMovementRepo) List(filter repository.MovementFilter) ([]*entity.Movement, error) {
	return nil, nil
}

type fakeDamageRepo struct {
	records []*entity.DamageRecord
}

func (f *fakeDamageRepo) Create(record *entity.DamageRecord) error {
	clone := *record
	f.records = append(f.records, &clone)
	return nil
}

func (f *fakeDamageRepo) SumByMovementAndVariant(movementID, itemVariantID string) (int, error) {
	sum := 0
	for _, r := range f.records {
		if r.MovementID == movementID && r.ItemVariantID == itemVariantID {
			sum += r.Quantity
		}
	}
	return sum, nil
}

func (f *fakeDamageRepo) ListByMovement(movementID string) ([]*entity.DamageRecord, error) {
	var out []*entity.DamageRecord
	for _, r := range f.records {
		if r.MovementID == movementID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeVariantRepo struct {
	variants map[string]*entity.ItemVariant
}

func (f *fakeVariantRepo) Create(v *entity.ItemVariant) error { return nil }

func (f *fakeVariantRepo) GetByID(id string) (*entity.ItemVariant, error) {
	return f.variants[id], nil
}

func (f *fakeVariantRepo) GetByIDs(ids []string) ([]*entity.ItemVariant, error) {
	var out []*entity.ItemVariant
	for _, id := range ids {
		if v, ok := f.variants[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeVariantRepo) Update(v *entity.ItemVariant) error { return nil }

func (f *fakeVariantRepo) List(limit, offset int) ([]*entity.ItemVariant, error) { return nil, nil }

// fakeTxRunner emula Commit/Rollback restaurando o snapshot em caso de erro.
type fakeTxRunner struct {
	movRepo    *fakeMovementRepo
	stockRepo  *fakeStockRepo
	damageRepo *fakeDamageRepo
}

func (r *fakeTxRunner) RunDamage(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
	damageRepo repository.DamageRepository,
) error) error {
	stockSnap := make(map[string]*entity.StockRecord, len(r.stockRepo.records))
	for k, v := range r.stockRepo.records {
		clone := *v
		stockSnap[k] = &clone
	}
	damageSnap := append([]*entity.DamageRecord(nil), r.damageRepo.records...)

	if err := fn(r.movRepo, r.stockRepo, r.damageRepo); err != nil {
		r.stockRepo.records = stockSnap
		r.damageRepo.records = damageSnap
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Cenário base
// ──────────────────────────────────────────────────────────────────────────────

const (
	locationA = "location-a"
	employee1 = "employee-1"
	variantP  = "variant-camisa-m"
	variantQ  = "variant-calca-42"
)

type fixture struct {
	uc         *damage.UseCase
	movRepo    *fakeMovementRepo
	stockRepo  *fakeStockRepo
	damageRepo *fakeDamageRepo
}

func newFixture() *fixture {
	movRepo := &fakeMovementRepo{movements: map[string]*entity.Movement{}}
	stockRepo := &fakeStockRepo{records: map[string]*entity.StockRecord{}}
	damageRepo := &fakeDamageRepo{}
	variantRepo := &fakeVariantRepo{variants: map[string]*entity.ItemVariant{
		variantP: {ID: variantP},
		variantQ: {ID: variantQ},
	}}
	runner := &fakeTxRunner{movRepo: movRepo, stockRepo: stockRepo, damageRepo: damageRepo}
	uc := damage.NewUseCase(runner, movRepo, damageRepo, variantRepo)
	return &fixture{uc: uc, movRepo: movRepo, stockRepo: stockRepo, damageRepo: damageRepo}
}

// seedReturn registra uma devolução no status informado com as linhas dadas.
func (fx *fixture) seedReturn(id, status string, lines ...entity.MovementLine) *entity.Movement {
	mov := &entity.Movement{
		ID:         id,
		Kind:       entity.MovementKindReturn,
		Status:     status,
		LocationID: locationA,
		EmployeeID: employee1,
		Lines:      lines,
	}
	fx.movRepo.movements[id] = mov
	return mov
}

func testActor() dto.Actor {
	return dto.Actor{ID: "actor-1", Name: "Operador Teste"}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Avaria sobre devolução concluída baixa o total do estoque, sem tocar
// na reserva, e grava o registro com o ator.
func TestRegisterDamage(t *testing.T) {
	fx := newFixture()
	fx.stockRepo.seed(variantP, locationA, 8, 2)
	fx.seedReturn("mov-1", entity.StatusCompleted,
		entity.MovementLine{ID: "l1", MovementID: "mov-1", ItemVariantID: variantP, Quantity: 3})

	records, err := fx.uc.RegisterDamage(context.Background(), "mov-1", dto.RegisterDamageRequest{
		Items: []dto.DamageItemRequest{{ItemVariantID: variantP, Quantity: 2, Description: "rasgado"}},
	}, testActor())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 2, records[0].Quantity)
	assert.Equal(t, "rasgado", records[0].Description)
	assert.Equal(t, "actor-1", records[0].ActorID)

	record, _ := fx.stockRepo.Get(variantP, locationA)
	assert.Equal(t, 6, record.Total)
	assert.Equal(t, 2, record.Reserved, "avaria não mexe na reserva")
}

// Avarias acumuladas não podem exceder o devolvido na linha.
func TestRegisterDamage_AcumuladoLimitadoAoDevolvido(t *testing.T) {
	fx := newFixture()
	fx.stockRepo.seed(variantP, locationA, 10, 0)
	fx.seedReturn("mov-1", entity.StatusCompleted,
		entity.MovementLine{ID: "l1", MovementID: "mov-1", ItemVariantID: variantP, Quantity: 3})
	ctx := context.Background()

	_, err := fx.uc.RegisterDamage(ctx, "mov-1", dto.RegisterDamageRequest{
		Items: []dto.DamageItemRequest{{ItemVariantID: variantP, Quantity: 2}},
	}, testActor())
	require.NoError(t, err)

	// 2 já baixados; mais 2 excederia os 3 devolvidos.
	_, err = fx.uc.RegisterDamage(ctx, "mov-1", dto.RegisterDamageRequest{
		Items: []dto.DamageItemRequest{{ItemVariantID: variantP, Quantity: 2}},
	}, testActor())
	assert.ErrorIs(t, err, domain.ErrDamageExceedsReturned)

	// Mais 1 cabe exatamente.
	_, err = fx.uc.RegisterDamage(ctx, "mov-1", dto.RegisterDamageRequest{
		Items: []dto.DamageItemRequest{{ItemVariantID: variantP, Quantity: 1}},
	}, testActor())
	require.NoError(t, err)

	record, _ := fx.stockRepo.Get(variantP, locationA)
	assert.Equal(t, 7, record.Total)
}

// Variação que não está nas linhas da devolução conta como devolvido zero.
func TestRegisterDamage_VariacaoForaDasLinhas(t *testing.T) {
	fx := newFixture()
	fx.stockRepo.seed(variantQ, locationA, 10, 0)
	fx.seedReturn("mov-1", entity.StatusCompleted,
		entity.MovementLine{ID: "l1", MovementID: "mov-1", ItemVariantID: variantP, Quantity: 3})

	_, err := fx.uc.RegisterDamage(context.Background(), "mov-1", dto.RegisterDamageRequest{
		Items: []dto.DamageItemRequest{{ItemVariantID: variantQ, Quantity: 1}},
	}, testActor())
	assert.ErrorIs(t, err, domain.ErrDamageExceedsReturned)
}

// Só devoluções concluídas aceitam avaria.
func TestRegisterDamage_EstadoInvalido(t *testing.T) {
	fx := newFixture()
	fx.stockRepo.seed(variantP, locationA, 10, 0)
	ctx := context.Background()

	fx.seedReturn("mov-created", entity.StatusCreated,
		entity.MovementLine{ItemVariantID: variantP, Quantity: 3})
	_, err := fx.uc.RegisterDamage(ctx, "mov-created", dto.RegisterDamageRequest{
		Items: []dto.DamageItemRequest{{ItemVariantID: variantP, Quantity: 1}},
	}, testActor())
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	// Entrega concluída também não aceita.
	fx.movRepo.movements["mov-delivery"] = &entity.Movement{
		ID: "mov-delivery", Kind: entity.MovementKindDelivery, Status: entity.StatusCompleted,
		LocationID: locationA, EmployeeID: employee1,
		Lines: []entity.MovementLine{{ItemVariantID: variantP, Quantity: 3}},
	}
	_, err = fx.uc.RegisterDamage(ctx, "mov-delivery", dto.RegisterDamageRequest{
		Items: []dto.DamageItemRequest{{ItemVariantID: variantP, Quantity: 1}},
	}, testActor())
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestRegisterDamage_ValidacoesDeEntrada(t *testing.T) {
	fx := newFixture()
	fx.seedReturn("mov-1", entity.StatusCompleted,
		entity.MovementLine{ItemVariantID: variantP, Quantity: 3})
	ctx := context.Background()

	_, err := fx.uc.RegisterDamage(ctx, "mov-1", dto.RegisterDamageRequest{}, testActor())
	assert.ErrorIs(t, err, domain.ErrEmptyRequest)

	_, err = fx.uc.RegisterDamage(ctx, "mov-1", dto.RegisterDamageRequest{
		Items: []dto.DamageItemRequest{{ItemVariantID: variantP, Quantity: 0}},
	}, testActor())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = fx.uc.RegisterDamage(ctx, "mov-zz", dto.RegisterDamageRequest{
		Items: []dto.DamageItemRequest{{ItemVariantID: variantP, Quantity: 1}},
	}, testActor())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Falha em um item reverte os baixas e registros dos itens anteriores.
func TestRegisterDamage_FalhaEhAtomica(t *testing.T) {
	fx := newFixture()
	fx.stockRepo.seed(variantP, locationA, 10, 0)
	fx.stockRepo.seed(variantQ, locationA, 0, 0) // sem estoque físico
	fx.seedReturn("mov-1", entity.StatusCompleted,
		entity.MovementLine{ItemVariantID: variantP, Quantity: 2},
		entity.MovementLine{ItemVariantID: variantQ, Quantity: 2})

	_, err := fx.uc.RegisterDamage(context.Background(), "mov-1", dto.RegisterDamageRequest{
		Items: []dto.DamageItemRequest{
			{ItemVariantID: variantP, Quantity: 2},
			{ItemVariantID: variantQ, Quantity: 1},
		},
	}, testActor())
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	record, _ := fx.stockRepo.Get(variantP, locationA)
	assert.Equal(t, 10, record.Total, "baixa do primeiro item revertida")
	assert.Empty(t, fx.damageRepo.records, "nenhum registro persistido")
}

func TestListByMovement(t *testing.T) {
	fx := newFixture()
	fx.stockRepo.seed(variantP, locationA, 10, 0)
	fx.seedReturn("mov-1", entity.StatusCompleted,
		entity.MovementLine{ItemVariantID: variantP, Quantity: 3})

	_, err := fx.uc.RegisterDamage(context.Background(), "mov-1", dto.RegisterDamageRequest{
		Items: []dto.DamageItemRequest{{ItemVariantID: variantP, Quantity: 2, Description: "manchado"}},
	}, testActor())
	require.NoError(t, err)

	records, err := fx.uc.ListByMovement(context.Background(), "mov-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, variantP, records[0].ItemVariantID)
}
