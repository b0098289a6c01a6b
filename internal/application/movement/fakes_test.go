package movement_test

import (
	"context"

	"github.com/jmoreiradev/fardamento-api/internal/application/movement"
	"github.com/jmoreiradev/fardamento-api/internal/domain/entity"
	"github.com/jmoreiradev/fardamento-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositórios fake em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeStockRepo struct {
	records map[string]*entity.StockRecord
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{records: map[string]*entity.StockRecord{}}
}

func stockKey(itemVariantID, locationID string) string {
	return itemVariantID + "|" + locationID
}

func (f *fakeStockRepo) seed(itemVariantID, locationID string, total, reserved int) {
	f.records[stockKey(itemVariantID, locationID)] = &entity.StockRecord{
		ItemVariantID: itemVariantID,
		LocationID:    locationID,
		Total:         total,
		Reserved:      reserved,
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
	var out []*entity.StockRecord
	for _, record := range f.records {
		if record.LocationID == locationID {
			clone := *record
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeStockRepo) snapshot() map[string]*entity.StockRecord {
	snap := make(map[string]*entity.StockRecord, len(f.records))
	for k, v := range f.records {
		clone := *v
		snap[k] = &clone
	}
	return snap
}

type fakeBalanceRepo struct {
	balances map[string]*entity.EmployeeBalance
}

func newFakeBalanceRepo() *fakeBalanceRepo {
	return &fakeBalanceRepo{balances: map[string]*entity.EmployeeBalance{}}
}

func balanceKey(employeeID, itemVariantID string) string {
	return employeeID + "|" + itemVariantID
}

func (f *fakeBalanceRepo) seed(employeeID, itemVariantID string, qty int) {
	f.balances[balanceKey(employeeID, itemVariantID)] = &entity.EmployeeBalance{
		EmployeeID:    employeeID,
		ItemVariantID: itemVariantID,
		Quantity:      qty,
	}
}

func (f *fakeBalanceRepo) Get(employeeID, itemVariantID string) (*entity.EmployeeBalance, error) {
	balance, ok := f.balances[balanceKey(employeeID, itemVariantID)]
	if !ok {
		return nil, nil
	}
	clone := *balance
	return &clone, nil
}

func (f *fakeBalanceRepo) GetForUpdate(employeeID, itemVariantID string) (*entity.EmployeeBalance, error) {
	return f.Get(employeeID, itemVariantID)
}

func (f *fakeBalanceRepo) Upsert(balance *entity.EmployeeBalance) error {
	clone := *balance
	f.balances[balanceKey(balance.EmployeeID, balance.ItemVariantID)] = &clone
	return nil
}

func (f *fakeBalanceRepo) ListByEmployee(employeeID string) ([]*entity.EmployeeBalance, error) {
	var out []*entity.EmployeeBalance
	for _, balance := range f.balances {
		if balance.EmployeeID == employeeID {
			clone := *balance
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeBalanceRepo) snapshot() map[string]*entity.EmployeeBalance {
	snap := make(map[string]*entity.EmployeeBalance, len(f.balances))
	for k, v := range f.balances {
		clone := *v
		snap[k] = &clone
	}
	return snap
}

type fakeMovementRepo struct {
	movements map[string]*entity.Movement
}

func newFakeMovementRepo() *fakeMovementRepo {
	return &fakeMovementRepo{movements: map[string]*entity.Movement{}}
}

func cloneMovement(m *entity.Movement) *entity.Movement {
	clone := *m
	clone.Lines = append([]entity.MovementLine(nil), m.Lines...)
	clone.Events = append([]entity.MovementEvent(nil), m.Events...)
	return &clone
}

func (f *fakeMovementRepo) Create(m *entity.Movement) error {
	f.movements[m.ID] = cloneMovement(m)
	return nil
}

func (f *fakeMovementRepo) GetByID(id string) (*entity.Movement, error) {
	m, ok := f.movements[id]
	if !ok {
		return nil, nil
	}
	return cloneMovement(m), nil
}

func (f *fakeMovementRepo) GetByIDForUpdate(id string) (*entity.Movement, error) {
	return f.GetByID(id)
}

func (f *fakeMovementRepo) UpdateStatus(m *entity.Movement) error {
	stored, ok := f.movements[m.ID]
	if !ok {
		return nil
	}
	stored.Status = m.Status
	stored.UpdatedAt = m.UpdatedAt
	return nil
}

func (f *fakeMovementRepo) AppendEvent(event *entity.MovementEvent) error {
	stored, ok := f.movements[event.MovementID]
	if !ok {
		return nil
	}
	stored.Events = append(stored.Events, *event)
	return nil
}

func (f *fakeMovementRepo) List(filter repository.MovementFilter) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range f.movements {
		if filter.LocationID != "" && m.LocationID != filter.LocationID {
			continue
		}
		if filter.Kind != "" && m.Kind != filter.Kind {
			continue
		}
		if filter.Status != "" && m.Status != filter.Status {
			continue
		}
		out = append(out, cloneMovement(m))
	}
	return out, nil
}

func (f *fakeMovementRepo) snapshot() map[string]*entity.Movement {
	snap := make(map[string]*entity.Movement, len(f.movements))
	for k, v := range f.movements {
		snap[k] = cloneMovement(v)
	}
	return snap
}

type fakeLocationRepo struct {
	locations map[string]*entity.Location
}

func newFakeLocationRepo(ids ...string) *fakeLocationRepo {
	f := &fakeLocationRepo{locations: map[string]*entity.Location{}}
	for _, id := range ids {
		f.locations[id] = &entity.Location{ID: id, Name: "Unidade " + id}
	}
	return f
}

func (f *fakeLocationRepo) Create(l *entity.Location) error { f.locations[l.ID] = l; return nil }

func (f *fakeLocationRepo) GetByID(id string) (*entity.Location, error) {
	return f.locations[id], nil
}

func (f *fakeLocationRepo) Update(l *entity.Location) error { f.locations[l.ID] = l; return nil }

func (f *fakeLocationRepo) List(limit, offset int) ([]*entity.Location, error) {
	var out []*entity.Location
	for _, l := range f.locations {
		out = append(out, l)
	}
	return out, nil
}

type fakeVariantRepo struct {
	variants map[string]*entity.ItemVariant
}

func newFakeVariantRepo(ids ...string) *fakeVariantRepo {
	f := &fakeVariantRepo{variants: map[string]*entity.ItemVariant{}}
	for _, id := range ids {
		f.variants[id] = &entity.ItemVariant{ID: id, ItemTypeID: "type-1", Size: "M", Gender: entity.GenderUnisex}
	}
	return f
}

func (f *fakeVariantRepo) Create(v *entity.ItemVariant) error { f.variants[v.ID] = v; return nil }

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

func (f *fakeVariantRepo) Update(v *entity.ItemVariant) error { f.variants[v.ID] = v; return nil }

func (f *fakeVariantRepo) List(limit, offset int) ([]*entity.ItemVariant, error) {
	var out []*entity.ItemVariant
	for _, v := range f.variants {
		out = append(out, v)
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employees map[string]*entity.Employee
}

func newFakeEmployeeRepo(ids ...string) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{employees: map[string]*entity.Employee{}}
	for _, id := range ids {
		f.employees[id] = &entity.Employee{ID: id, Name: "Colaborador " + id, Registration: "MAT-" + id}
	}
	return f
}

func (f *fakeEmployeeRepo) Create(e *entity.Employee) error { f.employees[e.ID] = e; return nil }

func (f *fakeEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	return f.employees[id], nil
}

func (f *fakeEmployeeRepo) Update(e *entity.Employee) error { f.employees[e.ID] = e; return nil }

func (f *fakeEmployeeRepo) List(limit, offset int) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, e := range f.employees {
		out = append(out, e)
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// TxRunner fake com rollback por snapshot
// ──────────────────────────────────────────────────────────────────────────────

// fakeTxRunner emula o Commit/Rollback do runner real: tira um snapshot dos
// repositórios antes de executar fn e restaura tudo se fn devolver erro.
type fakeTxRunner struct {
	movRepo     *fakeMovementRepo
	stockRepo   *fakeStockRepo
	balanceRepo *fakeBalanceRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
	balanceRepo repository.EmployeeBalanceRepository,
) error) error {
	movSnap := r.movRepo.snapshot()
	stockSnap := r.stockRepo.snapshot()
	balanceSnap := r.balanceRepo.snapshot()

	if err := fn(r.movRepo, r.stockRepo, r.balanceRepo); err != nil {
		r.movRepo.movements = movSnap
		r.stockRepo.records = stockSnap
		r.balanceRepo.balances = balanceSnap
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Cenário base compartilhado pelos tests
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc          *movement.UseCase
	movRepo     *fakeMovementRepo
	stockRepo   *fakeStockRepo
	balanceRepo *fakeBalanceRepo
}

const (
	locationA  = "location-a"
	employee1  = "employee-1"
	variantP   = "variant-camisa-m"
	variantQ   = "variant-calca-42"
	testActorI = "actor-1"
)

func newFixture() *fixture {
	movRepo := newFakeMovementRepo()
	stockRepo := newFakeStockRepo()
	balanceRepo := newFakeBalanceRepo()
	runner := &fakeTxRunner{movRepo: movRepo, stockRepo: stockRepo, balanceRepo: balanceRepo}

	uc := movement.NewUseCase(
		runner,
		movRepo,
		balanceRepo,
		newFakeLocationRepo(locationA),
		newFakeVariantRepo(variantP, variantQ),
		newFakeEmployeeRepo(employee1),
	)
	return &fixture{uc: uc, movRepo: movRepo, stockRepo: stockRepo, balanceRepo: balanceRepo}
}
