package ledger_test

import (
	"github.com/jmoreiradev/fardamento-api/internal/domain/entity"
)

// fakeStockRepo repositório de estoque em memória, chaveado por
// variação + unidade. Fora de transação os tests tratam GetForUpdate
// como um Get simples.
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

// fakeBalanceRepo repositório de saldo por colaborador em memória.
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
