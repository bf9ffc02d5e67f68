package query

import (
	"sort"

	"github.com/tair/laminate-stock/internal/ledger/domain"
)

type fakeLaminateRepo struct {
	laminates map[uint]*domain.Laminate
	nextID    uint
}

func newFakeLaminateRepo() *fakeLaminateRepo {
	return &fakeLaminateRepo{laminates: make(map[uint]*domain.Laminate)}
}

func (f *fakeLaminateRepo) add(brand, catalog string, stock int) *domain.Laminate {
	f.nextID++
	l := &domain.Laminate{ID: f.nextID, Brand: brand, CatalogNumber: catalog, CurrentStock: stock}
	f.laminates[l.ID] = l
	return l
}

func (f *fakeLaminateRepo) Create(laminate *domain.Laminate) error {
	f.nextID++
	laminate.ID = f.nextID
	copied := *laminate
	f.laminates[laminate.ID] = &copied
	return nil
}

func (f *fakeLaminateRepo) FindByID(id uint) (*domain.Laminate, error) {
	l, ok := f.laminates[id]
	if !ok {
		return nil, domain.ErrLaminateNotFound
	}
	copied := *l
	return &copied, nil
}

func (f *fakeLaminateRepo) FindAll(limit, offset int) ([]domain.Laminate, error) {
	all := make([]domain.Laminate, 0, len(f.laminates))
	for _, l := range f.laminates {
		all = append(all, *l)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	if offset > len(all) {
		offset = len(all)
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeLaminateRepo) FindLowStock(threshold int) ([]domain.Laminate, error) {
	all, _ := f.FindAll(0, 0)
	low := make([]domain.Laminate, 0)
	for _, l := range all {
		if l.CurrentStock <= threshold {
			low = append(low, l)
		}
	}
	return low, nil
}

func (f *fakeLaminateRepo) Update(laminate *domain.Laminate) error {
	if _, ok := f.laminates[laminate.ID]; !ok {
		return domain.ErrLaminateNotFound
	}
	copied := *laminate
	f.laminates[laminate.ID] = &copied
	return nil
}

func (f *fakeLaminateRepo) UpdateStock(id uint, stock int) error {
	l, ok := f.laminates[id]
	if !ok {
		return domain.ErrLaminateNotFound
	}
	l.CurrentStock = stock
	return nil
}

func (f *fakeLaminateRepo) Delete(id uint) error {
	delete(f.laminates, id)
	return nil
}

func (f *fakeLaminateRepo) DeleteAll() error {
	f.laminates = make(map[uint]*domain.Laminate)
	return nil
}

func (f *fakeLaminateRepo) Count() (int64, error) {
	return int64(len(f.laminates)), nil
}

type fakeTransactionRepo struct {
	transactions map[uint]*domain.Transaction
	nextID       uint
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{transactions: make(map[uint]*domain.Transaction)}
}

func (f *fakeTransactionRepo) record(kind string, laminateID uint, date string, quantity int, customer string) *domain.Transaction {
	f.nextID++
	tx := &domain.Transaction{ID: f.nextID, Kind: kind, LaminateID: laminateID, Date: date, Quantity: quantity, CustomerName: customer}
	f.transactions[tx.ID] = tx
	return tx
}

func (f *fakeTransactionRepo) Create(transaction *domain.Transaction) error {
	f.nextID++
	transaction.ID = f.nextID
	copied := *transaction
	f.transactions[transaction.ID] = &copied
	return nil
}

func (f *fakeTransactionRepo) FindByID(id uint) (*domain.Transaction, error) {
	tx, ok := f.transactions[id]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	copied := *tx
	return &copied, nil
}

func (f *fakeTransactionRepo) FindAll(filter domain.TransactionFilter, limit, offset int) ([]domain.Transaction, error) {
	matched := make([]domain.Transaction, 0, len(f.transactions))
	for _, tx := range f.transactions {
		if filter.LaminateID != 0 && tx.LaminateID != filter.LaminateID {
			continue
		}
		if filter.Kind != "" && tx.Kind != filter.Kind {
			continue
		}
		if filter.DateFrom != "" && tx.Date < filter.DateFrom {
			continue
		}
		if filter.DateTo != "" && tx.Date > filter.DateTo {
			continue
		}
		if filter.CustomerName != "" && tx.CustomerName != filter.CustomerName {
			continue
		}
		matched = append(matched, *tx)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Date != matched[j].Date {
			return matched[i].Date > matched[j].Date
		}
		return matched[i].ID > matched[j].ID
	})
	if offset > len(matched) {
		offset = len(matched)
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (f *fakeTransactionRepo) Update(transaction *domain.Transaction) error {
	if _, ok := f.transactions[transaction.ID]; !ok {
		return domain.ErrTransactionNotFound
	}
	copied := *transaction
	f.transactions[transaction.ID] = &copied
	return nil
}

func (f *fakeTransactionRepo) Delete(id uint) error {
	delete(f.transactions, id)
	return nil
}

func (f *fakeTransactionRepo) DeleteAll() error {
	f.transactions = make(map[uint]*domain.Transaction)
	return nil
}

func (f *fakeTransactionRepo) Count() (int64, error) {
	return int64(len(f.transactions)), nil
}

func (f *fakeTransactionRepo) CountByLaminateID(laminateID uint) (int64, error) {
	var count int64
	for _, tx := range f.transactions {
		if tx.LaminateID == laminateID {
			count++
		}
	}
	return count, nil
}

func (f *fakeTransactionRepo) NetQuantity(laminateID uint) (int, error) {
	total := 0
	for _, tx := range f.transactions {
		if tx.LaminateID != laminateID {
			continue
		}
		if tx.Kind == domain.KindPurchase {
			total += tx.Quantity
		} else {
			total -= tx.Quantity
		}
	}
	return total, nil
}

func (f *fakeTransactionRepo) SaleTotals() ([]domain.SaleTotal, error) {
	byLaminate := make(map[uint]int)
	for _, tx := range f.transactions {
		if tx.Kind == domain.KindSale {
			byLaminate[tx.LaminateID] += tx.Quantity
		}
	}
	totals := make([]domain.SaleTotal, 0, len(byLaminate))
	for id, sold := range byLaminate {
		totals = append(totals, domain.SaleTotal{LaminateID: id, TotalSold: sold})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].TotalSold > totals[j].TotalSold })
	return totals, nil
}
