package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tair/laminate-stock/internal/ledger/domain"
)

type GormTransactionRepository struct {
	db *gorm.DB
}

func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

func (r *GormTransactionRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Transaction{})
}

func (r *GormTransactionRepository) Create(transaction *domain.Transaction) error {
	return r.db.Create(transaction).Error
}

func (r *GormTransactionRepository) FindByID(id uint) (*domain.Transaction, error) {
	var transaction domain.Transaction
	err := r.db.First(&transaction, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return &transaction, nil
}

func (r *GormTransactionRepository) FindAll(filter domain.TransactionFilter, limit, offset int) ([]domain.Transaction, error) {
	query := r.db.Model(&domain.Transaction{})

	if filter.LaminateID != 0 {
		query = query.Where("laminate_id = ?", filter.LaminateID)
	}
	if filter.Kind != "" {
		query = query.Where("kind = ?", filter.Kind)
	}
	if filter.DateFrom != "" {
		query = query.Where("date >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		query = query.Where("date <= ?", filter.DateTo)
	}
	if filter.CustomerName != "" {
		query = query.Where("customer_name = ?", filter.CustomerName)
	}

	var transactions []domain.Transaction
	err := query.Limit(limit).Offset(offset).Order("date DESC, id DESC").Find(&transactions).Error
	return transactions, err
}

func (r *GormTransactionRepository) Update(transaction *domain.Transaction) error {
	return r.db.Save(transaction).Error
}

func (r *GormTransactionRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Transaction{}, id).Error
}

func (r *GormTransactionRepository) DeleteAll() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&domain.Transaction{}).Error
}

func (r *GormTransactionRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Transaction{}).Count(&count).Error
	return count, err
}

func (r *GormTransactionRepository) CountByLaminateID(laminateID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Transaction{}).
		Where("laminate_id = ?", laminateID).
		Count(&count).Error
	return count, err
}

// NetQuantity sums the live transaction set for one laminate: purchases
// count positive, sales negative. This is the full re-derivation the
// stock recalculation relies on.
func (r *GormTransactionRepository) NetQuantity(laminateID uint) (int, error) {
	var total int
	err := r.db.Model(&domain.Transaction{}).
		Select("COALESCE(SUM(CASE WHEN kind = ? THEN quantity ELSE -quantity END), 0)", domain.KindPurchase).
		Where("laminate_id = ?", laminateID).
		Scan(&total).Error
	return total, err
}

func (r *GormTransactionRepository) SaleTotals() ([]domain.SaleTotal, error) {
	var totals []domain.SaleTotal
	err := r.db.Model(&domain.Transaction{}).
		Select("laminate_id, SUM(quantity) AS total_sold").
		Where("kind = ?", domain.KindSale).
		Group("laminate_id").
		Order("total_sold DESC").
		Scan(&totals).Error
	return totals, err
}
