package domain

import (
	"time"

	"gorm.io/gorm"
)

// Transaction kinds
const (
	KindPurchase = "purchase"
	KindSale     = "sale"
)

// Transaction represents a single recorded inventory movement.
// Kind is immutable after creation; a purchase adds to the laminate's
// stock, a sale subtracts from it.
type Transaction struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Kind         string         `json:"kind" gorm:"column:kind;not null;index"`
	LaminateID   uint           `json:"laminate_id" gorm:"column:laminate_id;not null;index"`
	Date         string         `json:"date" gorm:"column:date;type:date;not null"`
	Quantity     int            `json:"quantity" gorm:"column:quantity;not null"`
	CustomerName string         `json:"customer_name,omitempty" gorm:"column:customer_name"`
	Remarks      string         `json:"remarks,omitempty" gorm:"column:remarks"`
	BatchRef     string         `json:"batch_ref,omitempty" gorm:"column:batch_ref;index"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Transaction) TableName() string {
	return "transactions"
}

// SignedQuantity returns the transaction's contribution to stock
func (t *Transaction) SignedQuantity() int {
	if t.Kind == KindSale {
		return -t.Quantity
	}
	return t.Quantity
}

// ValidKind reports whether kind is a known transaction kind
func ValidKind(kind string) bool {
	return kind == KindPurchase || kind == KindSale
}

// TransactionFilter narrows transaction listings
type TransactionFilter struct {
	LaminateID   uint   // 0 means any laminate
	Kind         string // empty means any kind
	DateFrom     string // inclusive, empty means unbounded
	DateTo       string // inclusive, empty means unbounded
	CustomerName string // empty means any customer
}

// SaleTotal is an aggregated sold quantity for one laminate
type SaleTotal struct {
	LaminateID uint
	TotalSold  int
}

// TransactionRepository defines the contract for transaction data access
type TransactionRepository interface {
	Create(transaction *Transaction) error
	FindByID(id uint) (*Transaction, error)
	FindAll(filter TransactionFilter, limit, offset int) ([]Transaction, error)
	Update(transaction *Transaction) error
	Delete(id uint) error
	DeleteAll() error
	Count() (int64, error)
	CountByLaminateID(laminateID uint) (int64, error)

	// NetQuantity re-derives the signed stock sum for one laminate from
	// the live transaction set (purchases positive, sales negative).
	NetQuantity(laminateID uint) (int, error)

	// SaleTotals aggregates sold quantity per laminate, descending
	SaleTotals() ([]SaleTotal, error)
}
