package domain

import (
	"time"

	"gorm.io/gorm"
)

// Laminate represents a stocked laminate sheet variant.
// CurrentStock is derived from the transaction history and is never
// written directly by callers; the stock_quantity column is a cached
// materialized value maintained by the recalculation command.
type Laminate struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Brand         string         `json:"brand" gorm:"column:company;not null"`
	CatalogNumber string         `json:"catalog_number" gorm:"column:laminate_number;not null"`
	Finish        string         `json:"finish" gorm:"column:finish"`
	CurrentStock  int            `json:"current_stock" gorm:"column:stock_quantity;not null;default:0"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Laminate) TableName() string {
	return "laminates"
}

// IsLowStock reports whether the laminate is at or below the threshold
func (l *Laminate) IsLowStock(threshold int) bool {
	return l.CurrentStock <= threshold
}

// LaminateRepository defines the contract for laminate data access
type LaminateRepository interface {
	Create(laminate *Laminate) error
	FindByID(id uint) (*Laminate, error)
	FindAll(limit, offset int) ([]Laminate, error)
	FindLowStock(threshold int) ([]Laminate, error)
	Update(laminate *Laminate) error
	UpdateStock(id uint, stock int) error
	Delete(id uint) error
	DeleteAll() error
	Count() (int64, error)
}
