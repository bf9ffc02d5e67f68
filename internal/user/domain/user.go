package domain

import (
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Role types
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Page permission keys. Each application page is gated by one key;
// admins bypass the check entirely.
const (
	PageDashboard    = "dashboard"
	PageInventory    = "inventory"
	PageTransactions = "transactions"
	PageReports      = "reports"
	PageUsers        = "users"
	PageSettings     = "settings"
)

// AllPages lists every page permission key
var AllPages = []string{
	PageDashboard,
	PageInventory,
	PageTransactions,
	PageReports,
	PageUsers,
	PageSettings,
}

// ErrUserNotFound is returned when a user id, name or email does not resolve
var ErrUserNotFound = errors.New("user not found")

// User represents the user entity (domain model)
type User struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Username    string         `json:"username" gorm:"uniqueIndex;not null"`
	Email       string         `json:"email" gorm:"uniqueIndex;not null"`
	Password    string         `json:"-" gorm:"not null"` // Never expose password in JSON
	Role        string         `json:"role" gorm:"not null;default:'user'"`
	Permissions pq.StringArray `json:"permissions" gorm:"type:text[]"`
	IsActive    bool           `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"` // Soft delete
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// IsAdmin checks if user has admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasPermission checks whether the user may access a page. Admins can
// access every page regardless of their permission list.
func (u *User) HasPermission(page string) bool {
	if u.IsAdmin() {
		return true
	}
	for _, p := range u.Permissions {
		if p == page {
			return true
		}
	}
	return false
}

// ValidPage reports whether page is a known permission key
func ValidPage(page string) bool {
	for _, p := range AllPages {
		if p == page {
			return true
		}
	}
	return false
}

// UserRepository defines the contract for user data access
type UserRepository interface {
	Create(user *User) error
	FindByID(id uint) (*User, error)
	FindByUsername(username string) (*User, error)
	FindByEmail(email string) (*User, error)
	FindAll(limit, offset int) ([]User, error)
	Update(user *User) error
	Delete(id uint) error
	Count() (int64, error)
	CountByRole(role string) (int64, error)
}
