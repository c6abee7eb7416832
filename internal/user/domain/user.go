package domain

import (
	"time"

	"gorm.io/gorm"
)

// Role types
const (
	// RoleSuperAdmin can act across every sector
	RoleSuperAdmin = "superadmin"
	// RoleAdmin is scoped to exactly one ferme
	RoleAdmin = "admin"
)

// User represents a dashboard account (domain model)
type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Username  string         `json:"username" gorm:"uniqueIndex;not null"`
	Email     string         `json:"email" gorm:"uniqueIndex;not null"`
	Password  string         `json:"-" gorm:"not null"` // Never expose password in JSON
	FullName  string         `json:"full_name" gorm:"not null"`
	Role      string         `json:"role" gorm:"not null;default:'admin'"`
	FermeID   uint           `json:"ferme_id" gorm:"index"` // 0 for superadmin accounts
	IsActive  bool           `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"` // Soft delete
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// IsSuperAdmin checks whether the account has cross-sector privilege
func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// CanManageFerme checks whether the account may mutate data owned by fermeID
func (u *User) CanManageFerme(fermeID uint) bool {
	return u.IsSuperAdmin() || u.FermeID == fermeID
}

// UserRepository defines the contract for user data access
type UserRepository interface {
	Create(user *User) error
	FindByID(id uint) (*User, error)
	FindByUsername(username string) (*User, error)
	FindByEmail(email string) (*User, error)
	FindAll(limit, offset int) ([]User, error)
	FindByFerme(fermeID uint, limit, offset int) ([]User, error)
	Update(user *User) error
	Delete(id uint) error
	Count() (int64, error)
	CountByRole(role string) (int64, error)
}
