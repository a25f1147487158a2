package models

import (
	"time"
)

// Account roles
const (
	RoleUser     = "user"
	RoleAgent    = "agent"
	RoleMerchant = "merchant"
	RoleAdmin    = "admin"
)

// Account represents a registered MoneyFlow account. Balances live on the
// account's wallet, not here.
type Account struct {
	ID        uint   `gorm:"primarykey"`
	FullName  string `gorm:"not null"`
	Phone     string `gorm:"uniqueIndex"`
	Email     string `gorm:"uniqueIndex"`
	Country   string `gorm:"not null"`
	Role      string `gorm:"not null;default:'user'"`
	Status    string `gorm:"not null;default:'active'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsMerchant reports whether the account can receive merchant payments.
func (a *Account) IsMerchant() bool {
	return a.Role == RoleMerchant
}
