package models

import (
	"time"
)

// Transaction types
const (
	TransactionTypeTransfer   = "transfer"
	TransactionTypeWithdrawal = "withdrawal"
	TransactionTypeDeposit    = "deposit"
	TransactionTypeFee        = "fee"
)

// Transaction statuses
const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"
)

// Transaction is the consolidated record for transfers, withdrawals and
// deposits. Amount and Fee are in base currency units (XAF).
type Transaction struct {
	ID               uint    `gorm:"primarykey"`
	Type             string  `gorm:"not null"`
	SenderID         uint    `gorm:"not null;index"`
	RecipientID      *uint   `gorm:"index"` // nil until the recipient is resolved
	RecipientPhone   string
	RecipientName    string
	RecipientCountry string
	Amount           float64 `gorm:"not null"`
	Fee              float64 `gorm:"default:0"`
	Status           string  `gorm:"not null;default:'pending'"`
	Currency         string  `gorm:"default:'XAF'"`
	Reference        string  `gorm:"uniqueIndex"` // external reference, uuid
	Description      string
	Metadata         JSON `gorm:"type:jsonb"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
