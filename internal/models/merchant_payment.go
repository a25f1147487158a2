package models

import (
	"time"
)

// MerchantPayment is the merchant-facing bookkeeping entry appended when a
// settled transfer's recipient is a merchant account.
type MerchantPayment struct {
	ID          uint    `gorm:"primarykey"`
	PayerID     uint    `gorm:"not null;index"`
	MerchantID  uint    `gorm:"not null;index"`
	Amount      float64 `gorm:"not null"`
	Description string
	CreatedAt   time.Time
}
