package models

import (
	"time"
)

// Pending transfer statuses
const (
	PendingTransferOpen    = "pending"
	PendingTransferClaimed = "claimed"
)

// PendingTransfer reserves a sender's funds for a recipient that could not be
// resolved to an existing account at settlement time. The claim code is never
// stored in plaintext; only its bcrypt hash is kept for the later claim
// verification.
type PendingTransfer struct {
	ID             uint   `gorm:"primarykey"`
	SenderID       uint   `gorm:"not null;index"`
	RecipientEmail string
	RecipientPhone string
	Amount         float64 `gorm:"not null"`
	Fee            float64 `gorm:"default:0"`
	ClaimCodeHash  string  `gorm:"not null"`
	Status         string  `gorm:"not null;default:'pending'"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
