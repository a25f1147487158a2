package models

import (
	"time"
)

// Notification priorities
const (
	NotificationPriorityNormal = "normal"
	NotificationPriorityHigh   = "high"
)

// Notification is an in-app notification row; delivery fan-out happens over
// the message broker, this is the persistent copy.
type Notification struct {
	ID        uint   `gorm:"primarykey"`
	UserID    uint   `gorm:"not null;index"`
	Title     string `gorm:"not null"`
	Message   string
	Priority  string `gorm:"default:'normal'"`
	ReadAt    *time.Time
	CreatedAt time.Time
}
