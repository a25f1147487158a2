// Package notification dispatches best-effort user notifications: a
// persistent in-app row per recipient plus a broker event for delivery
// fan-out. Callers treat dispatch as fire-and-forget.
package notification

import (
	"context"
	"fmt"
	"log"

	"moneyflow/internal/models"
)

// Store persists in-app notification rows.
type Store interface {
	CreateBatch(ctx context.Context, notifications []models.Notification) error
}

// EventPublisher pushes notification events to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, event interface{}) error
}

// Event is the broker payload consumed by delivery workers.
type Event struct {
	RecipientIDs []uint `json:"recipient_ids"`
	Title        string `json:"title"`
	Message      string `json:"message"`
	Priority     string `json:"priority"`
}

// Service implements notification dispatch.
type Service struct {
	store     Store
	publisher EventPublisher
}

// NewService creates a notification service. The publisher is optional;
// without it only the in-app rows are written.
func NewService(store Store, publisher EventPublisher) *Service {
	if store == nil {
		panic("notification store is required")
	}
	return &Service{store: store, publisher: publisher}
}

// Dispatch writes one notification row per recipient and publishes a single
// broker event. The broker publish is best effort: the persistent rows are
// the source of truth and a broker outage must not fail the dispatch.
func (s *Service) Dispatch(ctx context.Context, recipientIDs []uint, title, message, priority string) error {
	if len(recipientIDs) == 0 {
		return nil
	}
	if priority == "" {
		priority = models.NotificationPriorityNormal
	}

	rows := make([]models.Notification, 0, len(recipientIDs))
	for _, id := range recipientIDs {
		rows = append(rows, models.Notification{
			UserID:   id,
			Title:    title,
			Message:  message,
			Priority: priority,
		})
	}
	if err := s.store.CreateBatch(ctx, rows); err != nil {
		return fmt.Errorf("failed to persist notifications: %w", err)
	}

	if s.publisher != nil {
		event := Event{RecipientIDs: recipientIDs, Title: title, Message: message, Priority: priority}
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.Printf("notification event publish failed: %v", err)
		}
	}
	return nil
}
