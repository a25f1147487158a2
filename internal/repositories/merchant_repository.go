package repositories

import (
	"context"
	"fmt"

	"moneyflow/internal/models"

	"gorm.io/gorm"
)

// MerchantRepository appends merchant-facing bookkeeping entries.
type MerchantRepository struct {
	db *gorm.DB
}

func NewMerchantRepository(db *gorm.DB) *MerchantRepository {
	return &MerchantRepository{db: db}
}

// RecordPayment appends a merchant payment entry.
func (r *MerchantRepository) RecordPayment(ctx context.Context, payerID, merchantID uint, amount float64, description string) error {
	entry := &models.MerchantPayment{
		PayerID:     payerID,
		MerchantID:  merchantID,
		Amount:      amount,
		Description: description,
	}
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to record merchant payment: %w", err)
	}
	return nil
}
