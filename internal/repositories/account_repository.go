package repositories

import (
	"context"
	"errors"
	"fmt"

	"moneyflow/internal/models"

	"gorm.io/gorm"
)

// AccountRepository resolves accounts by their contact identifiers.
type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// ResolveByIdentifier looks up an account by phone or email. A missing
// account is (nil, nil): absence is a normal answer here, not a failure.
func (r *AccountRepository) ResolveByIdentifier(ctx context.Context, identifier string) (*models.Account, error) {
	var account models.Account
	err := r.db.WithContext(ctx).
		Where("phone = ? OR email = ?", identifier, identifier).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve account: %w", err)
	}
	return &account, nil
}

// GetByID fetches an account by primary key.
func (r *AccountRepository) GetByID(ctx context.Context, id uint) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}
