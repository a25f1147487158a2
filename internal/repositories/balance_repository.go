package repositories

import (
	"context"
	"errors"
	"fmt"

	"moneyflow/internal/models"
	"moneyflow/internal/repositories/cache"

	"gorm.io/gorm"
)

// BalanceRepository implements the platform balance primitives on top of the
// wallets table with atomic in-database updates.
type BalanceRepository struct {
	db    *gorm.DB
	cache *cache.Service
}

func NewBalanceRepository(db *gorm.DB, cacheSvc *cache.Service) *BalanceRepository {
	return &BalanceRepository{db: db, cache: cacheSvc}
}

// GetBalance returns the current balance for a user, serving from cache when
// possible.
func (r *BalanceRepository) GetBalance(ctx context.Context, userID uint) (float64, error) {
	if r.cache != nil {
		if wallet, err := r.cache.GetWallet(ctx, userID); err == nil && wallet != nil {
			return wallet.Balance, nil
		}
	}

	var wallet models.Wallet
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&wallet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrWalletNotFound
		}
		return 0, fmt.Errorf("failed to get wallet: %w", err)
	}

	if r.cache != nil {
		_ = r.cache.CacheWallet(ctx, &wallet)
	}
	return wallet.Balance, nil
}

// AdjustBalance applies delta atomically (negative delta is a debit) and
// returns the new balance. The update is a single guarded statement; a debit
// that would drive the balance negative affects no rows and fails.
func (r *BalanceRepository) AdjustBalance(ctx context.Context, userID uint, delta float64, operationType string) (float64, error) {
	var wallet models.Wallet

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Wallet{}).
			Where("user_id = ? AND status = ? AND balance + ? >= 0", userID, "active", delta).
			Update("balance", gorm.Expr("balance + ?", delta))
		if result.Error != nil {
			return fmt.Errorf("failed to adjust balance (%s): %w", operationType, result.Error)
		}
		if result.RowsAffected == 0 {
			// Distinguish a missing/locked wallet from a short balance.
			var exists models.Wallet
			if err := tx.Where("user_id = ?", userID).First(&exists).Error; err != nil {
				return ErrWalletNotFound
			}
			if exists.Status != "active" {
				return ErrWalletInactive
			}
			return ErrInsufficientBalance
		}
		return tx.Where("user_id = ?", userID).First(&wallet).Error
	})
	if err != nil {
		return 0, err
	}

	if r.cache != nil {
		_ = r.cache.InvalidateWallet(ctx, userID)
	}
	return wallet.Balance, nil
}
