package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"moneyflow/internal/models"
	"moneyflow/internal/repositories/cache"
	"moneyflow/internal/services/settlement"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransferRepository implements the platform's atomic settlement operation
// and the direct record-creation primitives used by the fallback and
// pending-claim paths.
type TransferRepository struct {
	db    *gorm.DB
	cache *cache.Service
}

func NewTransferRepository(db *gorm.DB, cacheSvc *cache.Service) *TransferRepository {
	return &TransferRepository{db: db, cache: cacheSvc}
}

// ProcessTransfer settles a transfer in one database transaction: recipient
// resolution, guarded sender debit of amount+fee, recipient credit, and the
// completed transfer record. Everything commits or nothing does. Returns
// settlement.ErrRecipientNotFound when the identifier matches no account.
func (r *TransferRepository) ProcessTransfer(ctx context.Context, senderID uint, recipientIdentifier string, amount, feeAmount float64) error {
	total := amount + feeAmount

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipient models.Account
		if err := tx.Where("phone = ? OR email = ?", recipientIdentifier, recipientIdentifier).
			First(&recipient).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return settlement.ErrRecipientNotFound
			}
			return fmt.Errorf("failed to resolve recipient: %w", err)
		}

		debit := tx.Model(&models.Wallet{}).
			Where("user_id = ? AND status = ? AND balance >= ?", senderID, "active", total).
			Update("balance", gorm.Expr("balance - ?", total))
		if debit.Error != nil {
			return fmt.Errorf("failed to debit sender: %w", debit.Error)
		}
		if debit.RowsAffected == 0 {
			return ErrInsufficientBalance
		}

		credit := tx.Model(&models.Wallet{}).
			Where("user_id = ?", recipient.ID).
			Update("balance", gorm.Expr("balance + ?", amount))
		if credit.Error != nil {
			return fmt.Errorf("failed to credit recipient: %w", credit.Error)
		}
		if credit.RowsAffected == 0 {
			return ErrWalletNotFound
		}

		record := &models.Transaction{
			Type:           models.TransactionTypeTransfer,
			SenderID:       senderID,
			RecipientID:    &recipient.ID,
			RecipientPhone: recipient.Phone,
			RecipientName:  recipient.FullName,
			Amount:         amount,
			Fee:            feeAmount,
			Status:         models.TransactionStatusCompleted,
			Reference:      uuid.NewString(),
		}
		return tx.Create(record).Error
	})
	if err != nil {
		return err
	}

	if r.cache != nil {
		_ = r.cache.InvalidateWallet(ctx, senderID)
	}
	return nil
}

// CreateTransfer persists a transfer record directly.
func (r *TransferRepository) CreateTransfer(ctx context.Context, record *models.Transaction) error {
	if record.Reference == "" {
		record.Reference = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create transfer record: %w", err)
	}
	return nil
}

// CreatePendingClaim persists a pending transfer awaiting its claim.
func (r *TransferRepository) CreatePendingClaim(ctx context.Context, claim *models.PendingTransfer) error {
	if err := r.db.WithContext(ctx).Create(claim).Error; err != nil {
		return fmt.Errorf("failed to create pending claim: %w", err)
	}
	return nil
}

// LedgerRecordsSince loads completed and historical operations for an agent's
// commission report.
func (r *TransferRepository) LedgerRecordsSince(ctx context.Context, agentID uint, since time.Time, opType string) ([]models.Transaction, error) {
	var records []models.Transaction
	err := r.db.WithContext(ctx).
		Where("sender_id = ? AND type = ? AND created_at >= ?", agentID, opType, since).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger records: %w", err)
	}
	return records, nil
}
