// Package deposit funds wallets from external cards through Stripe.
package deposit

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"moneyflow/internal/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/charge"
)

var (
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	ErrInvalidToken  = errors.New("invalid card token")
	ErrChargeFailed  = errors.New("card charge failed")
)

const OpDepositCredit = "deposit_credit"

// BalanceService credits the wallet once the charge clears.
type BalanceService interface {
	AdjustBalance(ctx context.Context, userID uint, delta float64, operationType string) (float64, error)
}

// Store persists deposit records.
type Store interface {
	CreateTransfer(ctx context.Context, record *models.Transaction) error
}

// Service handles card deposits.
type Service struct {
	balances BalanceService
	store    Store
}

// NewService creates a deposit service.
func NewService(balances BalanceService, store Store) *Service {
	if balances == nil {
		panic("balance service is required")
	}
	if store == nil {
		panic("store is required")
	}
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	return &Service{balances: balances, store: store}
}

// Deposit charges the card token and credits the user's wallet. Deposits
// carry no fee. XAF is a zero-decimal currency so the amount goes to Stripe
// as-is.
func (s *Service) Deposit(ctx context.Context, userID uint, amount float64, cardToken string) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if !strings.HasPrefix(cardToken, "tok_") {
		return nil, ErrInvalidToken
	}

	params := &stripe.ChargeParams{
		Amount:      stripe.Int64(int64(amount)),
		Currency:    stripe.String(string(stripe.CurrencyXAF)),
		Description: stripe.String(fmt.Sprintf("MoneyFlow wallet deposit for user %d", userID)),
	}
	if err := params.SetSource(cardToken); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	ch, err := charge.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrChargeFailed, err)
	}

	if _, err := s.balances.AdjustBalance(ctx, userID, amount, OpDepositCredit); err != nil {
		return nil, fmt.Errorf("charge %s succeeded but wallet credit failed: %w", ch.ID, err)
	}

	record := &models.Transaction{
		Type:        models.TransactionTypeDeposit,
		SenderID:    userID,
		RecipientID: &userID,
		Amount:      amount,
		Fee:         0,
		Status:      models.TransactionStatusCompleted,
		Reference:   uuid.NewString(),
		Metadata: models.NewJSON(map[string]interface{}{
			"stripe_charge_id": ch.ID,
		}),
	}
	if err := s.store.CreateTransfer(ctx, record); err != nil {
		return nil, fmt.Errorf("deposit credited but record creation failed: %w", err)
	}
	return record, nil
}
