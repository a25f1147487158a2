// Package withdrawal implements agent-mediated cash-outs: the user's wallet
// is debited, the agent's float is credited, and a completed withdrawal
// record is written for retrospective commission reporting.
package withdrawal

import (
	"context"
	"errors"
	"fmt"

	"moneyflow/internal/models"
	"moneyflow/internal/services/fee"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	ErrSameAccount   = errors.New("agent cannot withdraw from their own account")
)

// Balance operation types
const (
	OpWithdrawalDebit  = "withdrawal_debit"
	OpAgentFloatCredit = "agent_float_credit"
)

// BalanceService exposes the platform's balance primitives.
type BalanceService interface {
	GetBalance(ctx context.Context, userID uint) (float64, error)
	AdjustBalance(ctx context.Context, userID uint, delta float64, operationType string) (float64, error)
}

// Store persists withdrawal records.
type Store interface {
	CreateTransfer(ctx context.Context, record *models.Transaction) error
}

// Service handles agent-mediated withdrawals.
type Service struct {
	balances BalanceService
	store    Store
}

// NewService creates a withdrawal service.
func NewService(balances BalanceService, store Store) *Service {
	if balances == nil {
		panic("balance service is required")
	}
	if store == nil {
		panic("store is required")
	}
	return &Service{balances: balances, store: store}
}

// Withdraw cashes out amount from the user through the agent. The user pays
// amount plus the withdrawal fee (the commission-split total); the agent's
// float is credited with the cash amount they hand over.
func (s *Service) Withdraw(ctx context.Context, agentID, userID uint, amount float64) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if agentID == userID {
		return nil, ErrSameAccount
	}

	split := fee.CommissionSplitRate(fee.OperationWithdrawal)
	feeAmount := amount * (split.Agent + split.MoneyFlow)

	if _, err := s.balances.AdjustBalance(ctx, userID, -(amount + feeAmount), OpWithdrawalDebit); err != nil {
		return nil, fmt.Errorf("failed to debit user: %w", err)
	}

	if _, err := s.balances.AdjustBalance(ctx, agentID, amount, OpAgentFloatCredit); err != nil {
		// Compensate the user debit; if even that fails the record below is
		// never written and the case goes to manual reconciliation.
		if _, rbErr := s.balances.AdjustBalance(ctx, userID, amount+feeAmount, OpWithdrawalDebit); rbErr != nil {
			return nil, fmt.Errorf("critical: agent credit failed and user re-credit failed: %v, %v", err, rbErr)
		}
		return nil, fmt.Errorf("failed to credit agent float: %w", err)
	}

	record := &models.Transaction{
		Type:        models.TransactionTypeWithdrawal,
		SenderID:    agentID,
		RecipientID: &userID,
		Amount:      amount,
		Fee:         feeAmount,
		Status:      models.TransactionStatusCompleted,
		Reference:   uuid.NewString(),
		Metadata: models.NewJSON(map[string]interface{}{
			"agent_commission_rate":     split.Agent,
			"moneyflow_commission_rate": split.MoneyFlow,
		}),
	}
	if err := s.store.CreateTransfer(ctx, record); err != nil {
		return nil, fmt.Errorf("withdrawal settled but record creation failed: %w", err)
	}
	return record, nil
}
