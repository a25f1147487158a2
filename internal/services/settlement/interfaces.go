package settlement

import (
	"context"

	"moneyflow/internal/models"
)

// BalanceService exposes the platform's balance primitives.
type BalanceService interface {
	GetBalance(ctx context.Context, userID uint) (float64, error)
	// AdjustBalance applies an atomic delta (negative is a debit) and
	// returns the new balance.
	AdjustBalance(ctx context.Context, userID uint, delta float64, operationType string) (float64, error)
}

// TransferProcessor is the platform's single atomic settlement operation:
// debit, credit and record creation succeed or fail together. Returns
// ErrRecipientNotFound when the identifier resolves to no account.
type TransferProcessor interface {
	ProcessTransfer(ctx context.Context, senderID uint, recipientIdentifier string, amount, feeAmount float64) error
}

// TransferStore persists transfer records and pending claims directly,
// outside the atomic operation. Used by the fallback and claim paths.
type TransferStore interface {
	CreateTransfer(ctx context.Context, tx *models.Transaction) error
	CreatePendingClaim(ctx context.Context, claim *models.PendingTransfer) error
}

// AccountResolver looks up accounts by phone or email. A missing account is
// (nil, nil), not an error.
type AccountResolver interface {
	ResolveByIdentifier(ctx context.Context, identifier string) (*models.Account, error)
}

// MerchantLedger appends merchant-facing bookkeeping entries.
type MerchantLedger interface {
	RecordPayment(ctx context.Context, payerID, merchantID uint, amount float64, description string) error
}

// Notifier dispatches best-effort notifications. Failures are observational
// only and must never affect a settlement result.
type Notifier interface {
	Dispatch(ctx context.Context, recipientIDs []uint, title, message, priority string) error
}

// Service drives a transfer request to a terminal settlement outcome.
type Service interface {
	Settle(ctx context.Context, req Request) Outcome
}
