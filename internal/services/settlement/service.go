package settlement

import (
	"context"
	"errors"
	"fmt"
	"log"

	"moneyflow/internal/models"
	"moneyflow/internal/services/fee"
	"moneyflow/internal/utils"

	"github.com/google/uuid"
)

type service struct {
	fees      *fee.Calculator
	balances  BalanceService
	processor TransferProcessor
	store     TransferStore
	accounts  AccountResolver
	merchants MerchantLedger
	notifier  Notifier
	metrics   MetricsCollector
}

// NewService creates a new settlement service.
func NewService(
	fees *fee.Calculator,
	balances BalanceService,
	processor TransferProcessor,
	store TransferStore,
	accounts AccountResolver,
	merchants MerchantLedger,
	notifier Notifier,
	metrics MetricsCollector,
) Service {
	if fees == nil {
		panic("fee calculator is required")
	}
	if balances == nil {
		panic("balance service is required")
	}
	if processor == nil {
		panic("transfer processor is required")
	}
	if store == nil {
		panic("transfer store is required")
	}

	// Metrics is optional, create no-op collector if nil
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}

	return &service{
		fees:      fees,
		balances:  balances,
		processor: processor,
		store:     store,
		accounts:  accounts,
		merchants: merchants,
		notifier:  notifier,
		metrics:   metrics,
	}
}

// Settle drives a transfer request through validation, the atomic settlement
// attempt and its fallbacks, to a terminal outcome. Steps run strictly in
// sequence. Financial steps are never retried here: after a debit, a retry is
// an operator decision. Side effects after commit are best effort.
func (s *service) Settle(ctx context.Context, req Request) Outcome {
	if req.RecipientIdentifier == "" || req.RecipientFullName == "" {
		return failed(ReasonIncompleteRecipient, ErrIncompleteRecipient)
	}

	quote, err := s.fees.ComputeFee(req.Amount, req.SenderCountry, req.RecipientCountry, req.SenderRole)
	if err != nil {
		return failed(ReasonInvalidAmount, err)
	}

	balance, err := s.balances.GetBalance(ctx, req.SenderID)
	if err != nil {
		s.metrics.RecordError("get_balance", "unavailable")
		return failed(ReasonNetworkOrSystemError, fmt.Errorf("failed to get balance: %w", err))
	}
	if balance < quote.Total {
		return failed(ReasonInsufficientFunds, ErrInsufficientFunds)
	}

	err = s.processor.ProcessTransfer(ctx, req.SenderID, req.RecipientIdentifier, req.Amount, quote.FeeAmount)
	switch {
	case err == nil:
		outcome := completed("", quote)
		s.metrics.RecordOutcome(string(StatusCompleted), req.Amount)
		s.runPostCommitHooks(ctx, req, outcome)
		return outcome

	case errors.Is(err, ErrRecipientNotFound):
		outcome := s.settlePendingClaim(ctx, req, quote)
		if outcome.Status == StatusPendingClaim {
			s.metrics.RecordOutcome(string(StatusPendingClaim), req.Amount)
			s.runPostCommitHooks(ctx, req, outcome)
		}
		return outcome

	default:
		outcome := s.settleViaFallback(ctx, req, quote, err)
		if outcome.Status == StatusCompleted {
			s.metrics.RecordOutcome(string(StatusCompleted), req.Amount)
			s.runPostCommitHooks(ctx, req, outcome)
		}
		return outcome
	}
}

// settlePendingClaim reserves the sender's funds for a recipient the platform
// could not resolve. The sender pays now; the recipient claims later with the
// generated code.
func (s *service) settlePendingClaim(ctx context.Context, req Request, quote *fee.Quote) Outcome {
	code, err := utils.GenerateClaimCode()
	if err != nil {
		return failed(ReasonNetworkOrSystemError, fmt.Errorf("failed to generate claim code: %w", err))
	}
	hash, err := utils.HashClaimCode(code)
	if err != nil {
		return failed(ReasonNetworkOrSystemError, fmt.Errorf("failed to hash claim code: %w", err))
	}

	claim := &models.PendingTransfer{
		SenderID:      req.SenderID,
		Amount:        req.Amount,
		Fee:           quote.FeeAmount,
		ClaimCodeHash: hash,
		Status:        models.PendingTransferOpen,
	}
	setRecipientContact(claim, req.RecipientIdentifier)

	if err := s.store.CreatePendingClaim(ctx, claim); err != nil {
		s.metrics.RecordError("create_pending_claim", "store")
		return failed(ReasonNetworkOrSystemError, fmt.Errorf("failed to create pending claim: %w", err))
	}

	// The claim record exists; a failed debit here leaves a claimable entry
	// with no funds reserved, which must be reconciled manually.
	if _, err := s.balances.AdjustBalance(ctx, req.SenderID, -quote.Total, OpPendingClaimDebit); err != nil {
		s.metrics.RecordError("pending_claim_debit", "store")
		return failed(ReasonPartialInconsistency, fmt.Errorf("pending claim created but debit failed: %w", err))
	}

	return pendingClaim(code, quote)
}

// settleViaFallback is the compensating sequence when the atomic operation is
// unavailable: debit first, then write the transfer record. A debit failure
// means no money moved. A record failure after a successful debit is the
// reconciliation gap and is surfaced as its own reason.
func (s *service) settleViaFallback(ctx context.Context, req Request, quote *fee.Quote, cause error) Outcome {
	if _, err := s.balances.AdjustBalance(ctx, req.SenderID, -quote.Total, OpTransferDebit); err != nil {
		s.metrics.RecordError("fallback_debit", "store")
		return failed(ReasonNetworkOrSystemError,
			fmt.Errorf("atomic settlement unavailable (%v), fallback debit failed: %w", cause, err))
	}

	record := &models.Transaction{
		Type:             models.TransactionTypeTransfer,
		SenderID:         req.SenderID,
		RecipientPhone:   req.RecipientIdentifier,
		RecipientName:    req.RecipientFullName,
		RecipientCountry: req.RecipientCountry,
		Amount:           req.Amount,
		Fee:              quote.FeeAmount,
		Status:           models.TransactionStatusCompleted,
		Reference:        uuid.NewString(),
		Description:      req.Description,
	}
	if err := s.store.CreateTransfer(ctx, record); err != nil {
		s.metrics.RecordError("fallback_record", "store")
		return failed(ReasonPartialInconsistency,
			fmt.Errorf("sender debited but transfer record creation failed: %w", err))
	}

	return completed(record.Reference, quote)
}

// runPostCommitHooks performs the best-effort side effects after the
// financial transaction has committed: merchant bookkeeping when the
// recipient is a merchant account, then notification dispatch. Their errors
// are logged and swallowed; nothing here can change the settlement result.
func (s *service) runPostCommitHooks(ctx context.Context, req Request, outcome Outcome) {
	recipients := []uint{req.SenderID}

	if s.accounts != nil {
		account, err := s.accounts.ResolveByIdentifier(ctx, req.RecipientIdentifier)
		if err != nil {
			s.metrics.RecordSideEffectFailure("resolve_recipient")
			log.Printf("post-commit: failed to resolve recipient %q: %v", req.RecipientIdentifier, err)
		} else if account != nil {
			recipients = append(recipients, account.ID)
			if account.IsMerchant() && s.merchants != nil {
				if err := s.merchants.RecordPayment(ctx, req.SenderID, account.ID, req.Amount, req.Description); err != nil {
					s.metrics.RecordSideEffectFailure("merchant_payment")
					log.Printf("post-commit: failed to record merchant payment: %v", err)
				}
			}
		}
	}

	if s.notifier != nil {
		title, message := notificationContent(req, outcome)
		if err := s.notifier.Dispatch(ctx, recipients, title, message, models.NotificationPriorityHigh); err != nil {
			s.metrics.RecordSideEffectFailure("notification")
			log.Printf("post-commit: failed to dispatch notification: %v", err)
		}
	}
}

func notificationContent(req Request, outcome Outcome) (string, string) {
	if outcome.Status == StatusPendingClaim {
		return titlePendingClaim,
			fmt.Sprintf("Your transfer of %.0f XAF to %s is reserved until the recipient claims it.",
				req.Amount, req.RecipientFullName)
	}
	return titleTransferSent,
		fmt.Sprintf("Your transfer of %.0f XAF to %s was completed.", req.Amount, req.RecipientFullName)
}

// setRecipientContact stores the identifier in the matching contact column.
func setRecipientContact(claim *models.PendingTransfer, identifier string) {
	if isEmail(identifier) {
		claim.RecipientEmail = identifier
		return
	}
	claim.RecipientPhone = identifier
}

func isEmail(identifier string) bool {
	for _, r := range identifier {
		if r == '@' {
			return true
		}
	}
	return false
}
