package settlement

import (
	"moneyflow/internal/services/fee"
)

// Request is one transfer to settle. Sender role and country arrive as
// explicit fields; the orchestrator never reads them from ambient state.
type Request struct {
	SenderID            uint
	SenderRole          fee.Role
	SenderCountry       string
	RecipientIdentifier string // phone or email
	RecipientFullName   string
	RecipientCountry    string
	Amount              float64
	Description         string
}

// Status is the terminal state of a settlement attempt.
type Status string

const (
	StatusCompleted    Status = "completed"
	StatusPendingClaim Status = "pending_claim"
	StatusFailed       Status = "failed"
)

// Reason qualifies a failed settlement.
type Reason string

const (
	ReasonInvalidAmount       Reason = "invalid_amount"
	ReasonIncompleteRecipient Reason = "incomplete_recipient"
	ReasonInsufficientFunds   Reason = "insufficient_funds"
	// ReasonNetworkOrSystemError covers failures where no money moved;
	// retrying is safe.
	ReasonNetworkOrSystemError Reason = "network_or_system_error"
	// ReasonPartialInconsistency marks the gap where a debit succeeded but
	// the matching record write failed. Requires manual reconciliation, not
	// a blind retry.
	ReasonPartialInconsistency Reason = "partial_settlement_inconsistency"
)

// Outcome is the tagged result of a settlement attempt.
type Outcome struct {
	Status    Status
	Reason    Reason // set when Status == StatusFailed
	ClaimCode string // set when Status == StatusPendingClaim
	Reference string // transfer record reference, when this service created it
	Quote     *fee.Quote
	Err       error
}

// RetrySafe reports whether the caller may retry without risking a double
// debit. Only failures where no money moved are retry safe.
func (o Outcome) RetrySafe() bool {
	return o.Status == StatusFailed && o.Reason != ReasonPartialInconsistency
}

func completed(reference string, quote *fee.Quote) Outcome {
	return Outcome{Status: StatusCompleted, Reference: reference, Quote: quote}
}

func pendingClaim(code string, quote *fee.Quote) Outcome {
	return Outcome{Status: StatusPendingClaim, ClaimCode: code, Quote: quote}
}

func failed(reason Reason, err error) Outcome {
	return Outcome{Status: StatusFailed, Reason: reason, Err: err}
}
