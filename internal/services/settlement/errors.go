package settlement

import "errors"

// Contract errors. ErrRecipientNotFound is returned by TransferProcessor
// implementations when the recipient identifier resolves to no account; it
// routes the settlement to the pending-claim path rather than failing it.
var (
	ErrRecipientNotFound  = errors.New("recipient not found")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrIncompleteRecipient = errors.New("incomplete recipient details")
)
