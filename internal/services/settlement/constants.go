package settlement

// Balance operation types recorded with each adjustment
const (
	OpTransferDebit     = "transfer_debit"
	OpPendingClaimDebit = "pending_claim_debit"
)

// Notification content
const (
	titleTransferSent   = "Transfer sent"
	titlePendingClaim   = "Transfer pending claim"
	titlePaymentReceived = "Payment received"
)
