/*
Package settlement commits a transfer's financial effects as one logical unit
and reports the result as a tagged outcome.

The flow is a fixed sequence of states:

	validate input
	  -> attempt the platform's atomic settlement operation
	       -> Completed
	       -> recipient unresolvable: create pending claim, debit sender
	            -> PendingClaim(code)
	       -> any other error: fallback (direct debit, then record creation)
	            -> Completed, or Failed

Failure reasons distinguish whether money moved. NetworkOrSystemError means
nothing was debited and a retry is safe. PartialSettlementInconsistency means
the debit landed but the matching record write did not; the caller must route
that to manual reconciliation instead of retrying.

Merchant bookkeeping and notification dispatch run only after a terminal
success state, inside their own error boundary. Their failures are recorded
for observability and never propagate to the settlement result.

Usage:

	svc := settlement.NewService(feeCalc, balances, processor, store,
	    accounts, merchants, notifier, nil)

	outcome := svc.Settle(ctx, settlement.Request{
	    SenderID:            senderID,
	    SenderRole:          fee.RoleUser,
	    SenderCountry:       "CM",
	    RecipientIdentifier: "+237650000001",
	    RecipientFullName:   "Jeanne M.",
	    RecipientCountry:    "CM",
	    Amount:              5000,
	})

	switch outcome.Status {
	case settlement.StatusCompleted:
	    // show confirmation
	case settlement.StatusPendingClaim:
	    // show outcome.ClaimCode to share with the recipient
	case settlement.StatusFailed:
	    // outcome.RetrySafe() decides retry vs. support escalation
	}
*/
package settlement
