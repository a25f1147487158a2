package fee

// The pricing table and the commission-split table are kept as two separate,
// independently consulted tables. The pricing table is what the sender is
// charged at transfer time; the split table is what commission reporting
// attributes to the agent and to the platform. The values diverge on purpose
// and must not be unified without a product decision.

// transferPricing is the caller-facing fee table, keyed by sender role and
// transfer scope. Fractions of the transfer amount.
var transferPricing = map[Role]map[Scope]float64{
	RoleAgent: {
		ScopeNational:      0.01, // 1%
		ScopeInternational: 0.02, // 2%
	},
	RoleUser: {
		ScopeNational:      0.02, // 2%
		ScopeInternational: 0.05, // 5%
	},
}

// commissionSplits is the reporting split table, keyed by operation type.
var commissionSplits = map[OperationType]Split{
	OperationTransfer: {
		Agent:     0.01,  // 1% of transfer amount
		MoneyFlow: 0.055, // 5.5% of transfer amount
	},
	OperationWithdrawal: {
		Agent:     0.005, // 0.5% of withdrawal amount
		MoneyFlow: 0.01,  // 1% of withdrawal amount
	},
}

// TransferPricingRate returns the fee rate the sender is charged for a
// transfer, given their role and whether the transfer crosses borders.
func TransferPricingRate(role Role, scope Scope) float64 {
	rates, ok := transferPricing[role]
	if !ok {
		rates = transferPricing[RoleUser]
	}
	return rates[scope]
}

// CommissionSplitRate returns the agent/platform revenue split applied when
// reporting commissions for the given operation type.
func CommissionSplitRate(op OperationType) Split {
	return commissionSplits[op]
}

// ScopeFor classifies a transfer as national or international from the
// sender and recipient countries.
func ScopeFor(senderCountry, recipientCountry string) Scope {
	if senderCountry == recipientCountry {
		return ScopeNational
	}
	return ScopeInternational
}
