// Package fee computes transfer pricing and agent/platform commission splits.
// It is pure computation: no I/O, no ambient state, fully determined by its
// inputs.
package fee

// Calculator prices transfers and decomposes fees into commission shares.
type Calculator struct{}

// NewCalculator creates a new fee calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// ComputeFee prices a transfer of amount (base currency units) from a sender
// with the given role and country to a recipient country. The fee charged to
// the sender comes from the pricing table; the agent/platform decomposition
// comes from the commission-split table. Both views are exposed because
// transfer pricing and commission reporting consume different ones.
func (c *Calculator) ComputeFee(amount float64, senderCountry, recipientCountry string, role Role) (*Quote, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	rate := TransferPricingRate(role, ScopeFor(senderCountry, recipientCountry))
	split := CommissionSplitRate(OperationTransfer)

	feeAmount := amount * rate
	return &Quote{
		Amount:              amount,
		Rate:                rate,
		FeeAmount:           feeAmount,
		Total:               amount + feeAmount,
		AgentCommission:     amount * split.Agent,
		MoneyFlowCommission: amount * split.MoneyFlow,
	}, nil
}
