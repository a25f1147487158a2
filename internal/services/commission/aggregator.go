// Package commission derives agent and platform commission totals from
// historical transfer and withdrawal records. Each aggregation is an
// independent, deterministic fold over its inputs; there is no shared state
// between calls.
package commission

import (
	"math"

	"moneyflow/internal/services/fee"
)

// Aggregator computes commission summaries through the split rate table.
type Aggregator struct{}

// NewAggregator creates a new commission aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Aggregate folds transfer and withdrawal records into a Summary. The split
// rate is applied to the sum of valid amounts, not per record; these are
// equivalent for a flat rate and the per-sum form must be kept if rates ever
// become tiered. Malformed records are skipped, never raised: historical data
// from the store can be inconsistent and a report must degrade gracefully.
// Empty input yields an all-zero summary, the normal state for a new period.
func (a *Aggregator) Aggregate(transfers, withdrawals []Record) Summary {
	transferVolume := completedVolume(transfers)
	withdrawalVolume := completedVolume(withdrawals)

	transferSplit := fee.CommissionSplitRate(fee.OperationTransfer)
	withdrawalSplit := fee.CommissionSplitRate(fee.OperationWithdrawal)

	s := Summary{
		AgentTransferCommission:        transferVolume * transferSplit.Agent,
		AgentWithdrawalCommission:      withdrawalVolume * withdrawalSplit.Agent,
		EnterpriseTransferCommission:   transferVolume * transferSplit.MoneyFlow,
		EnterpriseWithdrawalCommission: withdrawalVolume * withdrawalSplit.MoneyFlow,
	}
	s.AgentTotal = s.AgentTransferCommission + s.AgentWithdrawalCommission
	s.EnterpriseTotal = s.EnterpriseTransferCommission + s.EnterpriseWithdrawalCommission
	return s
}

func completedVolume(records []Record) float64 {
	var total float64
	for _, r := range records {
		if !validAmount(r.Amount) {
			continue
		}
		if r.Status != "completed" {
			continue
		}
		total += r.Amount
	}
	return total
}

// validAmount filters out the malformed amounts the store can hand back:
// NaN/Inf from bad numeric columns and non-positive values.
func validAmount(amount float64) bool {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return false
	}
	return amount > 0
}
