package commission

import (
	"time"
)

// Record is one historical operation's contribution to commission totals.
// Records come from the external store and may be inconsistent; the
// aggregator validates them rather than trusting them.
type Record struct {
	Amount    float64   `json:"amount"`
	Fee       float64   `json:"fee"`
	Status    string    `json:"status"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Summary is the aggregate commission report for one agent/platform period.
type Summary struct {
	AgentTransferCommission      float64 `json:"agent_transfer_commission"`
	AgentWithdrawalCommission    float64 `json:"agent_withdrawal_commission"`
	AgentTotal                   float64 `json:"agent_total"`
	EnterpriseTransferCommission float64 `json:"enterprise_transfer_commission"`
	EnterpriseWithdrawalCommission float64 `json:"enterprise_withdrawal_commission"`
	EnterpriseTotal              float64 `json:"enterprise_total"`
}

// Add sums two summaries field by field. Aggregating two partitions and
// adding their summaries is equivalent to aggregating everything at once.
func (s Summary) Add(other Summary) Summary {
	return Summary{
		AgentTransferCommission:        s.AgentTransferCommission + other.AgentTransferCommission,
		AgentWithdrawalCommission:      s.AgentWithdrawalCommission + other.AgentWithdrawalCommission,
		AgentTotal:                     s.AgentTotal + other.AgentTotal,
		EnterpriseTransferCommission:   s.EnterpriseTransferCommission + other.EnterpriseTransferCommission,
		EnterpriseWithdrawalCommission: s.EnterpriseWithdrawalCommission + other.EnterpriseWithdrawalCommission,
		EnterpriseTotal:                s.EnterpriseTotal + other.EnterpriseTotal,
	}
}
