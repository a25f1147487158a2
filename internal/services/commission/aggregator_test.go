package commission

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func completed(amount float64) Record {
	return Record{Amount: amount, Status: "completed"}
}

func TestAggregate_EmptyInput(t *testing.T) {
	agg := NewAggregator()

	summary := agg.Aggregate(nil, nil)
	assert.Equal(t, Summary{}, summary)

	summary = agg.Aggregate([]Record{}, []Record{})
	assert.Equal(t, Summary{}, summary)
}

func TestAggregate_CommissionTotals(t *testing.T) {
	agg := NewAggregator()

	transfers := []Record{completed(10000), completed(5000)}
	withdrawals := []Record{completed(20000)}

	summary := agg.Aggregate(transfers, withdrawals)

	// Transfer split: agent 1%, platform 5.5%. Withdrawal: agent 0.5%, platform 1%.
	assert.InDelta(t, 15000*0.01, summary.AgentTransferCommission, 1e-9)
	assert.InDelta(t, 20000*0.005, summary.AgentWithdrawalCommission, 1e-9)
	assert.InDelta(t, 15000*0.055, summary.EnterpriseTransferCommission, 1e-9)
	assert.InDelta(t, 20000*0.01, summary.EnterpriseWithdrawalCommission, 1e-9)

	assert.InDelta(t, summary.AgentTransferCommission+summary.AgentWithdrawalCommission,
		summary.AgentTotal, 1e-9)
	assert.InDelta(t, summary.EnterpriseTransferCommission+summary.EnterpriseWithdrawalCommission,
		summary.EnterpriseTotal, 1e-9)
}

func TestAggregate_SkipsMalformedRecords(t *testing.T) {
	agg := NewAggregator()

	transfers := []Record{
		{Amount: math.NaN(), Status: "completed"}, // non-numeric column in the store
		{Amount: math.Inf(1), Status: "completed"},
		{Amount: -500, Status: "completed"},
		{Amount: 0, Status: "completed"},
		completed(1000),
	}

	assert.NotPanics(t, func() {
		summary := agg.Aggregate(transfers, nil)
		assert.InDelta(t, 1000*0.01, summary.AgentTransferCommission, 1e-9)
	})
}

func TestAggregate_OnlyCompletedRecordsCount(t *testing.T) {
	agg := NewAggregator()

	withdrawals := []Record{
		completed(10000),
		{Amount: 4000, Status: "pending"},
		{Amount: 3000, Status: "failed"},
	}

	summary := agg.Aggregate(nil, withdrawals)
	assert.InDelta(t, 10000*0.005, summary.AgentWithdrawalCommission, 1e-9)
	assert.InDelta(t, 10000*0.01, summary.EnterpriseWithdrawalCommission, 1e-9)
}

func TestAggregate_AssociativeUnderPartitioning(t *testing.T) {
	agg := NewAggregator()

	transfers := []Record{completed(1200), completed(3400), completed(560), completed(78000)}
	withdrawals := []Record{completed(900), completed(4100), completed(25000)}

	whole := agg.Aggregate(transfers, withdrawals)
	left := agg.Aggregate(transfers[:2], withdrawals[:1])
	right := agg.Aggregate(transfers[2:], withdrawals[1:])
	combined := left.Add(right)

	assert.InDelta(t, whole.AgentTransferCommission, combined.AgentTransferCommission, 1e-9)
	assert.InDelta(t, whole.AgentWithdrawalCommission, combined.AgentWithdrawalCommission, 1e-9)
	assert.InDelta(t, whole.AgentTotal, combined.AgentTotal, 1e-9)
	assert.InDelta(t, whole.EnterpriseTransferCommission, combined.EnterpriseTransferCommission, 1e-9)
	assert.InDelta(t, whole.EnterpriseWithdrawalCommission, combined.EnterpriseWithdrawalCommission, 1e-9)
	assert.InDelta(t, whole.EnterpriseTotal, combined.EnterpriseTotal, 1e-9)
}

func TestAggregate_MonotonicAsRecordsAreAdded(t *testing.T) {
	agg := NewAggregator()

	base := agg.Aggregate([]Record{completed(1000)}, nil)
	grown := agg.Aggregate([]Record{completed(1000), completed(2000)}, nil)

	assert.GreaterOrEqual(t, grown.AgentTotal, base.AgentTotal)
	assert.GreaterOrEqual(t, grown.EnterpriseTotal, base.EnterpriseTotal)
}
