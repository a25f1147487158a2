package fee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeFee(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		name          string
		amount        float64
		senderCountry string
		recipCountry  string
		role          Role
		wantRate      float64
		wantFee       float64
		wantErr       error
	}{
		{
			name:          "agent national transfer",
			amount:        10000,
			senderCountry: "CM",
			recipCountry:  "CM",
			role:          RoleAgent,
			wantRate:      0.01,
			wantFee:       100,
		},
		{
			name:          "agent international transfer",
			amount:        10000,
			senderCountry: "CM",
			recipCountry:  "GA",
			role:          RoleAgent,
			wantRate:      0.02,
			wantFee:       200,
		},
		{
			name:          "user national transfer",
			amount:        5000,
			senderCountry: "CM",
			recipCountry:  "CM",
			role:          RoleUser,
			wantRate:      0.02,
			wantFee:       100,
		},
		{
			name:          "user international transfer",
			amount:        5000,
			senderCountry: "CM",
			recipCountry:  "FR",
			role:          RoleUser,
			wantRate:      0.05,
			wantFee:       250,
		},
		{
			name:          "zero amount rejected",
			amount:        0,
			senderCountry: "CM",
			recipCountry:  "CM",
			role:          RoleUser,
			wantErr:       ErrInvalidAmount,
		},
		{
			name:          "negative amount rejected",
			amount:        -50,
			senderCountry: "CM",
			recipCountry:  "CM",
			role:          RoleAgent,
			wantErr:       ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := calc.ComputeFee(tt.amount, tt.senderCountry, tt.recipCountry, tt.role)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, quote)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantRate, quote.Rate)
			assert.InDelta(t, tt.wantFee, quote.FeeAmount, 1e-9)
			assert.InDelta(t, tt.amount+tt.wantFee, quote.Total, 1e-9)
		})
	}
}

func TestComputeFee_CommissionDecomposition(t *testing.T) {
	calc := NewCalculator()

	quote, err := calc.ComputeFee(20000, "CM", "CM", RoleAgent)
	assert.NoError(t, err)

	split := CommissionSplitRate(OperationTransfer)
	assert.InDelta(t, 20000*split.Agent, quote.AgentCommission, 1e-9)
	assert.InDelta(t, 20000*split.MoneyFlow, quote.MoneyFlowCommission, 1e-9)

	// Agent and platform shares reconcile against the split table's total.
	splitTotal := 20000 * (split.Agent + split.MoneyFlow)
	assert.InDelta(t, splitTotal, quote.AgentCommission+quote.MoneyFlowCommission, 1e-9)
}

func TestTransferPricingRate_NationalDiffersFromInternational(t *testing.T) {
	for _, role := range []Role{RoleUser, RoleAgent} {
		national := TransferPricingRate(role, ScopeNational)
		international := TransferPricingRate(role, ScopeInternational)
		assert.NotEqual(t, national, international, "role %s", role)
		assert.Greater(t, national, 0.0)
		assert.Greater(t, international, 0.0)
	}
}

func TestTransferPricingRate_UnknownRoleFallsBackToUser(t *testing.T) {
	assert.Equal(t,
		TransferPricingRate(RoleUser, ScopeNational),
		TransferPricingRate(Role("merchant"), ScopeNational))
}

func TestCommissionSplitRate_TablesStayDistinct(t *testing.T) {
	// The pricing table and the split table encode different values; the
	// calculator must never derive one from the other.
	transferSplit := CommissionSplitRate(OperationTransfer)
	withdrawalSplit := CommissionSplitRate(OperationWithdrawal)

	assert.Equal(t, 0.01, transferSplit.Agent)
	assert.Equal(t, 0.055, transferSplit.MoneyFlow)
	assert.Equal(t, 0.005, withdrawalSplit.Agent)
	assert.Equal(t, 0.01, withdrawalSplit.MoneyFlow)

	assert.NotEqual(t, transferSplit, withdrawalSplit)
}

func TestScopeFor(t *testing.T) {
	assert.Equal(t, ScopeNational, ScopeFor("CM", "CM"))
	assert.Equal(t, ScopeInternational, ScopeFor("CM", "SN"))
}
