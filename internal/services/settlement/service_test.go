package settlement

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"moneyflow/internal/models"
	"moneyflow/internal/services/fee"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBalances struct {
	mock.Mock
}

func (m *MockBalances) GetBalance(ctx context.Context, userID uint) (float64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockBalances) AdjustBalance(ctx context.Context, userID uint, delta float64, operationType string) (float64, error) {
	args := m.Called(ctx, userID, delta, operationType)
	return args.Get(0).(float64), args.Error(1)
}

type MockProcessor struct {
	mock.Mock
}

func (m *MockProcessor) ProcessTransfer(ctx context.Context, senderID uint, recipientIdentifier string, amount, feeAmount float64) error {
	args := m.Called(ctx, senderID, recipientIdentifier, amount, feeAmount)
	return args.Error(0)
}

type MockStore struct {
	mock.Mock
}

func (m *MockStore) CreateTransfer(ctx context.Context, tx *models.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockStore) CreatePendingClaim(ctx context.Context, claim *models.PendingTransfer) error {
	args := m.Called(ctx, claim)
	return args.Error(0)
}

type MockAccounts struct {
	mock.Mock
}

func (m *MockAccounts) ResolveByIdentifier(ctx context.Context, identifier string) (*models.Account, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

type MockMerchants struct {
	mock.Mock
}

func (m *MockMerchants) RecordPayment(ctx context.Context, payerID, merchantID uint, amount float64, description string) error {
	args := m.Called(ctx, payerID, merchantID, amount, description)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Dispatch(ctx context.Context, recipientIDs []uint, title, message, priority string) error {
	args := m.Called(ctx, recipientIDs, title, message, priority)
	return args.Error(0)
}

type fixture struct {
	balances  *MockBalances
	processor *MockProcessor
	store     *MockStore
	accounts  *MockAccounts
	merchants *MockMerchants
	notifier  *MockNotifier
	svc       Service
}

func newFixture() *fixture {
	f := &fixture{
		balances:  new(MockBalances),
		processor: new(MockProcessor),
		store:     new(MockStore),
		accounts:  new(MockAccounts),
		merchants: new(MockMerchants),
		notifier:  new(MockNotifier),
	}
	f.svc = NewService(fee.NewCalculator(), f.balances, f.processor, f.store,
		f.accounts, f.merchants, f.notifier, nil)
	return f
}

func userRequest(amount float64) Request {
	return Request{
		SenderID:            1,
		SenderRole:          fee.RoleUser,
		SenderCountry:       "CM",
		RecipientIdentifier: "+237650000001",
		RecipientFullName:   "Jeanne M.",
		RecipientCountry:    "CM",
		Amount:              amount,
		Description:         "rent share",
	}
}

var claimCodePattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)

func TestSettle_IncompleteRecipient(t *testing.T) {
	f := newFixture()

	req := userRequest(1000)
	req.RecipientIdentifier = ""

	outcome := f.svc.Settle(context.Background(), req)

	assert.Equal(t, StatusFailed, outcome.Status)
	assert.Equal(t, ReasonIncompleteRecipient, outcome.Reason)
	f.balances.AssertNotCalled(t, "GetBalance", mock.Anything, mock.Anything)
	f.balances.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSettle_InvalidAmount(t *testing.T) {
	f := newFixture()

	outcome := f.svc.Settle(context.Background(), userRequest(0))

	assert.Equal(t, StatusFailed, outcome.Status)
	assert.Equal(t, ReasonInvalidAmount, outcome.Reason)
	assert.ErrorIs(t, outcome.Err, fee.ErrInvalidAmount)
	f.balances.AssertNotCalled(t, "GetBalance", mock.Anything, mock.Anything)
}

func TestSettle_InsufficientFunds(t *testing.T) {
	f := newFixture()

	// user national 2%: total = 1000 + 20
	f.balances.On("GetBalance", mock.Anything, uint(1)).Return(float64(1000), nil)

	outcome := f.svc.Settle(context.Background(), userRequest(1000))

	assert.Equal(t, StatusFailed, outcome.Status)
	assert.Equal(t, ReasonInsufficientFunds, outcome.Reason)
	assert.True(t, outcome.RetrySafe())

	// No money may move on a rejected settlement.
	f.balances.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.store.AssertNotCalled(t, "CreateTransfer", mock.Anything, mock.Anything)
	f.processor.AssertNotCalled(t, "ProcessTransfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSettle_AtomicPathCompletes(t *testing.T) {
	f := newFixture()

	// Agent national transfer of 10000: rate 1%, fee 100, total 10100.
	req := userRequest(10000)
	req.SenderRole = fee.RoleAgent

	f.balances.On("GetBalance", mock.Anything, uint(1)).Return(float64(20000), nil)
	f.processor.On("ProcessTransfer", mock.Anything, uint(1), req.RecipientIdentifier, float64(10000), float64(100)).Return(nil)
	f.accounts.On("ResolveByIdentifier", mock.Anything, req.RecipientIdentifier).
		Return(&models.Account{ID: 2, Role: models.RoleUser}, nil)
	f.notifier.On("Dispatch", mock.Anything, []uint{1, 2}, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	outcome := f.svc.Settle(context.Background(), req)

	assert.Equal(t, StatusCompleted, outcome.Status)
	assert.InDelta(t, 100, outcome.Quote.FeeAmount, 1e-9)
	assert.InDelta(t, 10100, outcome.Quote.Total, 1e-9)

	f.processor.AssertExpectations(t)
	f.notifier.AssertExpectations(t)
	f.balances.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSettle_RecipientNotFoundCreatesPendingClaim(t *testing.T) {
	f := newFixture()

	// User national transfer of 5000: fee 100, total 5100.
	req := userRequest(5000)

	f.balances.On("GetBalance", mock.Anything, uint(1)).Return(float64(10000), nil)
	f.processor.On("ProcessTransfer", mock.Anything, uint(1), req.RecipientIdentifier, float64(5000), float64(100)).
		Return(ErrRecipientNotFound)
	f.store.On("CreatePendingClaim", mock.Anything, mock.MatchedBy(func(claim *models.PendingTransfer) bool {
		return claim.SenderID == 1 && claim.Amount == 5000 && claim.ClaimCodeHash != ""
	})).Return(nil)
	f.balances.On("AdjustBalance", mock.Anything, uint(1), float64(-5100), OpPendingClaimDebit).
		Return(float64(4900), nil)
	f.accounts.On("ResolveByIdentifier", mock.Anything, req.RecipientIdentifier).Return(nil, nil)
	f.notifier.On("Dispatch", mock.Anything, []uint{1}, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	outcome := f.svc.Settle(context.Background(), req)

	assert.Equal(t, StatusPendingClaim, outcome.Status)
	assert.Regexp(t, claimCodePattern, outcome.ClaimCode)

	// The sender is debited exactly once, by amount + fee.
	f.balances.AssertNumberOfCalls(t, "AdjustBalance", 1)
	f.store.AssertExpectations(t)
}

func TestSettle_PendingClaimDebitFailureIsInconsistency(t *testing.T) {
	f := newFixture()

	f.balances.On("GetBalance", mock.Anything, uint(1)).Return(float64(10000), nil)
	f.processor.On("ProcessTransfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(ErrRecipientNotFound)
	f.store.On("CreatePendingClaim", mock.Anything, mock.Anything).Return(nil)
	f.balances.On("AdjustBalance", mock.Anything, uint(1), mock.Anything, OpPendingClaimDebit).
		Return(float64(0), errors.New("connection reset"))

	outcome := f.svc.Settle(context.Background(), userRequest(5000))

	assert.Equal(t, StatusFailed, outcome.Status)
	assert.Equal(t, ReasonPartialInconsistency, outcome.Reason)
	assert.False(t, outcome.RetrySafe())
}

func TestSettle_FallbackOutcomes(t *testing.T) {
	tests := []struct {
		name       string
		setupMock  func(f *fixture)
		wantReason Reason
		retrySafe  bool
	}{
		{
			name: "debit fails, no money moved",
			setupMock: func(f *fixture) {
				f.balances.On("AdjustBalance", mock.Anything, uint(1), float64(-1020), OpTransferDebit).
					Return(float64(0), errors.New("timeout"))
			},
			wantReason: ReasonNetworkOrSystemError,
			retrySafe:  true,
		},
		{
			name: "debit succeeds, record creation fails",
			setupMock: func(f *fixture) {
				f.balances.On("AdjustBalance", mock.Anything, uint(1), float64(-1020), OpTransferDebit).
					Return(float64(8980), nil)
				f.store.On("CreateTransfer", mock.Anything, mock.Anything).
					Return(errors.New("insert failed"))
			},
			wantReason: ReasonPartialInconsistency,
			retrySafe:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.balances.On("GetBalance", mock.Anything, uint(1)).Return(float64(10000), nil)
			f.processor.On("ProcessTransfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
				Return(errors.New("rpc unavailable"))
			tt.setupMock(f)

			outcome := f.svc.Settle(context.Background(), userRequest(1000))

			assert.Equal(t, StatusFailed, outcome.Status)
			assert.Equal(t, tt.wantReason, outcome.Reason)
			assert.Equal(t, tt.retrySafe, outcome.RetrySafe())
			f.balances.AssertExpectations(t)
		})
	}
}

func TestSettle_FallbackCompletes(t *testing.T) {
	f := newFixture()

	f.balances.On("GetBalance", mock.Anything, uint(1)).Return(float64(10000), nil)
	f.processor.On("ProcessTransfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("rpc unavailable"))
	f.balances.On("AdjustBalance", mock.Anything, uint(1), float64(-1020), OpTransferDebit).
		Return(float64(8980), nil)
	f.store.On("CreateTransfer", mock.Anything, mock.MatchedBy(func(tx *models.Transaction) bool {
		return tx.Status == models.TransactionStatusCompleted &&
			tx.Amount == 1000 && tx.Fee == 20 && tx.Reference != ""
	})).Return(nil)
	f.accounts.On("ResolveByIdentifier", mock.Anything, mock.Anything).Return(nil, nil)
	f.notifier.On("Dispatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	outcome := f.svc.Settle(context.Background(), userRequest(1000))

	assert.Equal(t, StatusCompleted, outcome.Status)
	assert.NotEmpty(t, outcome.Reference)
	f.store.AssertExpectations(t)
}

func TestSettle_MerchantRecipientGetsBookkeepingEntry(t *testing.T) {
	f := newFixture()

	req := userRequest(2000)

	f.balances.On("GetBalance", mock.Anything, uint(1)).Return(float64(10000), nil)
	f.processor.On("ProcessTransfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.accounts.On("ResolveByIdentifier", mock.Anything, req.RecipientIdentifier).
		Return(&models.Account{ID: 7, Role: models.RoleMerchant}, nil)
	f.merchants.On("RecordPayment", mock.Anything, uint(1), uint(7), float64(2000), "rent share").Return(nil)
	f.notifier.On("Dispatch", mock.Anything, []uint{1, 7}, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	outcome := f.svc.Settle(context.Background(), req)

	assert.Equal(t, StatusCompleted, outcome.Status)
	f.merchants.AssertExpectations(t)
}

func TestSettle_SideEffectFailuresDoNotChangeOutcome(t *testing.T) {
	f := newFixture()

	f.balances.On("GetBalance", mock.Anything, uint(1)).Return(float64(10000), nil)
	f.processor.On("ProcessTransfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.accounts.On("ResolveByIdentifier", mock.Anything, mock.Anything).
		Return(&models.Account{ID: 7, Role: models.RoleMerchant}, nil)
	f.merchants.On("RecordPayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("bookkeeping down"))
	f.notifier.On("Dispatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("broker down"))

	outcome := f.svc.Settle(context.Background(), userRequest(2000))

	// The financial transaction already committed; side effects are observational.
	assert.Equal(t, StatusCompleted, outcome.Status)
	assert.Nil(t, outcome.Err)
}
