package fee

// Role identifies who is sending the money.
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// Scope distinguishes in-country transfers from cross-border ones.
type Scope string

const (
	ScopeNational      Scope = "national"
	ScopeInternational Scope = "international"
)

// OperationType selects the commission-split table row.
type OperationType string

const (
	OperationTransfer   OperationType = "transfer"
	OperationWithdrawal OperationType = "withdrawal"
)

// Quote is the fully computed pricing for one transfer. All amounts are in
// base currency units (XAF), no intermediate rounding is applied.
type Quote struct {
	Amount              float64 `json:"amount"`
	Rate                float64 `json:"rate"`
	FeeAmount           float64 `json:"fee_amount"`
	Total               float64 `json:"total"`
	AgentCommission     float64 `json:"agent_commission"`
	MoneyFlowCommission float64 `json:"moneyflow_commission"`
}

// Split is one row of the commission-split table: the fraction of the
// operation amount that goes to the agent and to the platform.
type Split struct {
	Agent     float64
	MoneyFlow float64
}
