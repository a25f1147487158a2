package handlers

import (
	"context"
	"time"

	"moneyflow/internal/models"
	"moneyflow/internal/services/commission"
	"moneyflow/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// Ledger fetches an agent's historical operation records.
type Ledger interface {
	LedgerRecordsSince(ctx context.Context, agentID uint, since time.Time, opType string) ([]models.Transaction, error)
}

// CommissionHandler exposes the commission summary endpoint.
type CommissionHandler struct {
	ledger     Ledger
	aggregator *commission.Aggregator
}

// NewCommissionHandler creates a new CommissionHandler.
func NewCommissionHandler(ledger Ledger, agg *commission.Aggregator) *CommissionHandler {
	return &CommissionHandler{ledger: ledger, aggregator: agg}
}

// Summary handles GET /api/commissions/summary requests. Agent only. The
// optional since parameter (YYYY-MM-DD) defaults to the start of the current
// month.
func (h *CommissionHandler) Summary(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	since := monthStart(time.Now().UTC())
	if raw := c.Query("since"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return response.BadRequest(c, "invalid since date, expected YYYY-MM-DD")
		}
		since = parsed
	}

	transfers, err := h.ledger.LedgerRecordsSince(c.Context(), claims.UserID, since, models.TransactionTypeTransfer)
	if err != nil {
		return response.ServerError(c, "failed to load transfer records")
	}
	withdrawals, err := h.ledger.LedgerRecordsSince(c.Context(), claims.UserID, since, models.TransactionTypeWithdrawal)
	if err != nil {
		return response.ServerError(c, "failed to load withdrawal records")
	}

	summary := h.aggregator.Aggregate(toRecords(transfers), toRecords(withdrawals))
	return response.Success(c, "commission summary", fiber.Map{
		"since":   since.Format("2006-01-02"),
		"summary": summary,
	})
}

func toRecords(rows []models.Transaction) []commission.Record {
	records := make([]commission.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, commission.Record{
			Amount:    row.Amount,
			Fee:       row.Fee,
			Status:    row.Status,
			CreatedAt: row.CreatedAt,
		})
	}
	return records
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
