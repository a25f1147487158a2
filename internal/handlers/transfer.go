package handlers

import (
	"moneyflow/internal/models"
	"moneyflow/internal/services/fee"
	"moneyflow/internal/services/settlement"
	"moneyflow/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// TransferHandler exposes the transfer settlement endpoint.
type TransferHandler struct {
	service settlement.Service
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(s settlement.Service) *TransferHandler { return &TransferHandler{service: s} }

// Transfer handles POST /api/transfers requests.
func (h *TransferHandler) Transfer(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var req struct {
		RecipientIdentifier string  `json:"recipient_identifier"`
		RecipientFullName   string  `json:"recipient_full_name"`
		RecipientCountry    string  `json:"recipient_country"`
		Amount              float64 `json:"amount"`
		Description         string  `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request")
	}

	outcome := h.service.Settle(c.Context(), settlement.Request{
		SenderID:            claims.UserID,
		SenderRole:          fee.Role(claims.Role),
		SenderCountry:       claims.Country,
		RecipientIdentifier: req.RecipientIdentifier,
		RecipientFullName:   req.RecipientFullName,
		RecipientCountry:    req.RecipientCountry,
		Amount:              req.Amount,
		Description:         req.Description,
	})

	switch outcome.Status {
	case settlement.StatusCompleted:
		return response.Success(c, "transfer completed", fiber.Map{
			"reference": outcome.Reference,
			"quote":     outcome.Quote,
		})
	case settlement.StatusPendingClaim:
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
			"message": "recipient is not on the platform yet; share the claim code with them",
			"data": fiber.Map{
				"claim_code": outcome.ClaimCode,
				"quote":      outcome.Quote,
			},
		})
	default:
		return failedOutcome(c, outcome)
	}
}

// failedOutcome maps a failed settlement to an HTTP response. Retry safety is
// surfaced so clients know whether resubmitting can double-debit.
func failedOutcome(c *fiber.Ctx, outcome settlement.Outcome) error {
	status := fiber.StatusBadRequest
	message := "transfer failed"
	switch outcome.Reason {
	case settlement.ReasonInvalidAmount:
		message = "amount must be greater than zero"
	case settlement.ReasonIncompleteRecipient:
		message = "recipient identifier, full name and country are required"
	case settlement.ReasonInsufficientFunds:
		message = "insufficient balance to cover amount and fee"
	case settlement.ReasonNetworkOrSystemError:
		status = fiber.StatusServiceUnavailable
		message = "transfer could not be processed, please try again"
	case settlement.ReasonPartialInconsistency:
		status = fiber.StatusInternalServerError
		message = "transfer is in an inconsistent state, contact support before retrying"
	}
	return c.Status(status).JSON(fiber.Map{
		"error":      message,
		"reason":     outcome.Reason,
		"retry_safe": outcome.RetrySafe(),
	})
}
