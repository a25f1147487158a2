package handlers

import (
	"errors"

	"moneyflow/internal/models"
	"moneyflow/internal/services/deposit"
	"moneyflow/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// DepositHandler exposes the card deposit endpoint.
type DepositHandler struct {
	service *deposit.Service
}

// NewDepositHandler creates a new DepositHandler.
func NewDepositHandler(s *deposit.Service) *DepositHandler { return &DepositHandler{service: s} }

// Deposit handles POST /api/deposits requests.
func (h *DepositHandler) Deposit(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var req struct {
		Amount    float64 `json:"amount"`
		CardToken string  `json:"card_token"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request")
	}

	record, err := h.service.Deposit(c.Context(), claims.UserID, req.Amount, req.CardToken)
	if err != nil {
		switch {
		case errors.Is(err, deposit.ErrInvalidAmount),
			errors.Is(err, deposit.ErrInvalidToken):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, deposit.ErrChargeFailed):
			return response.Error(c, fiber.StatusPaymentRequired, "card charge failed")
		default:
			return response.ServerError(c, "deposit failed")
		}
	}
	return response.Success(c, "deposit completed", record)
}
