package handlers

import (
	"errors"
	"strconv"

	"moneyflow/internal/models"
	"moneyflow/internal/services/fee"
	"moneyflow/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// FeeHandler exposes the fee quote endpoint.
type FeeHandler struct {
	calculator *fee.Calculator
}

// NewFeeHandler creates a new FeeHandler.
func NewFeeHandler(calc *fee.Calculator) *FeeHandler { return &FeeHandler{calculator: calc} }

// Quote handles GET /api/fees/quote requests. The quote is informational and
// creates no obligation; the same computation runs again at settlement time.
func (h *FeeHandler) Quote(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil {
		return response.BadRequest(c, "invalid amount")
	}
	recipientCountry := c.Query("recipient_country")
	if recipientCountry == "" {
		return response.BadRequest(c, "recipient_country is required")
	}

	quote, err := h.calculator.ComputeFee(amount, claims.Country, recipientCountry, fee.Role(claims.Role))
	if err != nil {
		if errors.Is(err, fee.ErrInvalidAmount) {
			return response.BadRequest(c, "amount must be greater than zero")
		}
		return response.ServerError(c, "failed to compute quote")
	}
	return response.Success(c, "fee quote", quote)
}
