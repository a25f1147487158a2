package handlers

import (
	"errors"

	"moneyflow/internal/models"
	"moneyflow/internal/repositories"
	"moneyflow/internal/services/withdrawal"
	"moneyflow/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// WithdrawalHandler exposes the agent cash-out endpoint.
type WithdrawalHandler struct {
	service *withdrawal.Service
}

// NewWithdrawalHandler creates a new WithdrawalHandler.
func NewWithdrawalHandler(s *withdrawal.Service) *WithdrawalHandler {
	return &WithdrawalHandler{service: s}
}

// Withdraw handles POST /api/withdrawals requests. Agent only.
func (h *WithdrawalHandler) Withdraw(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var req struct {
		UserID uint    `json:"user_id"`
		Amount float64 `json:"amount"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request")
	}

	record, err := h.service.Withdraw(c.Context(), claims.UserID, req.UserID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, withdrawal.ErrInvalidAmount),
			errors.Is(err, withdrawal.ErrSameAccount):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, repositories.ErrInsufficientBalance):
			return response.BadRequest(c, "user balance cannot cover amount and fee")
		case errors.Is(err, repositories.ErrWalletNotFound):
			return response.Error(c, fiber.StatusNotFound, "wallet not found")
		default:
			return response.ServerError(c, "withdrawal failed")
		}
	}
	return response.Success(c, "withdrawal completed", record)
}
