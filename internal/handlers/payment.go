package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"paycore/internal/models"
	"paycore/internal/services/payment"
	"paycore/internal/utils/response"
)

type PaymentHandler struct {
	paymentService payment.Service
}

func NewPaymentHandler(paymentSvc payment.Service) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentSvc}
}

// ProcessPayment validates the submitted card and charges the account.
// A missing account maps to 404; every other domain failure maps to 400.
func (h *PaymentHandler) ProcessPayment(c *fiber.Ctx) error {
	var req models.PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	if req.AccountID == "" {
		return response.BadRequest(c, "account_id is required")
	}

	receipt, err := h.paymentService.Pay(c.Context(), req.Card, req.AccountID, req.Amount, req.Description)
	if err != nil {
		if errors.Is(err, payment.ErrAccountNotFound) {
			return response.NotFound(c, err.Error())
		}
		return response.BadRequest(c, err.Error())
	}

	return response.Success(c, "Payment successful", receipt)
}
