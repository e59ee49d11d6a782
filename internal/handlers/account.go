package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"paycore/internal/models"
	"paycore/internal/services/account"
	"paycore/internal/utils/response"
)

type AccountHandler struct {
	accountService account.Service
}

func NewAccountHandler(accountSvc account.Service) *AccountHandler {
	return &AccountHandler{accountService: accountSvc}
}

func (h *AccountHandler) OpenAccount(c *fiber.Ctx) error {
	var input struct {
		OwnerID        string             `json:"owner_id"`
		Type           models.AccountType `json:"type"`
		InitialBalance float64            `json:"initial_balance"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if input.OwnerID == "" {
		return response.BadRequest(c, "owner_id is required")
	}

	acct, err := h.accountService.Open(c.Context(), input.OwnerID, input.Type, input.InitialBalance)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.Created(c, "Account opened", acct)
}

func (h *AccountHandler) GetAccount(c *fiber.Ctx) error {
	acct, err := h.accountService.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return response.NotFound(c, err.Error())
		}
		return response.ServerError(c, err.Error())
	}
	return response.Success(c, "Account found", acct)
}

func (h *AccountHandler) Deposit(c *fiber.Ctx) error {
	var input struct {
		Amount float64 `json:"amount"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	acct, err := h.accountService.Deposit(c.Context(), c.Params("id"), input.Amount)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return response.NotFound(c, err.Error())
		}
		return response.BadRequest(c, err.Error())
	}
	return response.Success(c, "Deposit completed", acct)
}
