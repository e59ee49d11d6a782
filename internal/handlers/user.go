package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"paycore/internal/models"
	"paycore/internal/services/user"
	"paycore/internal/utils/response"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userSvc user.Service) *UserHandler {
	return &UserHandler{userService: userSvc}
}

func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var input models.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	created, err := h.userService.Create(c.Context(), input)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.Created(c, "User created", created)
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	found, err := h.userService.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return response.NotFound(c, err.Error())
		}
		return response.ServerError(c, err.Error())
	}
	return response.Success(c, "User found", found)
}

func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userService.List(c.Context())
	if err != nil {
		return response.ServerError(c, err.Error())
	}
	return response.Success(c, "Users listed", users)
}

func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	var input models.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	updated, err := h.userService.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return response.NotFound(c, err.Error())
		}
		return response.BadRequest(c, err.Error())
	}
	return response.Success(c, "User updated", updated)
}

func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.userService.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return response.NotFound(c, err.Error())
		}
		return response.ServerError(c, err.Error())
	}
	return response.Success(c, "User deleted", nil)
}
