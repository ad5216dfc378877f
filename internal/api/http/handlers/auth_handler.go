package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/AhmedEssamEsmail/SwapTool/internal/api/dto"
	"github.com/AhmedEssamEsmail/SwapTool/internal/service"
	"github.com/AhmedEssamEsmail/SwapTool/pkg/util"
)

// AuthHandler manages login and password endpoints.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{service: authService}
}

// Login POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return util.NewValidationError("email and password required", nil)
	}

	employee, token, expiresAt, err := h.service.Login(c.UserContext(), strings.ToLower(strings.TrimSpace(req.Email)), req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Employee:  employeeResponse(employee),
	}})
}

// ChangePassword POST /auth/password/change.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return util.NewValidationError("current_password and new_password required", nil)
	}

	if err := h.service.ChangePassword(c.UserContext(), principal.Employee.ID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"changed": true}})
}
