package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AhmedEssamEsmail/SwapTool/internal/api/dto"
	"github.com/AhmedEssamEsmail/SwapTool/internal/service"
	"github.com/AhmedEssamEsmail/SwapTool/pkg/util"
)

// SettingsHandler manages workflow setting endpoints.
type SettingsHandler struct {
	service *service.SettingsService
}

// NewSettingsHandler constructs handler.
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: settingsService}
}

// GetAutoApprove GET /settings/auto-approve.
func (h *SettingsHandler) GetAutoApprove(c *fiber.Ctx) error {
	enabled, err := h.service.AutoApproveEnabled(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.AutoApproveResponse{Enabled: enabled}})
}

// SetAutoApprove PUT /settings/auto-approve.
func (h *SettingsHandler) SetAutoApprove(c *fiber.Ctx) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.UpdateAutoApproveRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.Enabled == nil {
		return util.NewValidationError("enabled required", nil)
	}

	if err := h.service.SetAutoApprove(c.UserContext(), principal.Actor(), *req.Enabled); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.AutoApproveResponse{Enabled: *req.Enabled}})
}
