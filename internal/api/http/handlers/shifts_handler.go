package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/AhmedEssamEsmail/SwapTool/internal/api/dto"
	"github.com/AhmedEssamEsmail/SwapTool/internal/domain"
	"github.com/AhmedEssamEsmail/SwapTool/internal/service"
	"github.com/AhmedEssamEsmail/SwapTool/pkg/util"
)

// ShiftsHandler manages schedule endpoints.
type ShiftsHandler struct {
	service *service.ScheduleService
}

// NewShiftsHandler constructs handler.
func NewShiftsHandler(scheduleService *service.ScheduleService) *ShiftsHandler {
	return &ShiftsHandler{service: scheduleService}
}

// ListShifts GET /shifts.
func (h *ShiftsHandler) ListShifts(c *fiber.Ctx) error {
	filter := service.ScheduleFilter{
		From: parseOptionalDate(c.Query("from")),
		To:   parseOptionalDate(c.Query("to")),
	}
	if employeeID := strings.TrimSpace(c.Query("employee_id")); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	filter.Limit, filter.Offset = parsePagination(c)

	shifts, err := h.service.ListSchedule(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": shiftResponses(shifts)})
}

// ListMyShifts GET /shifts/mine.
func (h *ShiftsHandler) ListMyShifts(c *fiber.Ctx) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	shifts, err := h.service.ListEmployeeShifts(c.UserContext(), principal.Employee.ID,
		parseOptionalDate(c.Query("from")), parseOptionalDate(c.Query("to")))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": shiftResponses(shifts)})
}

// CreateShift POST /shifts.
func (h *ShiftsHandler) CreateShift(c *fiber.Ctx) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.CreateShiftRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.EmployeeID == "" || req.Date == "" || req.Type == "" {
		return util.NewValidationError("employee_id, date, type required", nil)
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return err
	}

	shift, err := h.service.AssignShift(c.UserContext(), principal.Actor(), service.ShiftCreateInput{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Type:       req.Type,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": shiftResponse(shift)})
}

// UpdateShift PUT /shifts/:id.
func (h *ShiftsHandler) UpdateShift(c *fiber.Ctx) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.UpdateShiftRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.Date == nil && req.Type == nil {
		return util.NewValidationError("nothing to update", nil)
	}

	input := service.ShiftUpdateInput{Type: req.Type}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return err
		}
		input.Date = &date
	}

	shift, err := h.service.UpdateShift(c.UserContext(), principal.Actor(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": shiftResponse(shift)})
}

// DeleteShift DELETE /shifts/:id.
func (h *ShiftsHandler) DeleteShift(c *fiber.Ctx) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	if err := h.service.RemoveShift(c.UserContext(), principal.Actor(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": true}})
}

func shiftResponse(shift *domain.Shift) dto.ShiftResponse {
	return dto.ShiftResponse{
		ID:         shift.ID,
		EmployeeID: shift.EmployeeID,
		Date:       shift.Date.Format(dateLayout),
		Type:       shift.Type,
		CreatedAt:  shift.CreatedAt,
		UpdatedAt:  shift.UpdatedAt,
	}
}

func shiftResponses(shifts []domain.Shift) []dto.ShiftResponse {
	items := make([]dto.ShiftResponse, 0, len(shifts))
	for i := range shifts {
		items = append(items, shiftResponse(&shifts[i]))
	}
	return items
}
