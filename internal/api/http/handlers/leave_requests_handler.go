package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/AhmedEssamEsmail/SwapTool/internal/api/dto"
	"github.com/AhmedEssamEsmail/SwapTool/internal/domain"
	"github.com/AhmedEssamEsmail/SwapTool/internal/service"
	"github.com/AhmedEssamEsmail/SwapTool/internal/workflow"
	"github.com/AhmedEssamEsmail/SwapTool/pkg/util"
)

// LeaveRequestsHandler manages leave request endpoints.
type LeaveRequestsHandler struct {
	service *service.LeaveService
}

// NewLeaveRequestsHandler constructs handler.
func NewLeaveRequestsHandler(leaveService *service.LeaveService) *LeaveRequestsHandler {
	return &LeaveRequestsHandler{service: leaveService}
}

// CreateLeaveRequest POST /leave-requests.
func (h *LeaveRequestsHandler) CreateLeaveRequest(c *fiber.Ctx) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.CreateLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.LeaveType == "" || req.StartDate == "" || req.EndDate == "" {
		return util.NewValidationError("leave_type, start_date, end_date required", nil)
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return err
	}

	request, err := h.service.Create(c.UserContext(), principal.Employee.ID, service.LeaveCreateInput{
		LeaveType: req.LeaveType,
		StartDate: startDate,
		EndDate:   endDate,
		Notes:     req.Notes,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": leaveResponse(request)})
}

// ListMyLeaveRequests GET /leave-requests/mine.
func (h *LeaveRequestsHandler) ListMyLeaveRequests(c *fiber.Ctx) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	limit, offset := parsePagination(c)
	requests, err := h.service.ListOwn(c.UserContext(), principal.Employee.ID, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": leaveResponses(requests)})
}

// ListPendingLeaveRequests GET /leave-requests/pending.
func (h *LeaveRequestsHandler) ListPendingLeaveRequests(c *fiber.Ctx) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	limit, offset := parsePagination(c)
	requests, err := h.service.ListPending(c.UserContext(), principal.Actor(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": leaveResponses(requests)})
}

// GetLeaveRequest GET /leave-requests/:id.
func (h *LeaveRequestsHandler) GetLeaveRequest(c *fiber.Ctx) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	request, err := h.service.Get(c.UserContext(), principal.Actor(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": leaveResponse(request)})
}

// DecideLeaveRequest POST /leave-requests/:id/decision.
func (h *LeaveRequestsHandler) DecideLeaveRequest(c *fiber.Ctx) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.DecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	decision := workflow.Decision(req.Decision)
	if !decision.IsValid() {
		return util.NewValidationError("decision must be approve or reject", map[string]any{"decision": req.Decision})
	}

	request, err := h.service.Decide(c.UserContext(), principal.Actor(), c.Params("id"), decision)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": leaveResponse(request)})
}

func leaveResponse(request *domain.LeaveRequest) dto.LeaveRequestResponse {
	return dto.LeaveRequestResponse{
		ID:                request.ID,
		OwnerID:           request.OwnerID,
		LeaveType:         request.LeaveType,
		StartDate:         request.StartDate.Format(dateLayout),
		EndDate:           request.EndDate.Format(dateLayout),
		Notes:             request.Notes,
		Status:            request.Status,
		TeamLeadDecidedAt: request.TeamLeadDecidedAt,
		ManagerDecidedAt:  request.ManagerDecidedAt,
		CreatedAt:         request.CreatedAt,
		UpdatedAt:         request.UpdatedAt,
	}
}

func leaveResponses(requests []domain.LeaveRequest) []dto.LeaveRequestResponse {
	items := make([]dto.LeaveRequestResponse, 0, len(requests))
	for i := range requests {
		items = append(items, leaveResponse(&requests[i]))
	}
	return items
}
