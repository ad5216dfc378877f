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

// SwapRequestsHandler manages shift swap endpoints.
type SwapRequestsHandler struct {
	service *service.SwapService
}

// NewSwapRequestsHandler constructs handler.
func NewSwapRequestsHandler(swapService *service.SwapService) *SwapRequestsHandler {
	return &SwapRequestsHandler{service: swapService}
}

// CreateSwapRequest POST /swap-requests.
func (h *SwapRequestsHandler) CreateSwapRequest(c *fiber.Ctx) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.CreateSwapRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.TargetID == "" || req.RequesterShiftID == "" || req.TargetShiftID == "" {
		return util.NewValidationError("target_id, requester_shift_id, target_shift_id required", nil)
	}

	request, err := h.service.Create(c.UserContext(), principal.Employee.ID, service.SwapCreateInput{
		TargetID:         req.TargetID,
		RequesterShiftID: req.RequesterShiftID,
		TargetShiftID:    req.TargetShiftID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": swapResponse(request)})
}

// ListMySwapRequests GET /swap-requests/mine. Returns requests where the
// caller is either side of the exchange.
func (h *SwapRequestsHandler) ListMySwapRequests(c *fiber.Ctx) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	limit, offset := parsePagination(c)
	requests, err := h.service.ListOwn(c.UserContext(), principal.Employee.ID, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": swapResponses(requests)})
}

// ListPendingSwapRequests GET /swap-requests/pending.
func (h *SwapRequestsHandler) ListPendingSwapRequests(c *fiber.Ctx) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	limit, offset := parsePagination(c)
	requests, err := h.service.ListPending(c.UserContext(), principal.Actor(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": swapResponses(requests)})
}

// GetSwapRequest GET /swap-requests/:id.
func (h *SwapRequestsHandler) GetSwapRequest(c *fiber.Ctx) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	request, err := h.service.Get(c.UserContext(), principal.Actor(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": swapResponse(request)})
}

// RespondSwapRequest POST /swap-requests/:id/response.
func (h *SwapRequestsHandler) RespondSwapRequest(c *fiber.Ctx) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.RespondSwapRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.Accept == nil {
		return util.NewValidationError("accept required", nil)
	}

	request, err := h.service.Respond(c.UserContext(), principal.Employee.ID, c.Params("id"), *req.Accept)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": swapResponse(request)})
}

// DecideSwapRequest POST /swap-requests/:id/decision.
func (h *SwapRequestsHandler) DecideSwapRequest(c *fiber.Ctx) error {
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
	return c.JSON(fiber.Map{"data": swapResponse(request)})
}

func swapResponse(request *domain.SwapRequest) dto.SwapRequestResponse {
	return dto.SwapRequestResponse{
		ID:                 request.ID,
		RequesterID:        request.RequesterID,
		TargetID:           request.TargetID,
		RequesterShiftID:   request.RequesterShiftID,
		TargetShiftID:      request.TargetShiftID,
		RequesterShiftDate: request.RequesterShiftDate.Format(dateLayout),
		RequesterShiftType: request.RequesterShiftType,
		TargetShiftDate:    request.TargetShiftDate.Format(dateLayout),
		TargetShiftType:    request.TargetShiftType,
		Status:             request.Status,
		CreatedAt:          request.CreatedAt,
		UpdatedAt:          request.UpdatedAt,
	}
}

func swapResponses(requests []domain.SwapRequest) []dto.SwapRequestResponse {
	items := make([]dto.SwapRequestResponse, 0, len(requests))
	for i := range requests {
		items = append(items, swapResponse(&requests[i]))
	}
	return items
}
