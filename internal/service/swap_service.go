package service

import (
	"context"
	"errors"
	"time"

	"github.com/AhmedEssamEsmail/SwapTool/internal/domain"
	"github.com/AhmedEssamEsmail/SwapTool/internal/events"
	"github.com/AhmedEssamEsmail/SwapTool/internal/observability"
	"github.com/AhmedEssamEsmail/SwapTool/internal/repository"
	"github.com/AhmedEssamEsmail/SwapTool/internal/workflow"
	"github.com/AhmedEssamEsmail/SwapTool/pkg/util"
)

// SwapService orchestrates the shift swap lifecycle: creation against the
// live roster, the target's response, and the reviewer decision whose
// approval exchanges the two shifts atomically.
type SwapService struct {
	swaps      repository.SwapRequestRepository
	shifts     repository.ShiftRepository
	employees  repository.EmployeeRepository
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	now        func() time.Time
}

// SwapDependencies bundles requirements for the swap service.
type SwapDependencies struct {
	SwapRepo     repository.SwapRequestRepository
	ShiftRepo    repository.ShiftRepository
	EmployeeRepo repository.EmployeeRepository
	Dispatcher   events.Dispatcher
	Metrics      *observability.Metrics
}

// SwapCreateInput describes a swap request payload.
type SwapCreateInput struct {
	TargetID         string
	RequesterShiftID string
	TargetShiftID    string
}

// NewSwapService constructs the service.
func NewSwapService(deps SwapDependencies) *SwapService {
	return &SwapService{
		swaps:      deps.SwapRepo,
		shifts:     deps.ShiftRepo,
		employees:  deps.EmployeeRepo,
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
		now:        time.Now,
	}
}

// Create files a swap request and snapshots both shifts as they stand.
func (s *SwapService) Create(ctx context.Context, requesterID string, input SwapCreateInput) (*domain.SwapRequest, error) {
	target, err := s.employees.GetByID(ctx, input.TargetID)
	if err != nil {
		return nil, mapRepoError(err, "target employee")
	}
	if !target.Active {
		return nil, util.NewInvalidTarget("target employee is deactivated")
	}

	requesterShift, err := s.shifts.GetByID(ctx, input.RequesterShiftID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, util.NewInvalidShift("requester shift not found")
		}
		return nil, err
	}
	targetShift, err := s.shifts.GetByID(ctx, input.TargetShiftID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, util.NewInvalidShift("target shift not found")
		}
		return nil, err
	}

	request, err := workflow.NewSwapRequest(requesterID, input.TargetID, *requesterShift, *targetShift, s.now())
	if err != nil {
		return nil, mapWorkflowError(err)
	}

	if err := s.swaps.Create(ctx, &request); err != nil {
		return nil, err
	}

	publishEvent(ctx, s.dispatcher, events.Event{
		Type:     events.EventSwapRequestCreated,
		EntityID: request.ID,
		Actor:    events.Actor{EmployeeID: requesterID},
		Payload: events.SwapRequestCreatedPayload{
			RequesterID:        request.RequesterID,
			TargetID:           request.TargetID,
			RequesterShiftDate: request.RequesterShiftDate,
			TargetShiftDate:    request.TargetShiftDate,
		},
	})
	return &request, nil
}

// Get fetches a request for a participant or a reviewer.
func (s *SwapService) Get(ctx context.Context, actor workflow.Actor, id string) (*domain.SwapRequest, error) {
	request, err := s.swaps.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "swap request")
	}
	if request.RequesterID != actor.EmployeeID && request.TargetID != actor.EmployeeID && !actor.Role.IsReviewer() {
		return nil, util.NewForbidden("not your request")
	}
	return request, nil
}

// ListOwn returns requests where the caller is requester or target.
func (s *SwapService) ListOwn(ctx context.Context, employeeID string, limit, offset int) ([]domain.SwapRequest, error) {
	return s.swaps.List(ctx, repository.SwapRequestFilter{
		ParticipantID: &employeeID,
		Limit:         limit,
		Offset:        offset,
	})
}

// ListPending returns accepted swaps awaiting a reviewer decision.
func (s *SwapService) ListPending(ctx context.Context, actor workflow.Actor, limit, offset int) ([]domain.SwapRequest, error) {
	if !actor.Role.IsReviewer() {
		return nil, util.NewForbidden("reviewer role required")
	}
	return s.swaps.List(ctx, repository.SwapRequestFilter{
		Statuses: []domain.SwapStatus{domain.SwapStatusPendingApproval},
		Limit:    limit,
		Offset:   offset,
	})
}

// Respond records the target's accept or decline.
func (s *SwapService) Respond(ctx context.Context, actorID, id string, accept bool) (*domain.SwapRequest, error) {
	request, err := s.swaps.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "swap request")
	}

	transition, err := workflow.RespondToSwap(*request, actorID, accept)
	if err != nil {
		return nil, mapWorkflowError(err)
	}

	transition.Apply(request)
	if err := s.swaps.ApplyTransition(ctx, request, transition.FromStatus, nil); err != nil {
		return nil, mapRepoError(err, "swap request")
	}

	publishEvent(ctx, s.dispatcher, events.Event{
		Type:     events.EventSwapRequestResponded,
		EntityID: request.ID,
		Actor:    events.Actor{EmployeeID: actorID},
		Payload: events.SwapRequestRespondedPayload{
			RequesterID: request.RequesterID,
			Accepted:    accept,
			NewStatus:   request.Status,
		},
	})
	return request, nil
}

// Decide runs the reviewer decision. Approval commits the status change
// and both shift reassignments in one transaction; losing a race to
// another reviewer surfaces as CONFLICT.
func (s *SwapService) Decide(ctx context.Context, actor workflow.Actor, id string, decision workflow.Decision) (*domain.SwapRequest, error) {
	request, err := s.swaps.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "swap request")
	}

	transition, err := workflow.DecideSwap(*request, actor, decision)
	if err != nil {
		return nil, mapWorkflowError(err)
	}

	transition.Apply(request)
	if err := s.swaps.ApplyTransition(ctx, request, transition.FromStatus, transition.Exchange); err != nil {
		return nil, mapRepoError(err, "swap request")
	}

	s.metrics.RecordDecision("swap", string(transition.ToStatus))
	publishEvent(ctx, s.dispatcher, events.Event{
		Type:     events.EventSwapRequestDecided,
		EntityID: request.ID,
		Actor:    eventActor(actor),
		Payload: events.SwapRequestDecidedPayload{
			RequesterID:     request.RequesterID,
			TargetID:        request.TargetID,
			Decision:        string(decision),
			OldStatus:       transition.FromStatus,
			NewStatus:       transition.ToStatus,
			ShiftsExchanged: transition.Exchange != nil,
		},
	})
	return request, nil
}
