package service

import (
	"context"
	"time"

	"github.com/AhmedEssamEsmail/SwapTool/internal/domain"
	"github.com/AhmedEssamEsmail/SwapTool/internal/events"
	"github.com/AhmedEssamEsmail/SwapTool/internal/observability"
	"github.com/AhmedEssamEsmail/SwapTool/internal/repository"
	"github.com/AhmedEssamEsmail/SwapTool/internal/workflow"
	"github.com/AhmedEssamEsmail/SwapTool/pkg/util"
)

// AutoApprovePolicy reports the auto-approve flag as it stands at call
// time. Satisfied by SettingsService.
type AutoApprovePolicy interface {
	AutoApproveEnabled(ctx context.Context) (bool, error)
}

// LeaveService orchestrates the leave request lifecycle around the
// workflow engine: it loads state, runs the engine, and commits the
// resulting transition with compare-and-swap.
type LeaveService struct {
	leaves     repository.LeaveRequestRepository
	policy     AutoApprovePolicy
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	now        func() time.Time
}

// LeaveDependencies bundles requirements for the leave service.
type LeaveDependencies struct {
	LeaveRepo  repository.LeaveRequestRepository
	Policy     AutoApprovePolicy
	Dispatcher events.Dispatcher
	Metrics    *observability.Metrics
}

// LeaveCreateInput describes a leave request payload.
type LeaveCreateInput struct {
	LeaveType domain.LeaveType
	StartDate time.Time
	EndDate   time.Time
	Notes     string
}

// NewLeaveService constructs the service.
func NewLeaveService(deps LeaveDependencies) *LeaveService {
	return &LeaveService{
		leaves:     deps.LeaveRepo,
		policy:     deps.Policy,
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
		now:        time.Now,
	}
}

// Create files a leave request for the owner. The auto-approve flag is
// read here, once; the stored request never re-evaluates it.
func (s *LeaveService) Create(ctx context.Context, ownerID string, input LeaveCreateInput) (*domain.LeaveRequest, error) {
	if !input.LeaveType.IsValid() {
		return nil, util.NewValidationError("unknown leave type", map[string]any{"leave_type": input.LeaveType})
	}

	autoApprove, err := s.policy.AutoApproveEnabled(ctx)
	if err != nil {
		return nil, err
	}

	request, err := workflow.NewLeaveRequest(ownerID, input.LeaveType, input.StartDate, input.EndDate, input.Notes, autoApprove, s.now())
	if err != nil {
		return nil, mapWorkflowError(err)
	}

	if err := s.leaves.Create(ctx, &request); err != nil {
		return nil, err
	}

	if autoApprove {
		s.metrics.RecordDecision("leave", "auto_approved")
	}
	publishEvent(ctx, s.dispatcher, events.Event{
		Type:     events.EventLeaveRequestCreated,
		EntityID: request.ID,
		Actor:    events.Actor{EmployeeID: ownerID},
		Payload: events.LeaveRequestCreatedPayload{
			OwnerID:      request.OwnerID,
			LeaveType:    request.LeaveType,
			StartDate:    request.StartDate,
			EndDate:      request.EndDate,
			Status:       request.Status,
			AutoApproved: autoApprove,
		},
	})
	return &request, nil
}

// Get fetches a request for its owner or a reviewer.
func (s *LeaveService) Get(ctx context.Context, actor workflow.Actor, id string) (*domain.LeaveRequest, error) {
	request, err := s.leaves.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "leave request")
	}
	if request.OwnerID != actor.EmployeeID && !actor.Role.IsReviewer() {
		return nil, util.NewForbidden("not your request")
	}
	return request, nil
}

// ListOwn returns the caller's requests, newest first.
func (s *LeaveService) ListOwn(ctx context.Context, ownerID string, limit, offset int) ([]domain.LeaveRequest, error) {
	return s.leaves.List(ctx, repository.LeaveRequestFilter{
		OwnerID: &ownerID,
		Limit:   limit,
		Offset:  offset,
	})
}

// ListPending returns the queue for the actor's review stage: team leads
// see the first stage, workforce managers see both pending stages.
func (s *LeaveService) ListPending(ctx context.Context, actor workflow.Actor, limit, offset int) ([]domain.LeaveRequest, error) {
	var statuses []domain.LeaveStatus
	switch actor.Role {
	case domain.RoleTeamLead:
		statuses = []domain.LeaveStatus{domain.LeaveStatusPendingTeamLead}
	case domain.RoleWorkforceManager:
		statuses = []domain.LeaveStatus{domain.LeaveStatusPendingTeamLead, domain.LeaveStatusPendingWorkforceManager}
	default:
		return nil, util.NewForbidden("reviewer role required")
	}

	return s.leaves.List(ctx, repository.LeaveRequestFilter{
		Statuses: statuses,
		Limit:    limit,
		Offset:   offset,
	})
}

// Decide runs one review stage and commits the transition. A concurrent
// decision on the same request surfaces as CONFLICT, never a silent
// overwrite.
func (s *LeaveService) Decide(ctx context.Context, actor workflow.Actor, id string, decision workflow.Decision) (*domain.LeaveRequest, error) {
	request, err := s.leaves.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "leave request")
	}

	transition, err := workflow.DecideLeave(*request, actor, decision, s.now())
	if err != nil {
		return nil, mapWorkflowError(err)
	}

	transition.Apply(request)
	if err := s.leaves.ApplyTransition(ctx, request, transition.FromStatus); err != nil {
		return nil, mapRepoError(err, "leave request")
	}

	s.metrics.RecordDecision("leave", string(transition.ToStatus))
	publishEvent(ctx, s.dispatcher, events.Event{
		Type:     events.EventLeaveRequestDecided,
		EntityID: request.ID,
		Actor:    eventActor(actor),
		Payload: events.LeaveRequestDecidedPayload{
			OwnerID:   request.OwnerID,
			Decision:  string(decision),
			Stage:     string(transition.Stage),
			OldStatus: transition.FromStatus,
			NewStatus: transition.ToStatus,
		},
	})
	return request, nil
}
