package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmedEssamEsmail/SwapTool/internal/domain"
	"github.com/AhmedEssamEsmail/SwapTool/internal/events"
	"github.com/AhmedEssamEsmail/SwapTool/internal/observability"
	"github.com/AhmedEssamEsmail/SwapTool/internal/repository"
	"github.com/AhmedEssamEsmail/SwapTool/internal/workflow"
)

var serviceNow = time.Date(2025, time.June, 2, 10, 0, 0, 0, time.UTC)

func newLeaveServiceForTest(repo *mockLeaveRepo, policy AutoApprovePolicy, dispatcher *capturingDispatcher, metrics *observability.Metrics) *LeaveService {
	svc := NewLeaveService(LeaveDependencies{
		LeaveRepo:  repo,
		Policy:     policy,
		Dispatcher: dispatcher,
		Metrics:    metrics,
	})
	svc.now = func() time.Time { return serviceNow }
	return svc
}

func pendingLeaveFixture(status domain.LeaveStatus) *domain.LeaveRequest {
	return &domain.LeaveRequest{
		ID:        "leave-1",
		OwnerID:   "emp-owner",
		LeaveType: domain.LeaveTypeAnnual,
		StartDate: serviceNow.AddDate(0, 0, 7),
		EndDate:   serviceNow.AddDate(0, 0, 9),
		Status:    status,
		CreatedAt: serviceNow.Add(-time.Hour),
		UpdatedAt: serviceNow.Add(-time.Hour),
	}
}

func TestLeaveService_Create_PendingWhenAutoApproveOff(t *testing.T) {
	var stored *domain.LeaveRequest
	repo := &mockLeaveRepo{
		createFunc: func(_ context.Context, request *domain.LeaveRequest) error {
			request.ID = "leave-1"
			stored = request
			return nil
		},
	}
	dispatcher := &capturingDispatcher{}
	svc := newLeaveServiceForTest(repo, stubPolicy{enabled: false}, dispatcher, observability.NewMetrics())

	result, err := svc.Create(context.Background(), "emp-owner", LeaveCreateInput{
		LeaveType: domain.LeaveTypeAnnual,
		StartDate: serviceNow.AddDate(0, 0, 7),
		EndDate:   serviceNow.AddDate(0, 0, 9),
		Notes:     "family trip",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.LeaveStatusPendingTeamLead, result.Status)
	assert.Nil(t, result.TeamLeadDecidedAt)
	assert.Nil(t, result.ManagerDecidedAt)
	require.NotNil(t, stored)
	assert.Equal(t, "emp-owner", stored.OwnerID)

	event := dispatcher.lastEvent(t)
	assert.Equal(t, events.EventLeaveRequestCreated, event.Type)
	assert.Equal(t, "leave-1", event.EntityID)
	payload, ok := event.Payload.(events.LeaveRequestCreatedPayload)
	require.True(t, ok)
	assert.False(t, payload.AutoApproved)
}

func TestLeaveService_Create_AutoApproveSkipsReview(t *testing.T) {
	repo := &mockLeaveRepo{}
	dispatcher := &capturingDispatcher{}
	metrics := observability.NewMetrics()
	svc := newLeaveServiceForTest(repo, stubPolicy{enabled: true}, dispatcher, metrics)

	result, err := svc.Create(context.Background(), "emp-owner", LeaveCreateInput{
		LeaveType: domain.LeaveTypeSick,
		StartDate: serviceNow,
		EndDate:   serviceNow,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.LeaveStatusApproved, result.Status)
	require.NotNil(t, result.TeamLeadDecidedAt)
	require.NotNil(t, result.ManagerDecidedAt)
	assert.True(t, result.TeamLeadDecidedAt.Equal(serviceNow))
	assert.True(t, result.ManagerDecidedAt.Equal(serviceNow))
	assert.Equal(t, int64(1), metrics.DecisionCount("leave", "auto_approved"))

	payload, ok := dispatcher.lastEvent(t).Payload.(events.LeaveRequestCreatedPayload)
	require.True(t, ok)
	assert.True(t, payload.AutoApproved)
}

func TestLeaveService_Create_UnknownLeaveType(t *testing.T) {
	created := false
	repo := &mockLeaveRepo{
		createFunc: func(context.Context, *domain.LeaveRequest) error {
			created = true
			return nil
		},
	}
	svc := newLeaveServiceForTest(repo, stubPolicy{}, &capturingDispatcher{}, nil)

	_, err := svc.Create(context.Background(), "emp-owner", LeaveCreateInput{
		LeaveType: "sabbatical",
		StartDate: serviceNow,
		EndDate:   serviceNow,
	})
	requireDomainCode(t, err, "VALIDATION_FAILED")
	assert.False(t, created)
}

func TestLeaveService_Create_InvertedRange(t *testing.T) {
	created := false
	repo := &mockLeaveRepo{
		createFunc: func(context.Context, *domain.LeaveRequest) error {
			created = true
			return nil
		},
	}
	svc := newLeaveServiceForTest(repo, stubPolicy{}, &capturingDispatcher{}, nil)

	_, err := svc.Create(context.Background(), "emp-owner", LeaveCreateInput{
		LeaveType: domain.LeaveTypeAnnual,
		StartDate: serviceNow.AddDate(0, 0, 5),
		EndDate:   serviceNow.AddDate(0, 0, 3),
	})
	requireDomainCode(t, err, "INVALID_RANGE")
	assert.False(t, created)
}

func TestLeaveService_Decide_TeamLeadApproveAdvancesStage(t *testing.T) {
	var committedFrom domain.LeaveStatus
	repo := &mockLeaveRepo{
		getByIDFunc: func(context.Context, string) (*domain.LeaveRequest, error) {
			return pendingLeaveFixture(domain.LeaveStatusPendingTeamLead), nil
		},
		applyTransitionFunc: func(_ context.Context, _ *domain.LeaveRequest, from domain.LeaveStatus) error {
			committedFrom = from
			return nil
		},
	}
	dispatcher := &capturingDispatcher{}
	metrics := observability.NewMetrics()
	svc := newLeaveServiceForTest(repo, stubPolicy{}, dispatcher, metrics)

	teamLead := workflow.Actor{EmployeeID: "tl-1", Role: domain.RoleTeamLead}
	result, err := svc.Decide(context.Background(), teamLead, "leave-1", workflow.DecisionApprove)
	require.NoError(t, err)

	assert.Equal(t, domain.LeaveStatusPendingWorkforceManager, result.Status)
	assert.Equal(t, domain.LeaveStatusPendingTeamLead, committedFrom)
	require.NotNil(t, result.TeamLeadDecidedAt)
	assert.Nil(t, result.ManagerDecidedAt)
	assert.Equal(t, int64(1), metrics.DecisionCount("leave", string(domain.LeaveStatusPendingWorkforceManager)))

	event := dispatcher.lastEvent(t)
	assert.Equal(t, events.EventLeaveRequestDecided, event.Type)
	payload, ok := event.Payload.(events.LeaveRequestDecidedPayload)
	require.True(t, ok)
	assert.Equal(t, "team_lead", payload.Stage)
	assert.Equal(t, domain.LeaveStatusPendingTeamLead, payload.OldStatus)
	assert.Equal(t, domain.LeaveStatusPendingWorkforceManager, payload.NewStatus)
}

func TestLeaveService_Decide_ConcurrentDecisionConflicts(t *testing.T) {
	repo := &mockLeaveRepo{
		getByIDFunc: func(context.Context, string) (*domain.LeaveRequest, error) {
			return pendingLeaveFixture(domain.LeaveStatusPendingTeamLead), nil
		},
		applyTransitionFunc: func(context.Context, *domain.LeaveRequest, domain.LeaveStatus) error {
			return repository.ErrConflict
		},
	}
	svc := newLeaveServiceForTest(repo, stubPolicy{}, &capturingDispatcher{}, nil)

	teamLead := workflow.Actor{EmployeeID: "tl-1", Role: domain.RoleTeamLead}
	_, err := svc.Decide(context.Background(), teamLead, "leave-1", workflow.DecisionApprove)
	requireDomainCode(t, err, "CONFLICT")
}

func TestLeaveService_Decide_AgentForbidden(t *testing.T) {
	repo := &mockLeaveRepo{
		getByIDFunc: func(context.Context, string) (*domain.LeaveRequest, error) {
			return pendingLeaveFixture(domain.LeaveStatusPendingTeamLead), nil
		},
	}
	svc := newLeaveServiceForTest(repo, stubPolicy{}, &capturingDispatcher{}, nil)

	agent := workflow.Actor{EmployeeID: "emp-owner", Role: domain.RoleAgent}
	_, err := svc.Decide(context.Background(), agent, "leave-1", workflow.DecisionApprove)
	requireDomainCode(t, err, "FORBIDDEN")
}

func TestLeaveService_Decide_TerminalRequest(t *testing.T) {
	repo := &mockLeaveRepo{
		getByIDFunc: func(context.Context, string) (*domain.LeaveRequest, error) {
			return pendingLeaveFixture(domain.LeaveStatusApproved), nil
		},
	}
	svc := newLeaveServiceForTest(repo, stubPolicy{}, &capturingDispatcher{}, nil)

	manager := workflow.Actor{EmployeeID: "wfm-1", Role: domain.RoleWorkforceManager}
	_, err := svc.Decide(context.Background(), manager, "leave-1", workflow.DecisionApprove)
	requireDomainCode(t, err, "TERMINAL_STATE")
}

func TestLeaveService_Decide_MissingRequest(t *testing.T) {
	svc := newLeaveServiceForTest(&mockLeaveRepo{}, stubPolicy{}, &capturingDispatcher{}, nil)

	teamLead := workflow.Actor{EmployeeID: "tl-1", Role: domain.RoleTeamLead}
	_, err := svc.Decide(context.Background(), teamLead, "leave-missing", workflow.DecisionApprove)
	requireDomainCode(t, err, "NOT_FOUND")
}

func TestLeaveService_Get_Visibility(t *testing.T) {
	repo := &mockLeaveRepo{
		getByIDFunc: func(context.Context, string) (*domain.LeaveRequest, error) {
			return pendingLeaveFixture(domain.LeaveStatusPendingTeamLead), nil
		},
	}
	svc := newLeaveServiceForTest(repo, stubPolicy{}, &capturingDispatcher{}, nil)

	_, err := svc.Get(context.Background(), workflow.Actor{EmployeeID: "emp-owner", Role: domain.RoleAgent}, "leave-1")
	assert.NoError(t, err, "owner can read")

	_, err = svc.Get(context.Background(), workflow.Actor{EmployeeID: "tl-1", Role: domain.RoleTeamLead}, "leave-1")
	assert.NoError(t, err, "reviewer can read")

	_, err = svc.Get(context.Background(), workflow.Actor{EmployeeID: "emp-other", Role: domain.RoleAgent}, "leave-1")
	requireDomainCode(t, err, "FORBIDDEN")
}

func TestLeaveService_ListPending_QueuePerRole(t *testing.T) {
	var captured repository.LeaveRequestFilter
	repo := &mockLeaveRepo{
		listFunc: func(_ context.Context, filter repository.LeaveRequestFilter) ([]domain.LeaveRequest, error) {
			captured = filter
			return nil, nil
		},
	}
	svc := newLeaveServiceForTest(repo, stubPolicy{}, &capturingDispatcher{}, nil)

	_, err := svc.ListPending(context.Background(), workflow.Actor{EmployeeID: "tl-1", Role: domain.RoleTeamLead}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, []domain.LeaveStatus{domain.LeaveStatusPendingTeamLead}, captured.Statuses)

	_, err = svc.ListPending(context.Background(), workflow.Actor{EmployeeID: "wfm-1", Role: domain.RoleWorkforceManager}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, []domain.LeaveStatus{
		domain.LeaveStatusPendingTeamLead,
		domain.LeaveStatusPendingWorkforceManager,
	}, captured.Statuses)

	_, err = svc.ListPending(context.Background(), workflow.Actor{EmployeeID: "emp-1", Role: domain.RoleAgent}, 10, 0)
	requireDomainCode(t, err, "FORBIDDEN")
}
