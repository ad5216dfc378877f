package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmedEssamEsmail/SwapTool/internal/domain"
)

var testNow = time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC)

func day(offset int) time.Time {
	return time.Date(2025, time.March, 10+offset, 0, 0, 0, 0, time.UTC)
}

func TestNewLeaveRequest_RejectsInvertedRange(t *testing.T) {
	_, err := NewLeaveRequest("emp-1", domain.LeaveTypeAnnual, day(5), day(2), "", false, testNow)
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestNewLeaveRequest_SingleDayRangeIsValid(t *testing.T) {
	req, err := NewLeaveRequest("emp-1", domain.LeaveTypeSick, day(1), day(1), "dentist", false, testNow)
	require.NoError(t, err)
	assert.Equal(t, domain.LeaveStatusPendingTeamLead, req.Status)
}

func TestNewLeaveRequest_PendingWithoutAutoApprove(t *testing.T) {
	req, err := NewLeaveRequest("emp-1", domain.LeaveTypeCasual, day(1), day(3), "", false, testNow)
	require.NoError(t, err)

	assert.Equal(t, domain.LeaveStatusPendingTeamLead, req.Status)
	assert.Nil(t, req.TeamLeadDecidedAt)
	assert.Nil(t, req.ManagerDecidedAt)
	assert.Equal(t, testNow, req.CreatedAt)
}

func TestNewLeaveRequest_AutoApproveSkipsBothStages(t *testing.T) {
	req, err := NewLeaveRequest("emp-1", domain.LeaveTypeAnnual, day(1), day(3), "", true, testNow)
	require.NoError(t, err)

	assert.Equal(t, domain.LeaveStatusApproved, req.Status)
	require.NotNil(t, req.TeamLeadDecidedAt)
	require.NotNil(t, req.ManagerDecidedAt)
	assert.Equal(t, testNow, *req.TeamLeadDecidedAt)
	assert.Equal(t, testNow, *req.ManagerDecidedAt)
	assert.Equal(t, testNow, req.CreatedAt)
}

func TestDecideLeave_StateTable(t *testing.T) {
	tests := []struct {
		name       string
		status     domain.LeaveStatus
		role       domain.EmployeeRole
		decision   Decision
		wantStatus domain.LeaveStatus
		wantStage  ReviewStage
		wantErr    error
	}{
		{
			name:       "team lead approves first stage",
			status:     domain.LeaveStatusPendingTeamLead,
			role:       domain.RoleTeamLead,
			decision:   DecisionApprove,
			wantStatus: domain.LeaveStatusPendingWorkforceManager,
			wantStage:  StageTeamLead,
		},
		{
			name:       "workforce manager may stand in at first stage",
			status:     domain.LeaveStatusPendingTeamLead,
			role:       domain.RoleWorkforceManager,
			decision:   DecisionApprove,
			wantStatus: domain.LeaveStatusPendingWorkforceManager,
			wantStage:  StageTeamLead,
		},
		{
			name:     "agent cannot decide first stage",
			status:   domain.LeaveStatusPendingTeamLead,
			role:     domain.RoleAgent,
			decision: DecisionApprove,
			wantErr:  ErrUnauthorized,
		},
		{
			name:       "team lead rejects first stage",
			status:     domain.LeaveStatusPendingTeamLead,
			role:       domain.RoleTeamLead,
			decision:   DecisionReject,
			wantStatus: domain.LeaveStatusRejected,
			wantStage:  StageTeamLead,
		},
		{
			name:       "workforce manager approves final stage",
			status:     domain.LeaveStatusPendingWorkforceManager,
			role:       domain.RoleWorkforceManager,
			decision:   DecisionApprove,
			wantStatus: domain.LeaveStatusApproved,
			wantStage:  StageWorkforceManager,
		},
		{
			name:     "team lead cannot decide final stage",
			status:   domain.LeaveStatusPendingWorkforceManager,
			role:     domain.RoleTeamLead,
			decision: DecisionApprove,
			wantErr:  ErrUnauthorized,
		},
		{
			name:       "workforce manager rejects final stage",
			status:     domain.LeaveStatusPendingWorkforceManager,
			role:       domain.RoleWorkforceManager,
			decision:   DecisionReject,
			wantStatus: domain.LeaveStatusRejected,
			wantStage:  StageWorkforceManager,
		},
		{
			name:     "approved is terminal",
			status:   domain.LeaveStatusApproved,
			role:     domain.RoleWorkforceManager,
			decision: DecisionApprove,
			wantErr:  ErrTerminalState,
		},
		{
			name:     "rejected is terminal",
			status:   domain.LeaveStatusRejected,
			role:     domain.RoleWorkforceManager,
			decision: DecisionReject,
			wantErr:  ErrTerminalState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := domain.LeaveRequest{
				ID:      "leave-1",
				OwnerID: "emp-1",
				Status:  tt.status,
			}
			actor := Actor{EmployeeID: "reviewer-1", Role: tt.role}

			transition, err := DecideLeave(req, actor, tt.decision, testNow)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.status, transition.FromStatus)
			assert.Equal(t, tt.wantStatus, transition.ToStatus)
			assert.Equal(t, tt.wantStage, transition.Stage)
			assert.Equal(t, testNow, transition.DecidedAt)
		})
	}
}

func TestDecideLeave_TimestampsFollowStages(t *testing.T) {
	req, err := NewLeaveRequest("emp-1", domain.LeaveTypeAnnual, day(1), day(2), "", false, testNow)
	require.NoError(t, err)
	require.Nil(t, req.TeamLeadDecidedAt)
	require.Nil(t, req.ManagerDecidedAt)

	tlTime := testNow.Add(time.Hour)
	transition, err := DecideLeave(req, Actor{EmployeeID: "tl-1", Role: domain.RoleTeamLead}, DecisionApprove, tlTime)
	require.NoError(t, err)
	transition.Apply(&req)

	assert.Equal(t, domain.LeaveStatusPendingWorkforceManager, req.Status)
	require.NotNil(t, req.TeamLeadDecidedAt)
	assert.Equal(t, tlTime, *req.TeamLeadDecidedAt)
	assert.Nil(t, req.ManagerDecidedAt)

	wfmTime := tlTime.Add(2 * time.Hour)
	transition, err = DecideLeave(req, Actor{EmployeeID: "wfm-1", Role: domain.RoleWorkforceManager}, DecisionApprove, wfmTime)
	require.NoError(t, err)
	transition.Apply(&req)

	assert.Equal(t, domain.LeaveStatusApproved, req.Status)
	require.NotNil(t, req.TeamLeadDecidedAt)
	require.NotNil(t, req.ManagerDecidedAt)
	assert.Equal(t, tlTime, *req.TeamLeadDecidedAt)
	assert.Equal(t, wfmTime, *req.ManagerDecidedAt)

	_, err = DecideLeave(req, Actor{EmployeeID: "wfm-1", Role: domain.RoleWorkforceManager}, DecisionApprove, wfmTime)
	require.ErrorIs(t, err, ErrTerminalState)
}

func TestDecideLeave_RejectionStampsRejectingStage(t *testing.T) {
	req := domain.LeaveRequest{ID: "leave-1", OwnerID: "emp-1", Status: domain.LeaveStatusPendingTeamLead}

	transition, err := DecideLeave(req, Actor{EmployeeID: "tl-1", Role: domain.RoleTeamLead}, DecisionReject, testNow)
	require.NoError(t, err)
	transition.Apply(&req)

	assert.Equal(t, domain.LeaveStatusRejected, req.Status)
	require.NotNil(t, req.TeamLeadDecidedAt)
	assert.Nil(t, req.ManagerDecidedAt)
}

func swapFixtures() (domain.Shift, domain.Shift) {
	requesterShift := domain.Shift{
		ID:         "shift-a",
		EmployeeID: "emp-a",
		Date:       day(2),
		Type:       domain.ShiftTypeMorning,
	}
	targetShift := domain.Shift{
		ID:         "shift-b",
		EmployeeID: "emp-b",
		Date:       day(4),
		Type:       domain.ShiftTypeEvening,
	}
	return requesterShift, targetShift
}

func TestNewSwapRequest_RejectsSelfTarget(t *testing.T) {
	requesterShift, targetShift := swapFixtures()
	_, err := NewSwapRequest("emp-a", "emp-a", requesterShift, targetShift, testNow)
	require.ErrorIs(t, err, ErrInvalidTarget)
}

func TestNewSwapRequest_ShiftChecks(t *testing.T) {
	requesterShift, targetShift := swapFixtures()

	t.Run("requester shift owned by someone else", func(t *testing.T) {
		misOwned := requesterShift
		misOwned.EmployeeID = "emp-c"
		_, err := NewSwapRequest("emp-a", "emp-b", misOwned, targetShift, testNow)
		require.ErrorIs(t, err, ErrInvalidShift)
	})

	t.Run("target shift owned by someone else", func(t *testing.T) {
		misOwned := targetShift
		misOwned.EmployeeID = "emp-c"
		_, err := NewSwapRequest("emp-a", "emp-b", requesterShift, misOwned, testNow)
		require.ErrorIs(t, err, ErrInvalidShift)
	})

	t.Run("past shift cannot be swapped", func(t *testing.T) {
		past := requesterShift
		past.Date = day(-1)
		_, err := NewSwapRequest("emp-a", "emp-b", past, targetShift, testNow)
		require.ErrorIs(t, err, ErrInvalidShift)
	})

	t.Run("same-day shift is allowed", func(t *testing.T) {
		sameDay := requesterShift
		sameDay.Date = day(0)
		_, err := NewSwapRequest("emp-a", "emp-b", sameDay, targetShift, testNow)
		require.NoError(t, err)
	})
}

func TestNewSwapRequest_SnapshotsBothSides(t *testing.T) {
	requesterShift, targetShift := swapFixtures()

	req, err := NewSwapRequest("emp-a", "emp-b", requesterShift, targetShift, testNow)
	require.NoError(t, err)

	assert.Equal(t, domain.SwapStatusPendingAcceptance, req.Status)
	assert.Equal(t, "shift-a", req.RequesterShiftID)
	assert.Equal(t, "shift-b", req.TargetShiftID)
	assert.Equal(t, requesterShift.Date, req.RequesterShiftDate)
	assert.Equal(t, domain.ShiftTypeMorning, req.RequesterShiftType)
	assert.Equal(t, targetShift.Date, req.TargetShiftDate)
	assert.Equal(t, domain.ShiftTypeEvening, req.TargetShiftType)
}

func TestRespondToSwap(t *testing.T) {
	base := domain.SwapRequest{
		ID:          "swap-1",
		RequesterID: "emp-a",
		TargetID:    "emp-b",
		Status:      domain.SwapStatusPendingAcceptance,
	}

	t.Run("only the target may respond", func(t *testing.T) {
		req := base
		_, err := RespondToSwap(req, "emp-a", true)
		require.ErrorIs(t, err, ErrUnauthorized)
		assert.Equal(t, domain.SwapStatusPendingAcceptance, req.Status)
	})

	t.Run("accept forwards to approval", func(t *testing.T) {
		req := base
		transition, err := RespondToSwap(req, "emp-b", true)
		require.NoError(t, err)
		transition.Apply(&req)
		assert.Equal(t, domain.SwapStatusPendingApproval, req.Status)
		assert.Nil(t, transition.Exchange)
	})

	t.Run("decline finalizes", func(t *testing.T) {
		req := base
		transition, err := RespondToSwap(req, "emp-b", false)
		require.NoError(t, err)
		transition.Apply(&req)
		assert.Equal(t, domain.SwapStatusDeclined, req.Status)
	})

	t.Run("cannot respond twice", func(t *testing.T) {
		req := base
		req.Status = domain.SwapStatusPendingApproval
		_, err := RespondToSwap(req, "emp-b", true)
		require.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("declined is terminal", func(t *testing.T) {
		req := base
		req.Status = domain.SwapStatusDeclined
		_, err := RespondToSwap(req, "emp-b", true)
		require.ErrorIs(t, err, ErrTerminalState)
	})
}

func TestDecideSwap(t *testing.T) {
	base := domain.SwapRequest{
		ID:               "swap-1",
		RequesterID:      "emp-a",
		TargetID:         "emp-b",
		RequesterShiftID: "shift-a",
		TargetShiftID:    "shift-b",
		Status:           domain.SwapStatusPendingApproval,
	}
	reviewer := Actor{EmployeeID: "tl-1", Role: domain.RoleTeamLead}

	t.Run("approval carries the exchange", func(t *testing.T) {
		transition, err := DecideSwap(base, reviewer, DecisionApprove)
		require.NoError(t, err)
		assert.Equal(t, domain.SwapStatusApproved, transition.ToStatus)
		require.NotNil(t, transition.Exchange)
		assert.Equal(t, "shift-a", transition.Exchange.RequesterShiftID)
		assert.Equal(t, "emp-b", transition.Exchange.RequesterShiftNewOwner)
		assert.Equal(t, "shift-b", transition.Exchange.TargetShiftID)
		assert.Equal(t, "emp-a", transition.Exchange.TargetShiftNewOwner)
	})

	t.Run("rejection carries no exchange", func(t *testing.T) {
		transition, err := DecideSwap(base, reviewer, DecisionReject)
		require.NoError(t, err)
		assert.Equal(t, domain.SwapStatusRejected, transition.ToStatus)
		assert.Nil(t, transition.Exchange)
	})

	t.Run("agent cannot decide", func(t *testing.T) {
		_, err := DecideSwap(base, Actor{EmployeeID: "emp-c", Role: domain.RoleAgent}, DecisionApprove)
		require.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("unaccepted swap cannot be decided", func(t *testing.T) {
		req := base
		req.Status = domain.SwapStatusPendingAcceptance
		_, err := DecideSwap(req, reviewer, DecisionApprove)
		require.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("second approval is terminal, not a re-swap", func(t *testing.T) {
		req := base
		transition, err := DecideSwap(req, reviewer, DecisionApprove)
		require.NoError(t, err)
		transition.Apply(&req)
		require.Equal(t, domain.SwapStatusApproved, req.Status)

		_, err = DecideSwap(req, reviewer, DecisionApprove)
		require.ErrorIs(t, err, ErrTerminalState)
	})
}
