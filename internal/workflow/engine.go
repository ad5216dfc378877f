// Package workflow owns the approval lifecycle of leave and shift-swap
// requests: legal transitions, per-transition actor requirements, and the
// side effects each transition carries. Every operation is a pure function of
// its inputs; callers persist the returned transition and its side effects in
// a single transaction.
package workflow

import (
	"fmt"
	"time"

	"github.com/AhmedEssamEsmail/SwapTool/internal/domain"
)

// Actor identifies the authenticated caller of a transition. The engine never
// authenticates; it trusts the role supplied by the caller.
type Actor struct {
	EmployeeID string
	Role       domain.EmployeeRole
}

// Decision is the reviewer's verdict on a pending request.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// IsValid reports whether the decision is one of the two verdicts.
func (d Decision) IsValid() bool {
	return d == DecisionApprove || d == DecisionReject
}

// ReviewStage names the approval tier whose timestamp a leave transition stamps.
type ReviewStage string

const (
	StageTeamLead         ReviewStage = "team_lead"
	StageWorkforceManager ReviewStage = "workforce_manager"
)

// LeaveTransition is the computed outcome of a leave decision. FromStatus lets
// the persistence layer compare-and-swap the status column so two racing
// decisions on one request cannot both win.
type LeaveTransition struct {
	FromStatus domain.LeaveStatus
	ToStatus   domain.LeaveStatus
	Stage      ReviewStage
	DecidedAt  time.Time
}

// Apply stamps the transition onto an in-memory request record, mirroring the
// write the persistence layer performs.
func (t LeaveTransition) Apply(req *domain.LeaveRequest) {
	req.Status = t.ToStatus
	ts := t.DecidedAt
	switch t.Stage {
	case StageTeamLead:
		req.TeamLeadDecidedAt = &ts
	case StageWorkforceManager:
		req.ManagerDecidedAt = &ts
	}
}

// ShiftExchange describes the one-time ownership exchange executed when a swap
// reaches final approval. It must be committed atomically with the status
// write so the schedule can never show a half-applied swap.
type ShiftExchange struct {
	RequesterShiftID       string
	RequesterShiftNewOwner string
	TargetShiftID          string
	TargetShiftNewOwner    string
}

// SwapTransition is the computed outcome of a swap response or decision.
// Exchange is non-nil only on final approval.
type SwapTransition struct {
	FromStatus domain.SwapStatus
	ToStatus   domain.SwapStatus
	Exchange   *ShiftExchange
}

// Apply stamps the transition onto an in-memory request record.
func (t SwapTransition) Apply(req *domain.SwapRequest) {
	req.Status = t.ToStatus
}

// NewLeaveRequest validates the date range and computes the initial state of a
// leave request. When autoApprove is set the request is born fully approved
// with both decision timestamps equal to the creation instant, skipping both
// review stages. The flag is whatever value was current at call time; it is
// never applied retroactively.
func NewLeaveRequest(ownerID string, leaveType domain.LeaveType, start, end time.Time, notes string, autoApprove bool, now time.Time) (domain.LeaveRequest, error) {
	if end.Before(start) {
		return domain.LeaveRequest{}, ErrInvalidRange
	}

	req := domain.LeaveRequest{
		OwnerID:   ownerID,
		LeaveType: leaveType,
		StartDate: start,
		EndDate:   end,
		Notes:     notes,
		Status:    domain.LeaveStatusPendingTeamLead,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if autoApprove {
		tl, mgr := now, now
		req.Status = domain.LeaveStatusApproved
		req.TeamLeadDecidedAt = &tl
		req.ManagerDecidedAt = &mgr
	}
	return req, nil
}

// DecideLeave evaluates a reviewer verdict against the leave state table and
// returns the transition to persist. Team-lead review accepts either reviewer
// role; the final stage is reserved to workforce managers.
func DecideLeave(req domain.LeaveRequest, actor Actor, decision Decision, now time.Time) (LeaveTransition, error) {
	if !decision.IsValid() {
		return LeaveTransition{}, fmt.Errorf("workflow: unknown decision %q", decision)
	}
	if req.Status.IsTerminal() {
		return LeaveTransition{}, ErrTerminalState
	}

	switch req.Status {
	case domain.LeaveStatusPendingTeamLead:
		if !actor.Role.IsReviewer() {
			return LeaveTransition{}, ErrUnauthorized
		}
		to := domain.LeaveStatusPendingWorkforceManager
		if decision == DecisionReject {
			to = domain.LeaveStatusRejected
		}
		return LeaveTransition{FromStatus: req.Status, ToStatus: to, Stage: StageTeamLead, DecidedAt: now}, nil
	case domain.LeaveStatusPendingWorkforceManager:
		if actor.Role != domain.RoleWorkforceManager {
			return LeaveTransition{}, ErrUnauthorized
		}
		to := domain.LeaveStatusApproved
		if decision == DecisionReject {
			to = domain.LeaveStatusRejected
		}
		return LeaveTransition{FromStatus: req.Status, ToStatus: to, Stage: StageWorkforceManager, DecidedAt: now}, nil
	default:
		return LeaveTransition{}, fmt.Errorf("workflow: unknown leave status %q", req.Status)
	}
}

// NewSwapRequest validates both sides of a proposed exchange and snapshots the
// shifts into the new request so later mutations of the shift records do not
// rewrite what was asked. Past shifts cannot be swapped.
func NewSwapRequest(requesterID, targetID string, requesterShift, targetShift domain.Shift, now time.Time) (domain.SwapRequest, error) {
	if requesterID == targetID {
		return domain.SwapRequest{}, ErrInvalidTarget
	}
	if requesterShift.EmployeeID != requesterID || targetShift.EmployeeID != targetID {
		return domain.SwapRequest{}, ErrInvalidShift
	}
	today := dateOnly(now)
	if dateOnly(requesterShift.Date).Before(today) || dateOnly(targetShift.Date).Before(today) {
		return domain.SwapRequest{}, ErrInvalidShift
	}

	return domain.SwapRequest{
		RequesterID:        requesterID,
		TargetID:           targetID,
		RequesterShiftID:   requesterShift.ID,
		TargetShiftID:      targetShift.ID,
		RequesterShiftDate: requesterShift.Date,
		RequesterShiftType: requesterShift.Type,
		TargetShiftDate:    targetShift.Date,
		TargetShiftType:    targetShift.Type,
		Status:             domain.SwapStatusPendingAcceptance,
		CreatedAt:          now,
		UpdatedAt:          now,
	}, nil
}

// RespondToSwap records the target colleague's answer. Only the target may
// respond; acceptance forwards the request to reviewer approval, declining
// finalizes it.
func RespondToSwap(req domain.SwapRequest, actorID string, accept bool) (SwapTransition, error) {
	if req.Status.IsTerminal() {
		return SwapTransition{}, ErrTerminalState
	}
	if req.Status != domain.SwapStatusPendingAcceptance {
		return SwapTransition{}, ErrInvalidTransition
	}
	if actorID != req.TargetID {
		return SwapTransition{}, ErrUnauthorized
	}

	to := domain.SwapStatusPendingApproval
	if !accept {
		to = domain.SwapStatusDeclined
	}
	return SwapTransition{FromStatus: req.Status, ToStatus: to}, nil
}

// DecideSwap evaluates a reviewer verdict on an accepted swap. Approval
// carries the shift-ownership exchange; because a terminal request can never
// transition again, the exchange is computed at most once per request.
func DecideSwap(req domain.SwapRequest, actor Actor, decision Decision) (SwapTransition, error) {
	if !decision.IsValid() {
		return SwapTransition{}, fmt.Errorf("workflow: unknown decision %q", decision)
	}
	if req.Status.IsTerminal() {
		return SwapTransition{}, ErrTerminalState
	}
	if req.Status != domain.SwapStatusPendingApproval {
		return SwapTransition{}, ErrInvalidTransition
	}
	if !actor.Role.IsReviewer() {
		return SwapTransition{}, ErrUnauthorized
	}

	if decision == DecisionReject {
		return SwapTransition{FromStatus: req.Status, ToStatus: domain.SwapStatusRejected}, nil
	}
	return SwapTransition{
		FromStatus: req.Status,
		ToStatus:   domain.SwapStatusApproved,
		Exchange: &ShiftExchange{
			RequesterShiftID:       req.RequesterShiftID,
			RequesterShiftNewOwner: req.TargetID,
			TargetShiftID:          req.TargetShiftID,
			TargetShiftNewOwner:    req.RequesterID,
		},
	}, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
