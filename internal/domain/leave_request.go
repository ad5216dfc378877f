package domain

import "time"

// LeaveType enumerates the fixed leave categories.
type LeaveType string

const (
	LeaveTypeSick          LeaveType = "sick"
	LeaveTypeAnnual        LeaveType = "annual"
	LeaveTypeCasual        LeaveType = "casual"
	LeaveTypePublicHoliday LeaveType = "public_holiday"
	LeaveTypeBereavement   LeaveType = "bereavement"
)

var validLeaveTypes = map[LeaveType]bool{
	LeaveTypeSick:          true,
	LeaveTypeAnnual:        true,
	LeaveTypeCasual:        true,
	LeaveTypePublicHoliday: true,
	LeaveTypeBereavement:   true,
}

// IsValid reports whether the leave type is one of the fixed categories.
func (t LeaveType) IsValid() bool {
	return validLeaveTypes[t]
}

// LeaveStatus enumerates lifecycle states for leave requests.
type LeaveStatus string

const (
	LeaveStatusPendingTeamLead         LeaveStatus = "pending_team_lead"
	LeaveStatusPendingWorkforceManager LeaveStatus = "pending_workforce_manager"
	LeaveStatusApproved                LeaveStatus = "approved"
	LeaveStatusRejected                LeaveStatus = "rejected"
)

// IsTerminal reports whether no further transitions are allowed.
func (s LeaveStatus) IsTerminal() bool {
	return s == LeaveStatusApproved || s == LeaveStatusRejected
}

// LeaveRequest is the aggregate for time-off requests. Decision timestamps
// record when each review stage acted; a request is never physically deleted.
type LeaveRequest struct {
	ID                string
	OwnerID           string
	LeaveType         LeaveType
	StartDate         time.Time
	EndDate           time.Time
	Notes             string
	Status            LeaveStatus
	TeamLeadDecidedAt *time.Time
	ManagerDecidedAt  *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
