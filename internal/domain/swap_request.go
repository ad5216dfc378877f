package domain

import "time"

// SwapStatus enumerates lifecycle states for shift-swap requests.
type SwapStatus string

const (
	SwapStatusPendingAcceptance SwapStatus = "pending_acceptance"
	SwapStatusPendingApproval   SwapStatus = "pending_approval"
	SwapStatusApproved          SwapStatus = "approved"
	SwapStatusRejected          SwapStatus = "rejected"
	SwapStatusDeclined          SwapStatus = "declined"
)

// IsTerminal reports whether no further transitions are allowed.
func (s SwapStatus) IsTerminal() bool {
	return s == SwapStatusApproved || s == SwapStatusRejected || s == SwapStatusDeclined
}

// SwapRequest asks a colleague to exchange shifts. The shift date and type of
// both sides are snapshotted at creation so the request renders the original
// assignments even after an executed swap mutates the shift records.
type SwapRequest struct {
	ID                 string
	RequesterID        string
	TargetID           string
	RequesterShiftID   string
	TargetShiftID      string
	RequesterShiftDate time.Time
	RequesterShiftType ShiftType
	TargetShiftDate    time.Time
	TargetShiftType    ShiftType
	Status             SwapStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
