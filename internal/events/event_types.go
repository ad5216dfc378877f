package events

import (
	"time"

	"github.com/AhmedEssamEsmail/SwapTool/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventLeaveRequestCreated  EventType = "leave_request_created"
	EventLeaveRequestDecided  EventType = "leave_request_decided"
	EventSwapRequestCreated   EventType = "swap_request_created"
	EventSwapRequestResponded EventType = "swap_request_responded"
	EventSwapRequestDecided   EventType = "swap_request_decided"
	EventAutoApproveChanged   EventType = "auto_approve_changed"
)

// Actor encapsulates who triggered an event.
type Actor struct {
	EmployeeID string              `json:"employee_id"`
	Role       domain.EmployeeRole `json:"role"`
}

// Event represents a domain event emitted by services. EntityID is the
// leave/swap request ID, or the setting key for setting events.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	EntityID  string      `json:"entity_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// LeaveRequestCreatedPayload payload.
type LeaveRequestCreatedPayload struct {
	OwnerID      string             `json:"owner_id"`
	LeaveType    domain.LeaveType   `json:"leave_type"`
	StartDate    time.Time          `json:"start_date"`
	EndDate      time.Time          `json:"end_date"`
	Status       domain.LeaveStatus `json:"status"`
	AutoApproved bool               `json:"auto_approved"`
}

// LeaveRequestDecidedPayload payload.
type LeaveRequestDecidedPayload struct {
	OwnerID   string             `json:"owner_id"`
	Decision  string             `json:"decision"`
	Stage     string             `json:"stage"`
	OldStatus domain.LeaveStatus `json:"old_status"`
	NewStatus domain.LeaveStatus `json:"new_status"`
}

// SwapRequestCreatedPayload payload.
type SwapRequestCreatedPayload struct {
	RequesterID        string    `json:"requester_id"`
	TargetID           string    `json:"target_id"`
	RequesterShiftDate time.Time `json:"requester_shift_date"`
	TargetShiftDate    time.Time `json:"target_shift_date"`
}

// SwapRequestRespondedPayload payload.
type SwapRequestRespondedPayload struct {
	RequesterID string            `json:"requester_id"`
	Accepted    bool              `json:"accepted"`
	NewStatus   domain.SwapStatus `json:"new_status"`
}

// SwapRequestDecidedPayload payload.
type SwapRequestDecidedPayload struct {
	RequesterID     string            `json:"requester_id"`
	TargetID        string            `json:"target_id"`
	Decision        string            `json:"decision"`
	OldStatus       domain.SwapStatus `json:"old_status"`
	NewStatus       domain.SwapStatus `json:"new_status"`
	ShiftsExchanged bool              `json:"shifts_exchanged"`
}

// AutoApproveChangedPayload payload.
type AutoApproveChangedPayload struct {
	Enabled bool `json:"enabled"`
}
