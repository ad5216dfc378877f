package dto

import (
	"time"

	"github.com/AhmedEssamEsmail/SwapTool/internal/domain"
)

// CreateSwapRequest payload.
type CreateSwapRequest struct {
	TargetID         string `json:"target_id"`
	RequesterShiftID string `json:"requester_shift_id"`
	TargetShiftID    string `json:"target_shift_id"`
}

// RespondSwapRequest carries the target's accept or decline.
type RespondSwapRequest struct {
	Accept *bool `json:"accept"`
}

// SwapRequestResponse is the full swap request view. The shift snapshot
// fields reflect the shifts as they were at creation time.
type SwapRequestResponse struct {
	ID                 string            `json:"id"`
	RequesterID        string            `json:"requester_id"`
	TargetID           string            `json:"target_id"`
	RequesterShiftID   string            `json:"requester_shift_id"`
	TargetShiftID      string            `json:"target_shift_id"`
	RequesterShiftDate string            `json:"requester_shift_date"`
	RequesterShiftType domain.ShiftType  `json:"requester_shift_type"`
	TargetShiftDate    string            `json:"target_shift_date"`
	TargetShiftType    domain.ShiftType  `json:"target_shift_type"`
	Status             domain.SwapStatus `json:"status"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}
