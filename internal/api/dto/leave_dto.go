package dto

import (
	"time"

	"github.com/AhmedEssamEsmail/SwapTool/internal/domain"
)

// CreateLeaveRequest payload. Dates use YYYY-MM-DD and are inclusive.
type CreateLeaveRequest struct {
	LeaveType domain.LeaveType `json:"leave_type"`
	StartDate string           `json:"start_date"`
	EndDate   string           `json:"end_date"`
	Notes     string           `json:"notes"`
}

// DecisionRequest carries a reviewer verdict for leave or swap requests.
type DecisionRequest struct {
	Decision string `json:"decision"`
}

// LeaveRequestResponse is the full leave request view.
type LeaveRequestResponse struct {
	ID                string             `json:"id"`
	OwnerID           string             `json:"owner_id"`
	LeaveType         domain.LeaveType   `json:"leave_type"`
	StartDate         string             `json:"start_date"`
	EndDate           string             `json:"end_date"`
	Notes             string             `json:"notes,omitempty"`
	Status            domain.LeaveStatus `json:"status"`
	TeamLeadDecidedAt *time.Time         `json:"team_lead_decided_at"`
	ManagerDecidedAt  *time.Time         `json:"manager_decided_at"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}
