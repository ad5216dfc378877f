package dto

import (
	"time"

	"github.com/AhmedEssamEsmail/SwapTool/internal/domain"
)

// CreateShiftRequest payload. Date uses YYYY-MM-DD.
type CreateShiftRequest struct {
	EmployeeID string           `json:"employee_id"`
	Date       string           `json:"date"`
	Type       domain.ShiftType `json:"type"`
}

// UpdateShiftRequest carries optional roster mutations.
type UpdateShiftRequest struct {
	Date *string           `json:"date"`
	Type *domain.ShiftType `json:"type"`
}

// ShiftResponse is one roster entry. Date uses YYYY-MM-DD.
type ShiftResponse struct {
	ID         string           `json:"id"`
	EmployeeID string           `json:"employee_id"`
	Date       string           `json:"date"`
	Type       domain.ShiftType `json:"type"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}
