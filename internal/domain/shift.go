package domain

import "time"

// ShiftType enumerates the scheduled assignment kinds for a working day.
type ShiftType string

const (
	ShiftTypeMorning ShiftType = "morning"
	ShiftTypeEvening ShiftType = "evening"
	ShiftTypeOff     ShiftType = "off"
)

// IsValid reports whether the shift type is one of the enumerated values.
func (t ShiftType) IsValid() bool {
	switch t {
	case ShiftTypeMorning, ShiftTypeEvening, ShiftTypeOff:
		return true
	}
	return false
}

// Shift is a single scheduled work assignment for one employee on one date.
// At most one shift exists per employee per date.
type Shift struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Type       ShiftType
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
