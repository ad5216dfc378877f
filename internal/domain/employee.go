package domain

import "time"

// EmployeeRole enumerates workforce roles used for authorization gating.
type EmployeeRole string

const (
	RoleAgent            EmployeeRole = "agent"
	RoleTeamLead         EmployeeRole = "team_lead"
	RoleWorkforceManager EmployeeRole = "workforce_manager"
)

// IsValid reports whether the role is one of the enumerated values.
func (r EmployeeRole) IsValid() bool {
	switch r {
	case RoleAgent, RoleTeamLead, RoleWorkforceManager:
		return true
	}
	return false
}

// IsReviewer reports whether the role may decide first-stage reviews.
func (r EmployeeRole) IsReviewer() bool {
	return r == RoleTeamLead || r == RoleWorkforceManager
}

// Employee models a member of the headcount directory. Employees are
// deactivated rather than deleted so historical requests keep resolving.
type Employee struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         EmployeeRole
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
