package service

import (
	"context"
	"errors"
	"time"

	"github.com/AhmedEssamEsmail/SwapTool/internal/domain"
	"github.com/AhmedEssamEsmail/SwapTool/internal/repository"
	"github.com/AhmedEssamEsmail/SwapTool/internal/workflow"
	"github.com/AhmedEssamEsmail/SwapTool/pkg/util"
)

// ScheduleService manages the shift roster swap requests draw from.
type ScheduleService struct {
	shifts    repository.ShiftRepository
	employees repository.EmployeeRepository
}

// ScheduleDependencies bundles requirements for the schedule service.
type ScheduleDependencies struct {
	ShiftRepo    repository.ShiftRepository
	EmployeeRepo repository.EmployeeRepository
}

// ShiftCreateInput describes a roster assignment.
type ShiftCreateInput struct {
	EmployeeID string
	Date       time.Time
	Type       domain.ShiftType
}

// ShiftUpdateInput carries optional roster mutations.
type ShiftUpdateInput struct {
	Date *time.Time
	Type *domain.ShiftType
}

// ScheduleFilter describes roster listing parameters.
type ScheduleFilter struct {
	EmployeeID *string
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

// NewScheduleService constructs the service.
func NewScheduleService(deps ScheduleDependencies) *ScheduleService {
	return &ScheduleService{
		shifts:    deps.ShiftRepo,
		employees: deps.EmployeeRepo,
	}
}

// AssignShift adds a roster entry. One shift per employee per date.
func (s *ScheduleService) AssignShift(ctx context.Context, actor workflow.Actor, input ShiftCreateInput) (*domain.Shift, error) {
	if actor.Role != domain.RoleWorkforceManager {
		return nil, util.NewForbidden("workforce manager role required")
	}
	if !input.Type.IsValid() {
		return nil, util.NewValidationError("unknown shift type", map[string]any{"shift_type": input.Type})
	}

	employee, err := s.employees.GetByID(ctx, input.EmployeeID)
	if err != nil {
		return nil, mapRepoError(err, "employee")
	}
	if !employee.Active {
		return nil, util.NewValidationError("employee is deactivated", nil)
	}

	shift := &domain.Shift{
		EmployeeID: input.EmployeeID,
		Date:       input.Date,
		Type:       input.Type,
	}
	if err := s.shifts.Create(ctx, shift); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, util.NewConflict("employee already has a shift on that date", nil)
		}
		return nil, err
	}
	return shift, nil
}

// UpdateShift edits a roster entry's date or type.
func (s *ScheduleService) UpdateShift(ctx context.Context, actor workflow.Actor, id string, input ShiftUpdateInput) (*domain.Shift, error) {
	if actor.Role != domain.RoleWorkforceManager {
		return nil, util.NewForbidden("workforce manager role required")
	}

	shift, err := s.shifts.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "shift")
	}

	if input.Date != nil {
		shift.Date = *input.Date
	}
	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, util.NewValidationError("unknown shift type", map[string]any{"shift_type": *input.Type})
		}
		shift.Type = *input.Type
	}

	if err := s.shifts.Update(ctx, shift); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, util.NewConflict("employee already has a shift on that date", nil)
		}
		return nil, mapRepoError(err, "shift")
	}
	return shift, nil
}

// RemoveShift deletes a roster entry.
func (s *ScheduleService) RemoveShift(ctx context.Context, actor workflow.Actor, id string) error {
	if actor.Role != domain.RoleWorkforceManager {
		return util.NewForbidden("workforce manager role required")
	}
	if err := s.shifts.Delete(ctx, id); err != nil {
		return mapRepoError(err, "shift")
	}
	return nil
}

// ListSchedule returns roster entries matching the filter.
func (s *ScheduleService) ListSchedule(ctx context.Context, filter ScheduleFilter) ([]domain.Shift, error) {
	return s.shifts.List(ctx, repository.ShiftFilter{
		EmployeeID: filter.EmployeeID,
		From:       filter.From,
		To:         filter.To,
		Limit:      filter.Limit,
		Offset:     filter.Offset,
	})
}

// ListEmployeeShifts returns one employee's roster entries in a date window.
func (s *ScheduleService) ListEmployeeShifts(ctx context.Context, employeeID string, from, to *time.Time) ([]domain.Shift, error) {
	return s.shifts.List(ctx, repository.ShiftFilter{
		EmployeeID: &employeeID,
		From:       from,
		To:         to,
	})
}
