package service

import (
	"context"
	"errors"
	"strings"

	"github.com/AhmedEssamEsmail/SwapTool/internal/auth"
	"github.com/AhmedEssamEsmail/SwapTool/internal/config"
	"github.com/AhmedEssamEsmail/SwapTool/internal/domain"
	"github.com/AhmedEssamEsmail/SwapTool/internal/repository"
	"github.com/AhmedEssamEsmail/SwapTool/internal/workflow"
	"github.com/AhmedEssamEsmail/SwapTool/pkg/util"
)

// DirectoryService manages the headcount directory. Only workforce managers
// mutate it; employees are deactivated, never deleted.
type DirectoryService struct {
	employees  repository.EmployeeRepository
	bcryptCost int
}

// DirectoryDependencies bundles requirements for the directory service.
type DirectoryDependencies struct {
	EmployeeRepo repository.EmployeeRepository
	BcryptCost   int
}

// EmployeeCreateInput describes a new directory entry.
type EmployeeCreateInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.EmployeeRole
}

// EmployeeUpdateInput carries optional directory mutations.
type EmployeeUpdateInput struct {
	Name   *string
	Role   *domain.EmployeeRole
	Active *bool
}

// DirectoryFilter describes listing parameters.
type DirectoryFilter struct {
	Role   *domain.EmployeeRole
	Active *bool
	Limit  int
	Offset int
}

// NewDirectoryService constructs the service.
func NewDirectoryService(deps DirectoryDependencies) *DirectoryService {
	return &DirectoryService{
		employees:  deps.EmployeeRepo,
		bcryptCost: deps.BcryptCost,
	}
}

// ListEmployees returns directory entries matching the filter.
func (s *DirectoryService) ListEmployees(ctx context.Context, filter DirectoryFilter) ([]domain.Employee, error) {
	return s.employees.List(ctx, repository.EmployeeFilter{
		Role:   filter.Role,
		Active: filter.Active,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

// GetEmployee fetches a single directory entry.
func (s *DirectoryService) GetEmployee(ctx context.Context, id string) (*domain.Employee, error) {
	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "employee")
	}
	return employee, nil
}

// CreateEmployee adds a directory entry with an initial password.
func (s *DirectoryService) CreateEmployee(ctx context.Context, actor workflow.Actor, input EmployeeCreateInput) (*domain.Employee, error) {
	if actor.Role != domain.RoleWorkforceManager {
		return nil, util.NewForbidden("workforce manager role required")
	}
	if !input.Role.IsValid() {
		return nil, util.NewValidationError("unknown role", map[string]any{"role": input.Role})
	}
	if err := auth.ValidatePassword(input.Password); err != nil {
		return nil, util.NewValidationError(err.Error(), nil)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	employee := &domain.Employee{
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: hash,
		Role:         input.Role,
		Active:       true,
	}
	if err := s.employees.Create(ctx, employee); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, util.NewConflict("email already registered", nil)
		}
		return nil, err
	}
	return employee, nil
}

// EnsureBootstrapAdmin seeds the first workforce manager when the directory
// is empty. Without it a fresh deployment has no account able to create
// others. Returns true when an admin was created.
func (s *DirectoryService) EnsureBootstrapAdmin(ctx context.Context, cfg config.BootstrapConfig) (bool, error) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return false, nil
	}

	existing, err := s.employees.List(ctx, repository.EmployeeFilter{Limit: 1})
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		return false, nil
	}

	hash, err := auth.HashPassword(cfg.AdminPassword, s.bcryptCost)
	if err != nil {
		return false, err
	}
	admin := &domain.Employee{
		Name:         cfg.AdminName,
		Email:        strings.ToLower(strings.TrimSpace(cfg.AdminEmail)),
		PasswordHash: hash,
		Role:         domain.RoleWorkforceManager,
		Active:       true,
	}
	if err := s.employees.Create(ctx, admin); err != nil {
		// Two instances racing on first boot: the loser sees the winner's row.
		if errors.Is(err, repository.ErrConflict) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// UpdateEmployee applies partial mutations to a directory entry.
func (s *DirectoryService) UpdateEmployee(ctx context.Context, actor workflow.Actor, id string, input EmployeeUpdateInput) (*domain.Employee, error) {
	if actor.Role != domain.RoleWorkforceManager {
		return nil, util.NewForbidden("workforce manager role required")
	}

	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "employee")
	}

	if input.Name != nil {
		employee.Name = strings.TrimSpace(*input.Name)
	}
	if input.Role != nil {
		if !input.Role.IsValid() {
			return nil, util.NewValidationError("unknown role", map[string]any{"role": *input.Role})
		}
		employee.Role = *input.Role
	}
	if input.Active != nil {
		employee.Active = *input.Active
	}

	if err := s.employees.Update(ctx, employee); err != nil {
		return nil, mapRepoError(err, "employee")
	}
	return employee, nil
}
