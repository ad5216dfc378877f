package service

import (
	"context"
	"errors"
	"time"

	"github.com/AhmedEssamEsmail/SwapTool/internal/auth"
	"github.com/AhmedEssamEsmail/SwapTool/internal/config"
	"github.com/AhmedEssamEsmail/SwapTool/internal/domain"
	"github.com/AhmedEssamEsmail/SwapTool/internal/repository"
	"github.com/AhmedEssamEsmail/SwapTool/pkg/util"
)

// AuthService coordinates login and password changes.
type AuthService struct {
	employees  repository.EmployeeRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	EmployeeRepo repository.EmployeeRepository
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		employees:  deps.EmployeeRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Login authenticates an employee and issues a role-bearing token. Unknown
// emails and wrong passwords report the same way.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Employee, string, time.Time, error) {
	employee, err := s.employees.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", time.Time{}, util.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, err
	}
	if !employee.Active {
		return nil, "", time.Time{}, util.NewUnauthorized("employee deactivated")
	}
	if err := auth.ComparePassword(employee.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, util.NewUnauthorized("invalid credentials")
	}

	token, exp, err := s.tokenMgr.GenerateToken(employee)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return employee, token, exp, nil
}

// ChangePassword verifies the current password before storing the new hash.
func (s *AuthService) ChangePassword(ctx context.Context, employeeID, currentPassword, newPassword string) error {
	if err := auth.ValidatePassword(newPassword); err != nil {
		return util.NewValidationError(err.Error(), nil)
	}

	employee, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return mapRepoError(err, "employee")
	}
	if err := auth.ComparePassword(employee.PasswordHash, currentPassword); err != nil {
		return util.NewUnauthorized("invalid credentials")
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	employee.PasswordHash = hash
	if err := s.employees.Update(ctx, employee); err != nil {
		return mapRepoError(err, "employee")
	}
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
