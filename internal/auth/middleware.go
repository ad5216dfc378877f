package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/AhmedEssamEsmail/SwapTool/internal/domain"
	"github.com/AhmedEssamEsmail/SwapTool/internal/repository"
	"github.com/AhmedEssamEsmail/SwapTool/internal/workflow"
	"github.com/AhmedEssamEsmail/SwapTool/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated employee.
type Principal struct {
	Employee *domain.Employee
}

// Actor converts the principal into a workflow actor.
func (p *Principal) Actor() workflow.Actor {
	return workflow.Actor{EmployeeID: p.Employee.ID, Role: p.Employee.Role}
}

// AuthMiddleware validates bearer tokens and loads the employee record, so
// deactivations take effect on the next request even with a live token.
type AuthMiddleware struct {
	tokens    *TokenManager
	employees repository.EmployeeRepository
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, employees repository.EmployeeRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, employees: employees}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return util.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return util.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return util.NewUnauthorized("invalid token")
	}

	employee, err := m.employees.GetByID(c.UserContext(), claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return util.NewUnauthorized("employee not found")
		}
		return util.NewInternalError(err)
	}
	if !employee.Active {
		return util.NewUnauthorized("employee deactivated")
	}

	c.Locals(principalKey, &Principal{Employee: employee})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated employee.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
