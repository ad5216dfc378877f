package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/AhmedEssamEsmail/SwapTool/internal/api/dto"
	"github.com/AhmedEssamEsmail/SwapTool/internal/domain"
	"github.com/AhmedEssamEsmail/SwapTool/internal/service"
	"github.com/AhmedEssamEsmail/SwapTool/pkg/util"
)

// EmployeesHandler manages headcount directory endpoints.
type EmployeesHandler struct {
	service *service.DirectoryService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(directoryService *service.DirectoryService) *EmployeesHandler {
	return &EmployeesHandler{service: directoryService}
}

// ListEmployees GET /employees.
func (h *EmployeesHandler) ListEmployees(c *fiber.Ctx) error {
	filter := service.DirectoryFilter{}
	if roleStr := c.Query("role"); roleStr != "" {
		role := domain.EmployeeRole(strings.TrimSpace(roleStr))
		if !role.IsValid() {
			return util.NewValidationError("unknown role", map[string]any{"role": roleStr})
		}
		filter.Role = &role
	}
	if activeStr := c.Query("active"); activeStr != "" {
		active := activeStr == "true"
		filter.Active = &active
	}
	filter.Limit, filter.Offset = parsePagination(c)

	employees, err := h.service.ListEmployees(c.UserContext(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		items = append(items, employeeResponse(&employees[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetEmployee GET /employees/:id.
func (h *EmployeesHandler) GetEmployee(c *fiber.Ctx) error {
	employee, err := h.service.GetEmployee(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": employeeResponse(employee)})
}

// CreateEmployee POST /employees.
func (h *EmployeesHandler) CreateEmployee(c *fiber.Ctx) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" || req.Role == "" {
		return util.NewValidationError("name, email, password, role required", nil)
	}

	employee, err := h.service.CreateEmployee(c.UserContext(), principal.Actor(), service.EmployeeCreateInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": employeeResponse(employee)})
}

// UpdateEmployee PATCH /employees/:id.
func (h *EmployeesHandler) UpdateEmployee(c *fiber.Ctx) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.Name == nil && req.Role == nil && req.Active == nil {
		return util.NewValidationError("nothing to update", nil)
	}

	employee, err := h.service.UpdateEmployee(c.UserContext(), principal.Actor(), c.Params("id"), service.EmployeeUpdateInput{
		Name:   req.Name,
		Role:   req.Role,
		Active: req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": employeeResponse(employee)})
}

func employeeResponse(employee *domain.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:        employee.ID,
		Name:      employee.Name,
		Email:     employee.Email,
		Role:      employee.Role,
		Active:    employee.Active,
		CreatedAt: employee.CreatedAt,
		UpdatedAt: employee.UpdatedAt,
	}
}
