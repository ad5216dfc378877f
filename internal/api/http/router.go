package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AhmedEssamEsmail/SwapTool/internal/api/http/handlers"
	"github.com/AhmedEssamEsmail/SwapTool/internal/auth"
	"github.com/AhmedEssamEsmail/SwapTool/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Employees      *handlers.EmployeesHandler
	Shifts         *handlers.ShiftsHandler
	Leaves         *handlers.LeaveRequestsHandler
	Swaps          *handlers.SwapRequestsHandler
	Settings       *handlers.SettingsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Literal segments (mine, pending) are
// registered before :id params so fiber does not capture them.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/login", cfg.Auth.Login)

	authed := app.Group("", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	wfmOnly := auth.RequireRole(domain.RoleWorkforceManager)
	reviewerOnly := auth.RequireReviewer()

	authed.Post("/auth/password/change", cfg.Auth.ChangePassword)

	employees := authed.Group("/employees")
	employees.Get("", cfg.Employees.ListEmployees)
	employees.Post("", wfmOnly, cfg.Employees.CreateEmployee)
	employees.Get("/:id", cfg.Employees.GetEmployee)
	employees.Patch("/:id", wfmOnly, cfg.Employees.UpdateEmployee)

	shifts := authed.Group("/shifts")
	shifts.Get("", cfg.Shifts.ListShifts)
	shifts.Get("/mine", cfg.Shifts.ListMyShifts)
	shifts.Post("", wfmOnly, cfg.Shifts.CreateShift)
	shifts.Put("/:id", wfmOnly, cfg.Shifts.UpdateShift)
	shifts.Delete("/:id", wfmOnly, cfg.Shifts.DeleteShift)

	leaves := authed.Group("/leave-requests")
	leaves.Post("", cfg.Leaves.CreateLeaveRequest)
	leaves.Get("/mine", cfg.Leaves.ListMyLeaveRequests)
	leaves.Get("/pending", reviewerOnly, cfg.Leaves.ListPendingLeaveRequests)
	leaves.Get("/:id", cfg.Leaves.GetLeaveRequest)
	leaves.Post("/:id/decision", reviewerOnly, cfg.Leaves.DecideLeaveRequest)

	swaps := authed.Group("/swap-requests")
	swaps.Post("", cfg.Swaps.CreateSwapRequest)
	swaps.Get("/mine", cfg.Swaps.ListMySwapRequests)
	swaps.Get("/pending", reviewerOnly, cfg.Swaps.ListPendingSwapRequests)
	swaps.Get("/:id", cfg.Swaps.GetSwapRequest)
	swaps.Post("/:id/response", cfg.Swaps.RespondSwapRequest)
	swaps.Post("/:id/decision", reviewerOnly, cfg.Swaps.DecideSwapRequest)

	settings := authed.Group("/settings")
	settings.Get("/auto-approve", cfg.Settings.GetAutoApprove)
	settings.Put("/auto-approve", wfmOnly, cfg.Settings.SetAutoApprove)
}
