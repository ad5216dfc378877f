package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/AhmedEssamEsmail/SwapTool/internal/auth"
	"github.com/AhmedEssamEsmail/SwapTool/pkg/util"
)

// dateLayout is the wire format for scheduling dates. Dates are inclusive
// calendar days, not instants.
const dateLayout = "2006-01-02"

func parseDate(val string) (time.Time, error) {
	t, err := time.Parse(dateLayout, val)
	if err != nil {
		return time.Time{}, util.NewValidationError("invalid date, expected YYYY-MM-DD", map[string]any{"value": val})
	}
	return t, nil
}

func parseOptionalDate(val string) *time.Time {
	if val == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, val)
	if err != nil {
		return nil
	}
	return &t
}

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

// parsePagination reads page/page_size into limit and offset.
func parsePagination(c *fiber.Ctx) (limit, offset int) {
	page := parseInt(c.Query("page"), 1)
	pageSize := parseInt(c.Query("page_size"), 20)
	return pageSize, (page - 1) * pageSize
}

func currentPrincipal(c *fiber.Ctx) (*auth.Principal, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return nil, util.NewUnauthorized("authentication required")
	}
	return principal, nil
}
