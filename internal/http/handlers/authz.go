package handlers

import (
	applog "freshfold/internal/log"
	"freshfold/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireUser enforces that a user is logged in; otherwise redirect to login.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/login")
		}
		u, err := auth.CurrentUser(sid)
		if err != nil || u == nil {
			return c.Redirect("/login")
		}
		c.Locals("user", u)
		return c.Next()
	}
}

// RequireAdmin resolves the admin role on every request. A role lookup
// failure denies access the same as a missing role row (fail closed), but
// is logged as an error rather than a plain denial.
func RequireAdmin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/login")
		}
		u, err := auth.CurrentUser(sid)
		if err != nil || u == nil {
			return c.Redirect("/login")
		}
		ok, err := auth.IsAdmin(u.ID)
		if err != nil {
			applog.Error(c, "authz.role.lookup", err, map[string]any{"user_id": u.ID})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Access denied"})
		}
		if !ok {
			applog.Security(c, "access.denied.admin", map[string]any{"user_id": u.ID})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Access denied. Admin privileges required."})
		}
		c.Locals("user", u)
		c.Locals("is_admin", true)
		return c.Next()
	}
}
