package handlers

import (
	"errors"

	"freshfold/internal/domain"
	applog "freshfold/internal/log"
	"freshfold/internal/services"
	"freshfold/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Bookings *services.BookingService
}

// GET /admin
func (h *AdminHandler) BookingsPage(c *fiber.Ctx) error {
	rows, err := h.Bookings.ListAll(100)
	if err != nil {
		applog.Error(c, "admin.bookings.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load bookings"})
	}
	return render(c, "admin_bookings", fiber.Map{
		"Bookings": rows,
		"Statuses": []domain.Status{domain.StatusPending, domain.StatusProcessing, domain.StatusCompleted, domain.StatusCancelled},
	})
}

// POST /admin/bookings/:id/status
func (h *AdminHandler) UpdateStatus(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing booking id")
	}
	status, ok := domain.ParseStatus(c.FormValue("status"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "status"})
		return c.Status(400).SendString("unknown status")
	}

	if err := h.Bookings.UpdateStatus(id, status); err != nil {
		var terr *domain.InvalidTransitionError
		if errors.As(err, &terr) {
			applog.Security(c, "admin.bookings.transition.reject", map[string]any{
				"booking_id": id, "from": string(terr.From), "to": string(terr.To),
			})
			return c.Status(fiber.StatusConflict).SendString(terr.Error())
		}
		applog.Error(c, "admin.bookings.update.fail", err, map[string]any{"booking_id": id})
		return c.Status(400).SendString("could not update status")
	}

	applog.Audit(c, "admin.bookings.update", map[string]any{"booking_id": id, "status": string(status)})
	return c.Redirect("/admin")
}
