package handlers

import (
	"errors"
	"time"

	"freshfold/internal/domain"
	applog "freshfold/internal/log"
	"freshfold/internal/repos"
	"freshfold/internal/services"
	"freshfold/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type BookingHandler struct {
	Bookings *services.BookingService
	Catalog  *services.CatalogService
	Profiles *repos.ProfileRepo
}

// Form renders the booking form for one service, with the pickup address
// pre-filled from the customer's profile when available.
func (h *BookingHandler) Form(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "service"})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This service is not available"})
	}
	svc, err := h.Catalog.GetService(id)
	if err != nil || !svc.Active {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This service is not available"})
	}

	u, _ := c.Locals("user").(*domain.User)
	address := ""
	if u != nil {
		if p, err := h.Profiles.ByID(u.ID); err == nil {
			address = p.Address
		}
	}

	return render(c, "book", fiber.Map{
		"Service": svc,
		"Address": address,
		"MinDate": time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
	})
}

// Create accepts the booking form. A validation failure re-renders the form
// with exactly one inline message; nothing is written in that case.
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	u, _ := c.Locals("user").(*domain.User)
	if u == nil {
		return c.Redirect("/login")
	}

	serviceID, ok := validate.ID(c.FormValue("service_id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "service_id"})
		return c.Status(fiber.StatusBadRequest).SendString("invalid service")
	}

	in := services.BookingInput{
		Weight:     c.FormValue("weight"),
		Address:    c.FormValue("address"),
		PickupDate: c.FormValue("pickup_date"),
		Notes:      c.FormValue("notes"),
	}

	bookingID, err := h.Bookings.Create(u.ID, serviceID, in, time.Now())
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			applog.Security(c, "booking.validation.fail", map[string]any{"service": serviceID, "msg": verr.Msg})
			svc, gerr := h.Catalog.GetService(serviceID)
			if gerr != nil {
				return c.Status(fiber.StatusBadRequest).SendString(verr.Msg)
			}
			return c.Status(fiber.StatusBadRequest).Render("book", fiber.Map{
				"Service": svc,
				"Address": in.Address,
				"MinDate": time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
				"Err":     verr.Msg,
			})
		}
		applog.Error(c, "booking.create.fail", err, map[string]any{"service": serviceID})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not create booking. Please try again."})
	}

	applog.Audit(c, "booking.create", map[string]any{"booking_id": bookingID, "service": serviceID})
	return c.Redirect("/dashboard")
}

// Dashboard lists the customer's own bookings, newest first.
func (h *BookingHandler) Dashboard(c *fiber.Ctx) error {
	u, _ := c.Locals("user").(*domain.User)
	if u == nil {
		return c.Redirect("/login")
	}
	rows, err := h.Bookings.ListForUser(u.ID)
	if err != nil {
		applog.Error(c, "dashboard.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load your bookings"})
	}
	return render(c, "dashboard", fiber.Map{"Bookings": rows})
}
