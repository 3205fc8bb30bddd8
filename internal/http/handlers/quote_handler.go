package handlers

import (
	"freshfold/internal/services"
	"freshfold/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type QuoteHandler struct {
	Catalog *services.CatalogService
}

// Quote prices a weight against a service's per-kg rate for the booking
// form's live total. Unparsable weight quotes 0 rather than erroring so the
// form can poll while the customer types.
func (h *QuoteHandler) Quote(c *fiber.Ctx) error {
	serviceID, ok := validate.ID(c.Query("serviceId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing serviceId",
		})
	}
	svc, err := h.Catalog.GetService(serviceID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown service",
		})
	}

	total := services.QuoteFromInput(c.Query("weight"), svc.PricePerKg)
	return c.JSON(fiber.Map{
		"serviceId": svc.ID,
		"perKg":     svc.PricePerKg,
		"total":     total,
	})
}
