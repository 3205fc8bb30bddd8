package handlers

import (
	applog "freshfold/internal/log"
	"freshfold/internal/services"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	Catalog *services.CatalogService
}

func (h *CatalogHandler) Home(c *fiber.Ctx) error {
	svcs, err := h.Catalog.ListActive()
	if err != nil {
		applog.Error(c, "catalog.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load services"})
	}
	return render(c, "home", fiber.Map{"Services": svcs})
}

func (h *CatalogHandler) Services(c *fiber.Ctx) error {
	svcs, err := h.Catalog.ListActive()
	if err != nil {
		applog.Error(c, "catalog.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load services"})
	}
	return render(c, "services", fiber.Map{"Services": svcs})
}
