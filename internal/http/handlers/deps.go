package handlers

import (
	"freshfold/internal/config"
	"freshfold/internal/repos"
	"freshfold/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	CatalogHandler *CatalogHandler
	BookingHandler *BookingHandler
	QuoteHandler   *QuoteHandler
	AdminHandler   *AdminHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, auth *services.AuthService) *Deps {
	svcRepo := repos.NewServiceRepo(db)
	bookingRepo := repos.NewBookingRepo(db)
	profileRepo := repos.NewProfileRepo(db)

	catalogSvc := services.NewCatalogService(svcRepo)
	bookingSvc := services.NewBookingService(bookingRepo, svcRepo, profileRepo)

	return &Deps{
		CatalogHandler: &CatalogHandler{Catalog: catalogSvc},
		BookingHandler: &BookingHandler{Bookings: bookingSvc, Catalog: catalogSvc, Profiles: profileRepo},
		QuoteHandler:   &QuoteHandler{Catalog: catalogSvc},
		AdminHandler:   &AdminHandler{Bookings: bookingSvc},
	}
}
