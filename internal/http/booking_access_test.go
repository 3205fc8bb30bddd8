package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	html "github.com/gofiber/template/html/v2"

	"freshfold/internal/http/handlers"
	"freshfold/internal/repos"
	"freshfold/internal/services"
)

func newBookingApp(t *testing.T) (*fiber.App, *repos.UserRepo) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo, Roles: repos.NewRoleRepo(db)}

	svcRepo := repos.NewServiceRepo(db)
	profileRepo := repos.NewProfileRepo(db)
	bookingSvc := services.NewBookingService(repos.NewBookingRepo(db), svcRepo, profileRepo)
	h := &handlers.BookingHandler{
		Bookings: bookingSvc,
		Catalog:  services.NewCatalogService(svcRepo),
		Profiles: profileRepo,
	}

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if u, err := authSvc.CurrentUser(sid); err == nil && u != nil {
				c.Locals("user", u)
			}
		}
		return c.Next()
	})
	app.Get("/book/:id", handlers.RequireUser(authSvc), h.Form)
	return app, userRepo
}

// The booking form requires a session; inactive services never render a form.
func TestBookingFormAccess(t *testing.T) {
	app, userRepo := newBookingApp(t)

	// Anonymous -> redirect to login
	resp, err := app.Test(httptest.NewRequest("GET", "/book/wash-fold", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect, got %d", resp.StatusCode)
	}

	// Logged in -> form renders
	_ = userRepo.BindSession("sid-asha", "u-asha")
	req := httptest.NewRequest("GET", "/book/wash-fold", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "sid-asha"})
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for active service, got %d", resp.StatusCode)
	}

	// Inactive service -> 404
	req = httptest.NewRequest("GET", "/book/express-wash", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "sid-asha"})
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for inactive service, got %d", resp.StatusCode)
	}
}
