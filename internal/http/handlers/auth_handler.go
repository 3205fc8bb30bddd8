package handlers

import (
	"time"

	"freshfold/internal/log"
	"freshfold/internal/services"
	"freshfold/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false, // set true behind HTTPS
		})
	}
	return sid
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email := c.FormValue("email")
	pass := c.FormValue("password")
	if _, ok := validate.Email(email); !ok {
		log.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "bad_format"})
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": c.Cookies("csrf_")})
	}
	if !validate.Password(pass) {
		log.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "bad_password_format"})
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": c.Cookies("csrf_")})
	}

	_, err := h.Auth.Login(sid, email, pass)
	if err != nil {
		log.Security(c, "auth.login.fail", map[string]any{"email": email})
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": c.Cookies("csrf_")})
	}

	log.Audit(c, "auth.login.success", map[string]any{"email": email})
	return c.Redirect("/dashboard")
}

func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	return render(c, "register", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	sid := ensureSID(c)

	email, ok := validate.Email(c.FormValue("email"))
	if !ok {
		return c.Status(400).Render("register", fiber.Map{"Err": "Enter a valid email address", "CSRFToken": c.Cookies("csrf_")})
	}
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		return c.Status(400).Render("register", fiber.Map{"Err": "Enter your name (up to 50 characters)", "CSRFToken": c.Cookies("csrf_")})
	}
	phone := c.FormValue("phone")
	if phone != "" {
		if phone, ok = validate.Phone(phone); !ok {
			return c.Status(400).Render("register", fiber.Map{"Err": "Enter a valid phone number", "CSRFToken": c.Cookies("csrf_")})
		}
	}
	if !validate.Password(c.FormValue("password")) {
		return c.Status(400).Render("register", fiber.Map{"Err": "Password must be 8-20 characters with upper, lower, digit and symbol", "CSRFToken": c.Cookies("csrf_")})
	}

	_, err := h.Auth.Register(sid, email, name, phone, c.FormValue("password"))
	if err != nil {
		if err == services.ErrEmailInUse {
			return c.Status(400).Render("register", fiber.Map{"Err": "Email is already registered", "CSRFToken": c.Cookies("csrf_")})
		}
		log.Error(c, "auth.register.fail", err, map[string]any{"email": email})
		return c.Status(500).Render("register", fiber.Map{"Err": "Could not create account. Please try again.", "CSRFToken": c.Cookies("csrf_")})
	}

	log.Audit(c, "auth.register.success", map[string]any{"email": email})
	return c.Redirect("/services")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.Logout(sid)
	// Expire cookie
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	log.Audit(c, "auth.logout", map[string]any{"sid": sid})
	return c.Redirect("/")
}
