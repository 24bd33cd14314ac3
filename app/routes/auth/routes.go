package auth

import (
	"github.com/gofiber/fiber/v2"

	"qr-attendance/app/services"
	"qr-attendance/app/session"
)

// SetupAuthRoutes registers login and logout. Neither route, nor any other,
// requires an active session.
func SetupAuthRoutes(app *fiber.App, svc *services.AuthService) {
	app.Get("/login", ShowLoginPage)
	app.Post("/login", LoginAPI(svc))
	app.Get("/logout", LogoutAPI)
}

func ShowLoginPage(c *fiber.Ctx) error {
	return c.Render("auth/login", session.FromCtx(c).PageData(fiber.Map{
		"Title": "Iniciar Sesión",
	}))
}
