package home

import (
	"github.com/gofiber/fiber/v2"

	"qr-attendance/app/session"
)

func SetupHomeRoutes(app *fiber.App) {
	app.Get("/", IndexPage)
}

// IndexPage renders the landing page with the scan form.
func IndexPage(c *fiber.Ctx) error {
	return c.Render("index", session.FromCtx(c).PageData(fiber.Map{
		"Title": "Inicio",
	}))
}
