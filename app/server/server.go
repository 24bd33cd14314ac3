package server

import (
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/pkg/errors"

	"qr-attendance/app/config"
	"qr-attendance/app/models"
	"qr-attendance/app/routes/attendance"
	"qr-attendance/app/routes/auth"
	"qr-attendance/app/routes/home"
	"qr-attendance/app/services"
	"qr-attendance/app/session"
	"qr-attendance/app/templates"
)

// Store is everything the web front controller needs from storage.
type Store interface {
	services.UserRepository
	services.AttendanceRepository
}

// New builds the fiber app with every route wired to store.
func New(cfg *config.Config, store Store) *fiber.App {
	engine := html.NewFileSystem(http.FS(templates.FS), ".html")
	engine.Reload(cfg.Debug)

	app := fiber.New(fiber.Config{
		Views:                 engine,
		ViewsLayout:           "layouts/main",
		PassLocalsToViews:     true,
		ErrorHandler:          errorHandler,
		DisableStartupMessage: !cfg.Debug,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("AppName", cfg.AppName)
		return c.Next()
	})
	app.Use(session.Middleware(session.NewStore(cfg.Session)))

	authSvc := services.NewAuthService(store)
	attendanceSvc := services.NewAttendanceService(store, cfg.Attendance.CourseID, models.AttendanceStatus(cfg.Attendance.Status))

	// Routes
	home.SetupHomeRoutes(app)
	auth.SetupAuthRoutes(app, authSvc)
	attendance.SetupAttendanceRoutes(app, attendanceSvc)

	// Catch-all route for 404 errors (must be last)
	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	return app
}

// errorHandler renders the error page for anything a handler did not turn
// into a flash and redirect.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	data := fiber.Map{
		"ErrorCode":    code,
		"ErrorTitle":   "An Error Occurred",
		"ErrorMessage": err.Error(),
	}
	switch {
	case code == fiber.StatusNotFound:
		data["Title"] = "Página no encontrada"
		data["ErrorTitle"] = "Page Not Found"
	case code >= fiber.StatusInternalServerError:
		log.Printf("Error handling %s %s: %v", c.Method(), c.OriginalURL(), err)
		data["Title"] = "Error del servidor"
		data["ErrorTitle"] = "Internal Server Error"
		data["ErrorMessage"] = "We're experiencing technical difficulties. Please try again later."
	default:
		data["Title"] = "Error"
	}

	if renderErr := c.Status(code).Render("error", data); renderErr != nil {
		log.Printf("Failed to render error page: %v", renderErr)
		return c.Status(code).SendString(http.StatusText(code))
	}
	return nil
}
