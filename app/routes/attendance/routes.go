package attendance

import (
	"github.com/gofiber/fiber/v2"

	"qr-attendance/app/services"
)

// SetupAttendanceRoutes registers the scan endpoint. It is reachable without
// a session; gating it behind login is an open gap.
func SetupAttendanceRoutes(app *fiber.App, svc *services.AttendanceService) {
	app.Post("/registrar_asistencia", RegisterAttendanceAPI(svc))
}
