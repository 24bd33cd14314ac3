package attendance

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"qr-attendance/app/services"
	"qr-attendance/app/session"
)

const (
	msgRegistered  = "Asistencia registrada correctamente"
	msgInvalidCode = "Código QR inválido"
)

type scanForm struct {
	QRCode string `form:"qr_code"`
}

func RegisterAttendanceAPI(svc *services.AttendanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var form scanForm
		if err := c.BodyParser(&form); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid attendance form")
		}

		sess := session.FromCtx(c)
		if _, err := svc.Register(c.UserContext(), form.QRCode); err != nil {
			if errors.Is(err, services.ErrInvalidCode) {
				sess.AddFlash(session.Danger, msgInvalidCode)
				return c.Redirect("/")
			}
			return err
		}

		sess.AddFlash(session.Success, msgRegistered)
		return c.Redirect("/")
	}
}
