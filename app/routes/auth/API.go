package auth

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"qr-attendance/app/services"
	"qr-attendance/app/session"
)

const (
	msgLoginFailed = "Correo o contraseña incorrectos"
	msgLoggedOut   = "Has cerrado sesión exitosamente"
)

type loginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// LoginAPI checks the submitted credentials and always redirects home; the
// outcome is reported through a flash message.
func LoginAPI(svc *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var form loginForm
		if err := c.BodyParser(&form); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid login form")
		}

		sess := session.FromCtx(c)
		user, err := svc.Login(c.UserContext(), form.Email, form.Password)
		if err != nil {
			if errors.Is(err, services.ErrAuthenticationFailed) {
				sess.AddFlash(session.Danger, msgLoginFailed)
				return c.Redirect("/")
			}
			return err
		}

		if err := sess.SetUser(user.ID, user.Name); err != nil {
			return err
		}
		sess.AddFlash(session.Success, fmt.Sprintf("¡Bienvenido, %s!", user.Name))
		return c.Redirect("/")
	}
}

// LogoutAPI clears the session whether or not anyone is logged in.
func LogoutAPI(c *fiber.Ctx) error {
	sess := session.FromCtx(c)
	if err := sess.Clear(); err != nil {
		return err
	}
	sess.AddFlash(session.Info, msgLoggedOut)
	return c.Redirect("/")
}
