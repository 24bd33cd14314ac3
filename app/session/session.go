// Package session keeps per-request session state and one-shot flash
// messages on top of fiber's session store.
package session

import (
	"encoding/gob"

	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"

	"qr-attendance/app/config"
)

const (
	localsKey = "session"

	keyUserID   = "user_id"
	keyUserName = "user_name"
	keyFlashes  = "_flashes"
)

// Flash categories understood by the templates.
const (
	Success = "success"
	Danger  = "danger"
	Info    = "info"
)

type Flash struct {
	Category string
	Message  string
}

func init() {
	gob.Register([]Flash{})
}

// Session is the payload handed to each request. It is only valid until the
// request completes.
type Session struct {
	sess *fibersession.Session
}

func NewStore(cfg config.SessionConfig) *fibersession.Store {
	return fibersession.New(fibersession.Config{
		Expiration:     cfg.Expiration,
		KeyLookup:      "cookie:" + cfg.CookieName,
		CookieSecure:   cfg.CookieSecure,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
}

// Middleware loads the session before the handler runs and saves it after a
// successful handler. A new session that is still empty is not stored and
// sets no cookie.
func Middleware(store *fibersession.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return err
		}
		c.Locals(localsKey, &Session{sess: sess})

		if err := c.Next(); err != nil {
			return err
		}
		if sess.Fresh() && len(sess.Keys()) == 0 {
			return nil
		}
		return sess.Save()
	}
}

// FromCtx returns the session loaded by Middleware.
func FromCtx(c *fiber.Ctx) *Session {
	s, _ := c.Locals(localsKey).(*Session)
	return s
}

// SetUser marks the session as logged in. The session id is rotated first.
func (s *Session) SetUser(id int64, name string) error {
	if err := s.sess.Regenerate(); err != nil {
		return err
	}
	s.sess.Set(keyUserID, id)
	s.sess.Set(keyUserName, name)
	return nil
}

func (s *Session) User() (id int64, name string, ok bool) {
	id, ok = s.sess.Get(keyUserID).(int64)
	if !ok {
		return 0, "", false
	}
	name, _ = s.sess.Get(keyUserName).(string)
	return id, name, true
}

// Clear drops every key and rotates the session id. Clearing an empty session
// is a no-op apart from the new id.
func (s *Session) Clear() error {
	for _, key := range s.sess.Keys() {
		s.sess.Delete(key)
	}
	return s.sess.Regenerate()
}

func (s *Session) AddFlash(category, message string) {
	flashes, _ := s.sess.Get(keyFlashes).([]Flash)
	s.sess.Set(keyFlashes, append(flashes, Flash{Category: category, Message: message}))
}

// Flashes returns the pending messages and removes them from the session.
func (s *Session) Flashes() []Flash {
	flashes, _ := s.sess.Get(keyFlashes).([]Flash)
	if len(flashes) > 0 {
		s.sess.Delete(keyFlashes)
	}
	return flashes
}

// PageData adds the pending flashes and the logged-in user's name to data,
// consuming the flashes.
func (s *Session) PageData(data fiber.Map) fiber.Map {
	if data == nil {
		data = fiber.Map{}
	}
	data["Flashes"] = s.Flashes()
	if _, name, ok := s.User(); ok {
		data["UserName"] = name
	}
	return data
}
