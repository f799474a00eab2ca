package helper

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	sessionUserID    = "user_id"
	sessionUserName  = "user_name"
	sessionEditToken = "edit_token"
	sessionFlashes   = "flashes"
)

// Sessions is the cookie-session store shared by all handlers. The cookie only
// carries the session id; values live server-side.
var Sessions *session.Store

func InitSessions() {
	Sessions = session.New(session.Config{
		KeyLookup:      "cookie:pteguide_session",
		Expiration:     7 * 24 * time.Hour,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
}

// CurrentUser returns the signed-in user's id and display name, or ok=false
// for an anonymous session.
func CurrentUser(c *fiber.Ctx) (uint, string, bool) {
	sess, err := Sessions.Get(c)
	if err != nil {
		return 0, "", false
	}
	id, ok := sess.Get(sessionUserID).(uint)
	if !ok || id == 0 {
		return 0, "", false
	}
	name, _ := sess.Get(sessionUserName).(string)
	return id, name, true
}

func SetSessionUser(c *fiber.Ctx, id uint, name string) error {
	sess, err := Sessions.Get(c)
	if err != nil {
		return err
	}
	sess.Set(sessionUserID, id)
	sess.Set(sessionUserName, name)
	return sess.Save()
}

// ClearSessionUser drops the identity keys but keeps the rest of the session
// (the edit token survives a user logout).
func ClearSessionUser(c *fiber.Ctx) error {
	sess, err := Sessions.Get(c)
	if err != nil {
		return err
	}
	sess.Delete(sessionUserID)
	sess.Delete(sessionUserName)
	return sess.Save()
}

func EditToken(c *fiber.Ctx) string {
	sess, err := Sessions.Get(c)
	if err != nil {
		return ""
	}
	tok, _ := sess.Get(sessionEditToken).(string)
	return tok
}

func SetEditToken(c *fiber.Ctx, token string) error {
	sess, err := Sessions.Get(c)
	if err != nil {
		return err
	}
	sess.Set(sessionEditToken, token)
	return sess.Save()
}

func ClearEditToken(c *fiber.Ctx) error {
	sess, err := Sessions.Get(c)
	if err != nil {
		return err
	}
	sess.Delete(sessionEditToken)
	return sess.Save()
}

// AddFlash queues a one-shot user-facing message; PopFlashes drains the queue.
// Stored as a single newline-joined string to stay gob-friendly.
func AddFlash(c *fiber.Ctx, message string) {
	sess, err := Sessions.Get(c)
	if err != nil {
		return
	}
	joined, _ := sess.Get(sessionFlashes).(string)
	if joined != "" {
		joined += "\n"
	}
	joined += message
	sess.Set(sessionFlashes, joined)
	_ = sess.Save()
}

func PopFlashes(c *fiber.Ctx) []string {
	sess, err := Sessions.Get(c)
	if err != nil {
		return nil
	}
	joined, _ := sess.Get(sessionFlashes).(string)
	if joined == "" {
		return nil
	}
	sess.Delete(sessionFlashes)
	_ = sess.Save()
	return strings.Split(joined, "\n")
}
