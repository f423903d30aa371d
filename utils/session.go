package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const SessionCookieName = "cart_session"

// SessionID returns the caller's cart session id, minting one and
// setting the cookie on first contact.
func SessionID(c *fiber.Ctx) string {
	if id := c.Cookies(SessionCookieName); id != "" {
		return id
	}

	id := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    id,
		Expires:  time.Now().Add(7 * 24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return id
}
