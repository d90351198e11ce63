package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var errNoUser = errors.New("no user in context")

// getUserID reads the authenticated user id the auth middleware stored in
// fiber locals.
func getUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("userID").(string)
	if !ok || raw == "" {
		return uuid.Nil, errNoUser
	}
	return uuid.Parse(raw)
}
