package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// EnsureClientID stores the caller's client id in Locals("clientID"). The id
// comes from the X-Client-ID header or the clientId query parameter, copied
// out of the request buffer because it outlives the request as a board owner.
func EnsureClientID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals("clientID") != nil {
			return c.Next()
		}

		clientID := c.Get("X-Client-ID")
		if clientID == "" {
			clientID = c.Query("clientId")
		}

		if clientID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Client ID is required. Send an X-Client-ID header or clientId query parameter.",
			})
		}

		c.Locals("clientID", utils.CopyString(clientID))
		return c.Next()
	}
}
