package middleware

import (
	"log"

	"github.com/imshubham07/Brainly/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired is a Fiber middleware guarding every protected route. The
// Authorization header carries the raw signed token with no "Bearer" prefix;
// that is the wire format existing clients send. On success the resolved
// user id is stored in Locals for downstream handlers.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Get("Authorization")
		if tokenString == "" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "you are not logged in",
			})
		}

		userID, err := authService.ValidateToken(tokenString)
		if err != nil {
			log.Printf("Token validation failed: %v", err)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "you are not logged in",
			})
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}
