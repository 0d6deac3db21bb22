package middleware

import (
	"log"
	"strings"

	"weathermap/internal/models"
	"weathermap/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserKey is the Locals key under which AuthRequired stores the resolved
// *models.User. Handlers obtain the caller's identity only through it.
const UserKey = "user"

// AuthRequired is a Fiber middleware that resolves the bearer token to a
// live user, or rejects the request. The 401 body is identical whether the
// header is missing, the token invalid or expired, or the user deleted.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c)
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return unauthorized(c)
		}

		user, err := authService.Authenticate(parts[1])
		if err != nil {
			log.Printf("Authentication failed: %v", err)
			return unauthorized(c)
		}

		// Store the resolved identity for subsequent handlers
		c.Locals(UserKey, user)

		// Continue to the next handler
		return c.Next()
	}
}

// CurrentUser returns the identity attached by AuthRequired. It is nil on
// routes that do not run the middleware.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(UserKey).(*models.User)
	return user
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Invalid or expired token",
	})
}
