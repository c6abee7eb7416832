package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/hallaoui/ferme-ops/pkg/auth"
	"github.com/hallaoui/ferme-ops/pkg/logger"
)

// AuthMiddleware validates the JWT and forwards identity headers to backends
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header required",
			})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization format, expected Bearer token",
			})
		}

		claims, err := auth.ValidateToken(tokenString)
		if err != nil {
			logger.Logger.Warn().
				Err(err).
				Str("path", c.Path()).
				Str("ip", c.IP()).
				Msg("Token validation failed")

			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		// Store claims for downstream middleware
		c.Locals("user_id", claims.UserID)
		c.Locals("username", claims.Username)
		c.Locals("role", claims.Role)
		c.Locals("ferme_id", claims.FermeID)

		// Forward identity to backend services
		c.Request().Header.Set("X-User-Id", fmt.Sprintf("%d", claims.UserID))
		c.Request().Header.Set("X-Username", claims.Username)
		c.Request().Header.Set("X-User-Role", claims.Role)
		c.Request().Header.Set("X-Ferme-Id", fmt.Sprintf("%d", claims.FermeID))

		return c.Next()
	}
}

// SuperAdminMiddleware restricts access to superadmin users
func SuperAdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok || role != "superadmin" {
			logger.Logger.Warn().
				Str("path", c.Path()).
				Interface("role", c.Locals("role")).
				Msg("Superadmin access denied")

			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Superadmin access required",
			})
		}
		return c.Next()
	}
}

// OptionalAuthMiddleware validates the token when present but never rejects
func OptionalAuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.Next()
		}

		claims, err := auth.ValidateToken(tokenString)
		if err != nil {
			return c.Next()
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("username", claims.Username)
		c.Locals("role", claims.Role)
		c.Locals("ferme_id", claims.FermeID)

		c.Request().Header.Set("X-User-Id", fmt.Sprintf("%d", claims.UserID))
		c.Request().Header.Set("X-Username", claims.Username)
		c.Request().Header.Set("X-User-Role", claims.Role)
		c.Request().Header.Set("X-Ferme-Id", fmt.Sprintf("%d", claims.FermeID))

		return c.Next()
	}
}
