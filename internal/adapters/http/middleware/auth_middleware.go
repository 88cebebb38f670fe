package middleware

import (
	"strings"

	"campus-connect/internal/config"
	"campus-connect/internal/core/domain"
	"campus-connect/internal/pkg/jwt"
	"campus-connect/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware authenticates the request from the Authorization
// header. Claims are a snapshot from login; current approval status or
// role changes are not re-checked against the store.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return domain.ErrMissingToken
		}
		accessToken := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := jwt.ValidateToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Access token expired")
			}
			return domain.ErrInvalidToken
		}

		c.Locals("userID", claims.UserID)
		c.Locals("email", claims.Email)
		c.Locals("instituteName", claims.InstituteName)
		c.Locals("phone", claims.Phone)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}

// RoleMiddleware authorizes by role set: missing/invalid identity is
// 401, a valid identity outside the set is 403.
func RoleMiddleware(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return domain.ErrMissingToken
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		return domain.ErrForbidden
	}
}
