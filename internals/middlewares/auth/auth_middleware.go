// file: internals/middlewares/auth/auth_middleware.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"schoolku_backend/internals/configs"
)

/*
AuthMiddleware memvalidasi Bearer token (issued oleh auth service terpisah)
dan menaruh claim penting ke Locals:
  - user_id          → subject token
  - school_admin_ids → daftar school yang boleh dikelola user ini

Token issuance bukan urusan service ini; kita hanya parse + verifikasi.
*/
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if raw == "" || !strings.HasPrefix(raw, "Bearer ") {
			return fiber.NewError(fiber.StatusUnauthorized, "authorization header missing")
		}
		tokenStr := strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "unexpected signing method")
			}
			return []byte(configs.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token claims")
		}

		if sub, ok := claims["sub"].(string); ok {
			c.Locals("user_id", sub)
		}
		if ids, ok := claims["school_admin_ids"]; ok {
			c.Locals("school_admin_ids", ids)
		}
		return c.Next()
	}
}
