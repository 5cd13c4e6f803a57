package auth

import (
	"strings"

	"warehouse-backend/internal/apperror"
	"warehouse-backend/internal/config"
	"warehouse-backend/internal/database"
	"warehouse-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

const (
	CtxEmployeeIDKey = "employee_id"
	CtxUsernameKey   = "username"
	CtxRoleKey       = "role"
)

func JWTMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return apperror.Unauthorized("missing Authorization header")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return apperror.Unauthorized("Authorization header must be 'Bearer <token>'")
		}

		claims, err := ParseToken(cfg.JWTSecret, parts[1])
		if err != nil {
			return apperror.Unauthorized("invalid or expired token")
		}

		c.Locals(CtxEmployeeIDKey, claims.EmployeeID)
		c.Locals(CtxUsernameKey, claims.Username)
		c.Locals(CtxRoleKey, claims.Role)

		return c.Next()
	}
}

// RequireRole is the per-route allow-list check.
func RequireRole(allowedRoles ...models.EmployeeRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(CtxRoleKey).(models.EmployeeRole)
		if !ok {
			return apperror.Forbidden("role claim missing")
		}

		for _, r := range allowedRoles {
			if r == role {
				return c.Next()
			}
		}
		return apperror.Forbidden("you do not have permission for this operation")
	}
}

// CurrentEmployeeID returns the authenticated caller's employee ID.
func CurrentEmployeeID(c *fiber.Ctx) (uint, error) {
	id, ok := c.Locals(CtxEmployeeIDKey).(uint)
	if !ok {
		return 0, apperror.Unauthorized("caller identity not resolved")
	}
	return id, nil
}

// CurrentEmployee loads the authenticated caller from the database.
func CurrentEmployee(c *fiber.Ctx) (*models.Employee, error) {
	id, err := CurrentEmployeeID(c)
	if err != nil {
		return nil, err
	}

	var employee models.Employee
	if err := database.DB.First(&employee, id).Error; err != nil {
		return nil, apperror.Unauthorized("employee account not found")
	}
	return &employee, nil
}
