package auth

import (
	"strings"

	"warehouse-backend/internal/apperror"
	"warehouse-backend/internal/config"
	"warehouse-backend/internal/database"
	"warehouse-backend/internal/models"
	"warehouse-backend/internal/response"
	"warehouse-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token    string              `json:"token"`
	ID       uint                `json:"id"`
	Username string              `json:"username"`
	FullName string              `json:"full_name"`
	Email    string              `json:"email"`
	Role     models.EmployeeRole `json:"role"`
}

type RegisterAdminRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

// POST /api/auth/login
func LoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := validation.Body(c, &body); err != nil {
			return err
		}

		var employee models.Employee
		if err := database.DB.Where("username = ?", body.Username).First(&employee).Error; err != nil {
			return apperror.Unauthorized("invalid username or password")
		}
		if !employee.Active {
			return apperror.Unauthorized("account is inactive")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(body.Password)); err != nil {
			return apperror.Unauthorized("invalid username or password")
		}

		token, err := GenerateToken(cfg.JWTSecret, &employee)
		if err != nil {
			return apperror.Internal("could not issue token")
		}

		return response.OK(c, "Login successful", LoginResponse{
			Token:    token,
			ID:       employee.ID,
			Username: employee.Username,
			FullName: employee.FullName,
			Email:    employee.Email,
			Role:     employee.Role,
		})
	}
}

// POST /api/auth/logout
// Tokens are stateless; there is nothing server-side to revoke.
func LogoutHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return response.OK(c, "Logout successful", nil)
	}
}

// GET /api/auth/me
func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		employee, err := CurrentEmployee(c)
		if err != nil {
			return err
		}
		return response.OK(c, "Current employee", employee)
	}
}

// POST /api/auth/register-admin
// Bootstrap endpoint: creates the first ADMIN account and refuses afterwards.
func RegisterAdminHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegisterAdminRequest
		if err := validation.Body(c, &body); err != nil {
			return err
		}
		body.Username = strings.TrimSpace(strings.ToLower(body.Username))
		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		var count int64
		database.DB.Model(&models.Employee{}).
			Where("role = ?", models.RoleAdmin).
			Count(&count)
		if count > 0 {
			return apperror.Forbidden("an admin account already exists")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return apperror.Internal("could not hash password")
		}

		employee := models.Employee{
			Username:     body.Username,
			PasswordHash: string(hash),
			FullName:     body.FullName,
			Email:        body.Email,
			Role:         models.RoleAdmin,
			Active:       true,
		}
		if err := database.DB.Create(&employee).Error; err != nil {
			return apperror.Internal("could not create employee")
		}

		return response.Created(c, "Admin account created", employee)
	}
}
