package audit

import (
	"warehouse-backend/internal/apperror"
	"warehouse-backend/internal/database"
	"warehouse-backend/internal/models"
	"warehouse-backend/internal/response"

	"github.com/gofiber/fiber/v2"
)

// GET /api/audit-logs?entityType=
func ListAuditLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := database.DB.Order("created_at desc, id desc")
		if entityType := c.Query("entityType"); entityType != "" {
			q = q.Where("entity_type = ?", entityType)
		}

		var logs []models.AuditLog
		if err := q.Limit(500).Find(&logs).Error; err != nil {
			return apperror.Internal("could not list audit logs")
		}
		return response.OK(c, "Audit logs retrieved", logs)
	}
}
