package audit

import (
	"encoding/json"
	"fmt"
	"log"

	"warehouse-backend/internal/auth"
	"warehouse-backend/internal/database"
	"warehouse-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type Entry struct {
	EntityType  string
	EntityID    uint
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

// Write persists one audit log row. Before/After are marshalled to JSON;
// jsonb columns need the literal "null" rather than an empty string.
func Write(employeeID uint, employeeName string, e Entry) error {
	beforeStr := "null"
	afterStr := "null"

	if e.Before != nil {
		if b, err := json.Marshal(e.Before); err == nil {
			beforeStr = string(b)
		}
	}
	if e.After != nil {
		if b, err := json.Marshal(e.After); err == nil {
			afterStr = string(b)
		}
	}

	row := models.AuditLog{
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		EntityType:   e.EntityType,
		EntityID:     e.EntityID,
		Action:       e.Action,
		Description:  e.Description,
		BeforeData:   beforeStr,
		AfterData:    afterStr,
	}

	if err := database.DB.Create(&row).Error; err != nil {
		return fmt.Errorf("could not write audit log: %w", err)
	}
	return nil
}

// Record resolves the caller from the request context and writes the entry
// best-effort. Audit failures never fail the operation being audited.
func Record(c *fiber.Ctx, e Entry) {
	employeeID, ok := c.Locals(auth.CtxEmployeeIDKey).(uint)
	if !ok {
		log.Printf("audit: no caller identity for %s %s", e.Action, e.EntityType)
		return
	}

	employeeName, _ := c.Locals(auth.CtxUsernameKey).(string)
	var employee models.Employee
	if err := database.DB.First(&employee, employeeID).Error; err == nil {
		employeeName = employee.FullName
	}

	if err := Write(employeeID, employeeName, e); err != nil {
		log.Printf("audit: %v", err)
	}
}
