package supplier

import (
	"fmt"

	"warehouse-backend/internal/apperror"
	"warehouse-backend/internal/audit"
	"warehouse-backend/internal/database"
	"warehouse-backend/internal/models"
	"warehouse-backend/internal/response"
	"warehouse-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type SupplierRequest struct {
	Name          string `json:"name" validate:"required"`
	ContactPerson string `json:"contact_person" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Address       string `json:"address"`
	TaxCode       string `json:"tax_code"`
	Note          string `json:"note"`
	Active        *bool  `json:"active"`
}

// GET /api/suppliers
func ListSuppliersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		suppliers, err := List(database.DB)
		if err != nil {
			return err
		}
		return response.OK(c, "Suppliers retrieved", suppliers)
	}
}

// GET /api/suppliers/:id
func GetSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return apperror.Validation("invalid supplier id")
		}
		s, err := Get(database.DB, uint(id))
		if err != nil {
			return err
		}
		return response.OK(c, "Supplier retrieved", s)
	}
}

// GET /api/suppliers/search?name=
func SearchSuppliersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		suppliers, err := SearchByName(database.DB, c.Query("name"))
		if err != nil {
			return err
		}
		return response.OK(c, "Search complete", suppliers)
	}
}

// POST /api/suppliers
func CreateSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SupplierRequest
		if err := validation.Body(c, &body); err != nil {
			return err
		}

		s, err := Create(database.DB, toInput(body))
		if err != nil {
			return err
		}

		audit.Record(c, audit.Entry{
			EntityType:  "supplier",
			EntityID:    s.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Supplier created: %s (%s)", s.Name, s.Code),
			After:       s,
		})

		return response.Created(c, "Supplier created", s)
	}
}

// PUT /api/suppliers/:id
func UpdateSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return apperror.Validation("invalid supplier id")
		}

		var body SupplierRequest
		if err := validation.Body(c, &body); err != nil {
			return err
		}

		before, err := Get(database.DB, uint(id))
		if err != nil {
			return err
		}

		s, err := Update(database.DB, uint(id), toInput(body))
		if err != nil {
			return err
		}

		audit.Record(c, audit.Entry{
			EntityType:  "supplier",
			EntityID:    s.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Supplier updated: %s (%s)", s.Name, s.Code),
			Before:      before,
			After:       s,
		})

		return response.OK(c, "Supplier updated", s)
	}
}

// DELETE /api/suppliers/:id (soft delete)
func DeleteSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return apperror.Validation("invalid supplier id")
		}

		s, err := SoftDelete(database.DB, uint(id))
		if err != nil {
			return err
		}

		audit.Record(c, audit.Entry{
			EntityType:  "supplier",
			EntityID:    s.ID,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Supplier deactivated: %s (%s)", s.Name, s.Code),
			Before:      s,
		})

		return response.OK(c, "Supplier deleted", nil)
	}
}

func toInput(body SupplierRequest) Input {
	return Input{
		Name:          body.Name,
		ContactPerson: body.ContactPerson,
		Phone:         body.Phone,
		Email:         body.Email,
		Address:       body.Address,
		TaxCode:       body.TaxCode,
		Note:          body.Note,
		Active:        body.Active,
	}
}
