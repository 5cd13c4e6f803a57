package material

import (
	"fmt"
	"time"

	"warehouse-backend/internal/apperror"
	"warehouse-backend/internal/audit"
	"warehouse-backend/internal/database"
	"warehouse-backend/internal/models"
	"warehouse-backend/internal/response"
	"warehouse-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type CreateMaterialRequest struct {
	Code        string           `json:"code" validate:"required"`
	Name        string           `json:"name" validate:"required"`
	Description string           `json:"description"`
	Quantity    decimal.Decimal  `json:"quantity" validate:"min=0"`
	Unit        string           `json:"unit" validate:"required"`
	MinQuantity decimal.Decimal  `json:"min_quantity" validate:"min=0"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	ExpiryDate  string           `json:"expiry_date"` // "2006-01-02", optional
	SupplierID  *uint            `json:"supplier_id"`
}

type UpdateMaterialRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Quantity    *decimal.Decimal `json:"quantity"`
	Unit        *string          `json:"unit"`
	MinQuantity *decimal.Decimal `json:"min_quantity"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	ExpiryDate  *string          `json:"expiry_date"`
	SupplierID  *uint            `json:"supplier_id"`
}

// GET /api/materials
func ListMaterialsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		materials, err := List(database.DB)
		if err != nil {
			return err
		}
		return response.OK(c, "Materials retrieved", materials)
	}
}

// GET /api/materials/:id
func GetMaterialHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return apperror.Validation("invalid material id")
		}
		m, err := Get(database.DB, uint(id))
		if err != nil {
			return err
		}
		return response.OK(c, "Material retrieved", m)
	}
}

// GET /api/materials/search?name=
func SearchMaterialsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Query("name")
		materials, err := SearchByName(database.DB, name)
		if err != nil {
			return err
		}
		return response.OK(c, "Search complete", materials)
	}
}

// GET /api/materials/warning
func WarningsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		warnings, err := Warnings(database.DB, time.Now())
		if err != nil {
			return apperror.Internal("could not build warning report")
		}
		return response.OK(c, "Warnings retrieved", warnings)
	}
}

// POST /api/materials
func CreateMaterialHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateMaterialRequest
		if err := validation.Body(c, &body); err != nil {
			return err
		}

		expiry, err := parseDate(body.ExpiryDate)
		if err != nil {
			return err
		}

		m, err := Create(database.DB, CreateInput{
			Code:        body.Code,
			Name:        body.Name,
			Description: body.Description,
			Quantity:    body.Quantity,
			Unit:        body.Unit,
			MinQuantity: body.MinQuantity,
			UnitPrice:   body.UnitPrice,
			ExpiryDate:  expiry,
			SupplierID:  body.SupplierID,
		})
		if err != nil {
			return err
		}

		audit.Record(c, audit.Entry{
			EntityType:  "material",
			EntityID:    m.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Material created: %s (%s)", m.Name, m.Code),
			After:       m,
		})

		return response.Created(c, "Material created", m)
	}
}

// PUT /api/materials/:id
func UpdateMaterialHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return apperror.Validation("invalid material id")
		}

		var body UpdateMaterialRequest
		if err := validation.Body(c, &body); err != nil {
			return err
		}

		in := UpdateInput{
			Name:        body.Name,
			Description: body.Description,
			Quantity:    body.Quantity,
			Unit:        body.Unit,
			MinQuantity: body.MinQuantity,
			UnitPrice:   body.UnitPrice,
			SupplierID:  body.SupplierID,
		}
		if body.ExpiryDate != nil {
			expiry, err := parseDate(*body.ExpiryDate)
			if err != nil {
				return err
			}
			in.ExpiryDate = expiry
		}

		before, err := Get(database.DB, uint(id))
		if err != nil {
			return err
		}

		m, err := Update(database.DB, uint(id), in)
		if err != nil {
			return err
		}

		audit.Record(c, audit.Entry{
			EntityType:  "material",
			EntityID:    m.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Material updated: %s (%s)", m.Name, m.Code),
			Before:      before,
			After:       m,
		})

		return response.OK(c, "Material updated", m)
	}
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, apperror.Validation("date must be in 'YYYY-MM-DD' format")
	}
	return &d, nil
}
