package transaction

import (
	"fmt"
	"time"

	"warehouse-backend/internal/apperror"
	"warehouse-backend/internal/audit"
	"warehouse-backend/internal/auth"
	"warehouse-backend/internal/database"
	"warehouse-backend/internal/models"
	"warehouse-backend/internal/response"
	"warehouse-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type ImportBody struct {
	MaterialID uint             `json:"material_id" validate:"required"`
	Quantity   decimal.Decimal  `json:"quantity" validate:"gt=0"`
	Unit       string           `json:"unit" validate:"required"`
	UnitPrice  decimal.Decimal  `json:"unit_price" validate:"gt=0"`
	SupplierID *uint            `json:"supplier_id"`
	ExpiryDate string           `json:"expiry_date"` // "2006-01-02", optional
	Note       string           `json:"note"`
}

type ExportBody struct {
	MaterialID uint            `json:"material_id" validate:"required"`
	Quantity   decimal.Decimal `json:"quantity" validate:"gt=0"`
	RequestID  *uint           `json:"request_id"`
	Note       string          `json:"note"`
}

type MaterialSummary struct {
	ID   uint   `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
	Unit string `json:"unit"`
}

type TransactionResponse struct {
	ID              uint                   `json:"id"`
	TransactionCode string                 `json:"transaction_code"`
	Material        MaterialSummary        `json:"material"`
	Type            models.TransactionType `json:"type"`
	Quantity        decimal.Decimal        `json:"quantity"`
	Unit            string                 `json:"unit"`
	UnitPrice       *decimal.Decimal       `json:"unit_price"`
	TotalPrice      *decimal.Decimal       `json:"total_price"`
	SupplierID      *uint                  `json:"supplier_id"`
	EmployeeID      uint                   `json:"employee_id"`
	RequestID       *uint                  `json:"request_id"`
	Note            string                 `json:"note"`
	TransactionDate time.Time              `json:"transaction_date"`
	CreatedAt       time.Time              `json:"created_at"`
}

func toResponse(t *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.ID,
		TransactionCode: t.TransactionCode,
		Material: MaterialSummary{
			ID:   t.Material.ID,
			Code: t.Material.Code,
			Name: t.Material.Name,
			Unit: t.Material.Unit,
		},
		Type:            t.Type,
		Quantity:        t.Quantity,
		Unit:            t.Unit,
		UnitPrice:       t.UnitPrice,
		TotalPrice:      t.TotalPrice,
		SupplierID:      t.SupplierID,
		EmployeeID:      t.EmployeeID,
		RequestID:       t.RequestID,
		Note:            t.Note,
		TransactionDate: t.TransactionDate,
		CreatedAt:       t.CreatedAt,
	}
}

func toResponses(transactions []models.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		out = append(out, toResponse(&transactions[i]))
	}
	return out
}

// POST /api/materials/import
func ImportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ImportBody
		if err := validation.Body(c, &body); err != nil {
			return err
		}

		var expiry *time.Time
		if body.ExpiryDate != "" {
			d, err := time.Parse("2006-01-02", body.ExpiryDate)
			if err != nil {
				return apperror.Validation("expiry_date must be in 'YYYY-MM-DD' format")
			}
			expiry = &d
		}

		actorID, err := auth.CurrentEmployeeID(c)
		if err != nil {
			return err
		}

		created, err := Import(database.DB, ImportInput{
			MaterialID: body.MaterialID,
			Quantity:   body.Quantity,
			Unit:       body.Unit,
			UnitPrice:  body.UnitPrice,
			SupplierID: body.SupplierID,
			ExpiryDate: expiry,
			Note:       body.Note,
		}, actorID)
		if err != nil {
			return err
		}

		audit.Record(c, audit.Entry{
			EntityType:  "transaction",
			EntityID:    created.ID,
			Action:      models.AuditActionImport,
			Description: fmt.Sprintf("Import recorded: %s", created.TransactionCode),
			After:       created,
		})

		full, err := load(created.ID)
		if err != nil {
			return err
		}
		return response.Created(c, "Import successful", toResponse(full))
	}
}

// POST /api/materials/export
func ExportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ExportBody
		if err := validation.Body(c, &body); err != nil {
			return err
		}

		actorID, err := auth.CurrentEmployeeID(c)
		if err != nil {
			return err
		}

		created, err := Export(database.DB, ExportInput{
			MaterialID: body.MaterialID,
			Quantity:   body.Quantity,
			RequestID:  body.RequestID,
			Note:       body.Note,
		}, actorID)
		if err != nil {
			return err
		}

		audit.Record(c, audit.Entry{
			EntityType:  "transaction",
			EntityID:    created.ID,
			Action:      models.AuditActionExport,
			Description: fmt.Sprintf("Export recorded: %s", created.TransactionCode),
			After:       created,
		})

		full, err := load(created.ID)
		if err != nil {
			return err
		}
		return response.Created(c, "Export successful", toResponse(full))
	}
}

// GET /api/transactions?startDate=&endDate= (RFC 3339, both or neither)
func ListTransactionsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var startDate, endDate *time.Time
		if s := c.Query("startDate"); s != "" {
			d, err := time.Parse(time.RFC3339, s)
			if err != nil {
				return apperror.Validation("startDate must be RFC 3339")
			}
			startDate = &d
		}
		if s := c.Query("endDate"); s != "" {
			d, err := time.Parse(time.RFC3339, s)
			if err != nil {
				return apperror.Validation("endDate must be RFC 3339")
			}
			endDate = &d
		}

		transactions, err := History(database.DB, startDate, endDate)
		if err != nil {
			return err
		}
		return response.OK(c, "Transactions retrieved", toResponses(transactions))
	}
}

// GET /api/transactions/material/:materialId
func ListTransactionsByMaterialHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("materialId")
		if err != nil || id <= 0 {
			return apperror.Validation("invalid material id")
		}

		transactions, err := HistoryByMaterial(database.DB, uint(id))
		if err != nil {
			return err
		}
		return response.OK(c, "Transactions retrieved", toResponses(transactions))
	}
}

func load(id uint) (*models.Transaction, error) {
	var t models.Transaction
	if err := database.DB.Preload("Material").First(&t, id).Error; err != nil {
		return nil, apperror.Internal("could not load transaction")
	}
	return &t, nil
}
