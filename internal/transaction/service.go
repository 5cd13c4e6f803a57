package transaction

import (
	"errors"
	"time"

	"warehouse-backend/internal/apperror"
	"warehouse-backend/internal/material"
	"warehouse-backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ImportInput struct {
	MaterialID uint
	Quantity   decimal.Decimal
	Unit       string
	UnitPrice  decimal.Decimal
	SupplierID *uint
	ExpiryDate *time.Time
	Note       string
}

type ExportInput struct {
	MaterialID uint
	Quantity   decimal.Decimal
	RequestID  *uint
	Note       string
}

// Import adds stock and appends an immutable IMPORT ledger entry. The whole
// operation runs inside one database transaction.
func Import(db *gorm.DB, in ImportInput, actorID uint) (*models.Transaction, error) {
	var created models.Transaction

	err := db.Transaction(func(tx *gorm.DB) error {
		var m models.Material
		if err := tx.First(&m, in.MaterialID).Error; err != nil {
			return apperror.NotFound("material not found: %d", in.MaterialID)
		}

		m.Quantity = m.Quantity.Add(in.Quantity)
		m.UnitPrice = &in.UnitPrice
		if in.ExpiryDate != nil {
			m.ExpiryDate = in.ExpiryDate
		}
		m.Status = material.DeriveStatus(m.Quantity, m.MinQuantity, m.ExpiryDate, time.Now())

		if err := tx.Save(&m).Error; err != nil {
			return apperror.Internal("could not update material stock")
		}

		// Supplier is resolved from the request directly; an unknown id is
		// ignored rather than rejected, matching the import contract where
		// only the material reference is mandatory.
		var supplierID *uint
		if in.SupplierID != nil {
			var s models.Supplier
			if err := tx.First(&s, *in.SupplierID).Error; err == nil {
				supplierID = &s.ID
			}
		}

		totalPrice := in.UnitPrice.Mul(in.Quantity)
		now := time.Now()
		created = models.Transaction{
			TransactionCode: nextCode("IMP", now),
			MaterialID:      m.ID,
			Type:            models.TransactionImport,
			Quantity:        in.Quantity,
			Unit:            in.Unit,
			UnitPrice:       &in.UnitPrice,
			TotalPrice:      &totalPrice,
			SupplierID:      supplierID,
			EmployeeID:      actorID,
			Note:            in.Note,
			TransactionDate: now,
		}
		if err := tx.Create(&created).Error; err != nil {
			return apperror.Internal("could not record import transaction")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Export removes stock and appends an immutable EXPORT ledger entry. The
// decrement is a guarded UPDATE (quantity >= requested), so a concurrent
// writer that loses the race fails with InsufficientStock instead of driving
// the stock negative. When the input references a restock request, that
// request is forced to COMPLETED whatever its prior state.
func Export(db *gorm.DB, in ExportInput, actorID uint) (*models.Transaction, error) {
	var created models.Transaction

	err := db.Transaction(func(tx *gorm.DB) error {
		var m models.Material
		if err := tx.First(&m, in.MaterialID).Error; err != nil {
			return apperror.NotFound("material not found: %d", in.MaterialID)
		}

		if m.Quantity.Cmp(in.Quantity) < 0 {
			return apperror.InsufficientStock(
				"not enough stock to export. Current stock: %s %s", m.Quantity, m.Unit)
		}

		res := tx.Model(&models.Material{}).
			Where("id = ? AND quantity >= ?", m.ID, in.Quantity).
			Update("quantity", gorm.Expr("quantity - ?", in.Quantity))
		if res.Error != nil {
			return apperror.Internal("could not update material stock")
		}
		if res.RowsAffected == 0 {
			return apperror.InsufficientStock(
				"not enough stock to export. Current stock: %s %s", m.Quantity, m.Unit)
		}

		if err := tx.First(&m, m.ID).Error; err != nil {
			return apperror.Internal("could not reload material")
		}
		m.Status = material.DeriveStatus(m.Quantity, m.MinQuantity, m.ExpiryDate, time.Now())
		if err := tx.Model(&m).Update("status", m.Status).Error; err != nil {
			return apperror.Internal("could not update material status")
		}

		var requestID *uint
		if in.RequestID != nil {
			var req models.MaterialRequest
			err := tx.First(&req, *in.RequestID).Error
			switch {
			case err == nil:
				requestID = &req.ID
				// A fulfilling export completes the request no matter what
				// state it was in.
				if err := tx.Model(&req).Update("status", models.RequestCompleted).Error; err != nil {
					return apperror.Internal("could not complete request")
				}
			case !errors.Is(err, gorm.ErrRecordNotFound):
				return apperror.Internal("could not resolve request")
			}
		}

		var totalPrice *decimal.Decimal
		if m.UnitPrice != nil {
			tp := m.UnitPrice.Mul(in.Quantity)
			totalPrice = &tp
		}

		now := time.Now()
		created = models.Transaction{
			TransactionCode: nextCode("EXP", now),
			MaterialID:      m.ID,
			Type:            models.TransactionExport,
			Quantity:        in.Quantity,
			Unit:            m.Unit,
			UnitPrice:       m.UnitPrice,
			TotalPrice:      totalPrice,
			EmployeeID:      actorID,
			RequestID:       requestID,
			Note:            in.Note,
			TransactionDate: now,
		}
		if err := tx.Create(&created).Error; err != nil {
			return apperror.Internal("could not record export transaction")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// History lists ledger entries, optionally restricted to a date range. The
// range is both-or-none.
func History(db *gorm.DB, startDate, endDate *time.Time) ([]models.Transaction, error) {
	q := db.Preload("Material").Order("transaction_date desc, id desc")
	if startDate != nil && endDate != nil {
		q = q.Where("transaction_date BETWEEN ? AND ?", *startDate, *endDate)
	}

	var transactions []models.Transaction
	if err := q.Find(&transactions).Error; err != nil {
		return nil, apperror.Internal("could not list transactions")
	}
	return transactions, nil
}

func HistoryByMaterial(db *gorm.DB, materialID uint) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := db.Preload("Material").
		Where("material_id = ?", materialID).
		Order("transaction_date desc, id desc").
		Find(&transactions).Error; err != nil {
		return nil, apperror.Internal("could not list transactions")
	}
	return transactions, nil
}

func nextCode(prefix string, now time.Time) string {
	return prefix + "-" + now.Format("20060102150405")
}
