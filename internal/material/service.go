package material

import (
	"errors"
	"time"

	"warehouse-backend/internal/apperror"
	"warehouse-backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreateInput struct {
	Code        string
	Name        string
	Description string
	Quantity    decimal.Decimal
	Unit        string
	MinQuantity decimal.Decimal
	UnitPrice   *decimal.Decimal
	ExpiryDate  *time.Time
	SupplierID  *uint
}

type UpdateInput struct {
	Name        *string
	Description *string
	Quantity    *decimal.Decimal
	Unit        *string
	MinQuantity *decimal.Decimal
	UnitPrice   *decimal.Decimal
	ExpiryDate  *time.Time
	SupplierID  *uint
}

func List(db *gorm.DB) ([]models.Material, error) {
	var materials []models.Material
	if err := db.Order("id asc").Find(&materials).Error; err != nil {
		return nil, apperror.Internal("could not list materials")
	}
	return materials, nil
}

func Get(db *gorm.DB, id uint) (*models.Material, error) {
	var m models.Material
	if err := db.First(&m, id).Error; err != nil {
		return nil, apperror.NotFound("material not found: %d", id)
	}
	return &m, nil
}

func SearchByName(db *gorm.DB, name string) ([]models.Material, error) {
	var materials []models.Material
	if err := db.Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%").
		Order("id asc").
		Find(&materials).Error; err != nil {
		return nil, apperror.Internal("could not search materials")
	}
	return materials, nil
}

func Create(db *gorm.DB, in CreateInput) (*models.Material, error) {
	var existing models.Material
	if err := db.Where("code = ?", in.Code).First(&existing).Error; err == nil {
		return nil, apperror.Validation("material code already exists: %s", in.Code)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Internal("could not check material code")
	}

	if in.SupplierID != nil {
		var supplier models.Supplier
		if err := db.First(&supplier, *in.SupplierID).Error; err != nil {
			return nil, apperror.NotFound("supplier not found: %d", *in.SupplierID)
		}
	}

	m := models.Material{
		Code:        in.Code,
		Name:        in.Name,
		Description: in.Description,
		Quantity:    in.Quantity,
		Unit:        in.Unit,
		MinQuantity: in.MinQuantity,
		UnitPrice:   in.UnitPrice,
		ExpiryDate:  in.ExpiryDate,
		SupplierID:  in.SupplierID,
		Status:      DeriveStatus(in.Quantity, in.MinQuantity, in.ExpiryDate, time.Now()),
	}
	if err := db.Create(&m).Error; err != nil {
		return nil, apperror.Internal("could not create material")
	}
	return &m, nil
}

func Update(db *gorm.DB, id uint, in UpdateInput) (*models.Material, error) {
	m, err := Get(db, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		m.Name = *in.Name
	}
	if in.Description != nil {
		m.Description = *in.Description
	}
	if in.Quantity != nil {
		m.Quantity = *in.Quantity
	}
	if in.Unit != nil {
		m.Unit = *in.Unit
	}
	if in.MinQuantity != nil {
		m.MinQuantity = *in.MinQuantity
	}
	if in.UnitPrice != nil {
		m.UnitPrice = in.UnitPrice
	}
	if in.ExpiryDate != nil {
		m.ExpiryDate = in.ExpiryDate
	}
	if in.SupplierID != nil {
		var supplier models.Supplier
		if err := db.First(&supplier, *in.SupplierID).Error; err != nil {
			return nil, apperror.NotFound("supplier not found: %d", *in.SupplierID)
		}
		m.SupplierID = in.SupplierID
	}

	m.Status = DeriveStatus(m.Quantity, m.MinQuantity, m.ExpiryDate, time.Now())

	if err := db.Save(m).Error; err != nil {
		return nil, apperror.Internal("could not update material")
	}
	return m, nil
}
