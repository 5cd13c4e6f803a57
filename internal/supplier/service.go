package supplier

import (
	"fmt"
	"time"

	"warehouse-backend/internal/apperror"
	"warehouse-backend/internal/models"

	"gorm.io/gorm"
)

type Input struct {
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	Address       string
	TaxCode       string
	Note          string
	Active        *bool
}

func List(db *gorm.DB) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := db.Order("id asc").Find(&suppliers).Error; err != nil {
		return nil, apperror.Internal("could not list suppliers")
	}
	return suppliers, nil
}

func Get(db *gorm.DB, id uint) (*models.Supplier, error) {
	var s models.Supplier
	if err := db.First(&s, id).Error; err != nil {
		return nil, apperror.NotFound("supplier not found: %d", id)
	}
	return &s, nil
}

func SearchByName(db *gorm.DB, name string) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := db.Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%").
		Order("id asc").
		Find(&suppliers).Error; err != nil {
		return nil, apperror.Internal("could not search suppliers")
	}
	return suppliers, nil
}

func Create(db *gorm.DB, in Input) (*models.Supplier, error) {
	s := models.Supplier{
		Code:          nextCode(db, time.Now()),
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Phone:         in.Phone,
		Email:         in.Email,
		Address:       in.Address,
		TaxCode:       in.TaxCode,
		Note:          in.Note,
		Active:        true,
	}
	if in.Active != nil {
		s.Active = *in.Active
	}

	if err := db.Create(&s).Error; err != nil {
		return nil, apperror.Internal("could not create supplier")
	}
	return &s, nil
}

func Update(db *gorm.DB, id uint, in Input) (*models.Supplier, error) {
	s, err := Get(db, id)
	if err != nil {
		return nil, err
	}

	s.Name = in.Name
	s.ContactPerson = in.ContactPerson
	s.Phone = in.Phone
	s.Email = in.Email
	s.Address = in.Address
	s.TaxCode = in.TaxCode
	s.Note = in.Note
	if in.Active != nil {
		s.Active = *in.Active
	}

	if err := db.Save(s).Error; err != nil {
		return nil, apperror.Internal("could not update supplier")
	}
	return s, nil
}

// SoftDelete marks the supplier inactive. There is no hard delete.
func SoftDelete(db *gorm.DB, id uint) (*models.Supplier, error) {
	s, err := Get(db, id)
	if err != nil {
		return nil, err
	}

	s.Active = false
	if err := db.Save(s).Error; err != nil {
		return nil, apperror.Internal("could not delete supplier")
	}
	return s, nil
}

// nextCode builds codes like SUP-20240101-0007 from the current row count.
func nextCode(db *gorm.DB, now time.Time) string {
	var count int64
	db.Model(&models.Supplier{}).Count(&count)
	return fmt.Sprintf("SUP-%s-%04d", now.Format("20060102"), count+1)
}
