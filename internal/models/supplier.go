package models

import "time"

// Supplier is never hard-deleted; Active=false marks it removed.
type Supplier struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Code          string    `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Name          string    `gorm:"size:150;not null" json:"name"`
	ContactPerson string    `gorm:"size:150;not null" json:"contact_person"`
	Phone         string    `gorm:"size:30;not null" json:"phone"`
	Email         string    `gorm:"size:150;not null" json:"email"`
	Address       string    `gorm:"type:text" json:"address"`
	TaxCode       string    `gorm:"size:50" json:"tax_code"`
	Note          string    `gorm:"type:text" json:"note"`
	Active        bool      `gorm:"not null" json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
