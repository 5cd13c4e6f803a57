package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type MaterialStatus string

const (
	MaterialAvailable  MaterialStatus = "AVAILABLE"
	MaterialLowStock   MaterialStatus = "LOW_STOCK"
	MaterialOutOfStock MaterialStatus = "OUT_OF_STOCK"
	MaterialExpired    MaterialStatus = "EXPIRED"
)

// Material.Status is always derived from quantity, min_quantity and
// expiry_date; clients never set it directly.
type Material struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	Code        string           `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Name        string           `gorm:"size:150;not null;index" json:"name"`
	Description string           `gorm:"type:text" json:"description"`
	Quantity    decimal.Decimal  `gorm:"type:decimal(20,4);not null" json:"quantity"`
	Unit        string           `gorm:"size:20;not null" json:"unit"`
	MinQuantity decimal.Decimal  `gorm:"type:decimal(20,4);not null" json:"min_quantity"`
	UnitPrice   *decimal.Decimal `gorm:"type:decimal(20,4)" json:"unit_price"`
	ExpiryDate  *time.Time       `gorm:"type:date" json:"expiry_date"`
	SupplierID  *uint            `gorm:"index" json:"supplier_id"`
	Supplier    *Supplier        `json:"-"`
	Status      MaterialStatus   `gorm:"size:20;not null" json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
