package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionImport TransactionType = "IMPORT"
	TransactionExport TransactionType = "EXPORT"
)

// Transaction is an append-only ledger entry. There are no update or delete
// operations anywhere in the codebase.
type Transaction struct {
	ID              uint             `gorm:"primaryKey" json:"id"`
	TransactionCode string           `gorm:"size:50;uniqueIndex;not null" json:"transaction_code"`
	MaterialID      uint             `gorm:"index;not null" json:"material_id"`
	Material        Material         `json:"-"`
	Type            TransactionType  `gorm:"size:10;not null" json:"type"`
	Quantity        decimal.Decimal  `gorm:"type:decimal(20,4);not null" json:"quantity"`
	Unit            string           `gorm:"size:20;not null" json:"unit"`
	UnitPrice       *decimal.Decimal `gorm:"type:decimal(20,4)" json:"unit_price"`
	TotalPrice      *decimal.Decimal `gorm:"type:decimal(20,4)" json:"total_price"`
	SupplierID      *uint            `gorm:"index" json:"supplier_id"`
	Supplier        *Supplier        `json:"-"`
	EmployeeID      uint             `gorm:"index;not null" json:"employee_id"`
	Employee        Employee         `json:"-"`
	RequestID       *uint            `gorm:"index" json:"request_id"`
	Request         *MaterialRequest `gorm:"foreignKey:RequestID" json:"-"`
	Note            string           `gorm:"type:text" json:"note"`
	TransactionDate time.Time        `gorm:"not null" json:"transaction_date"`
	CreatedAt       time.Time        `json:"created_at"`
}
