package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type RequestStatus string

const (
	RequestPending   RequestStatus = "PENDING"
	RequestApproved  RequestStatus = "APPROVED"
	RequestRejected  RequestStatus = "REJECTED"
	RequestCompleted RequestStatus = "COMPLETED"
)

// MaterialRequest: restock request raised by kitchen staff. PENDING until an
// approver decides; COMPLETED only as a side effect of a fulfilling export.
type MaterialRequest struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	RequestCode       string          `gorm:"size:50;uniqueIndex;not null" json:"request_code"`
	MaterialID        uint            `gorm:"index;not null" json:"material_id"`
	Material          Material        `json:"-"`
	RequestedQuantity decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"requested_quantity"`
	Unit              string          `gorm:"size:20;not null" json:"unit"`
	RequesterID       uint            `gorm:"index;not null" json:"requester_id"`
	Requester         Employee        `gorm:"foreignKey:RequesterID" json:"-"`
	ApproverID        *uint           `gorm:"index" json:"approver_id"`
	Approver          *Employee       `gorm:"foreignKey:ApproverID" json:"-"`
	Status            RequestStatus   `gorm:"size:20;not null" json:"status"`
	Reason            string          `gorm:"type:text" json:"reason"`
	Note              string          `gorm:"type:text" json:"note"`
	ApprovedAt        *time.Time      `json:"approved_at"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
