package models

import "time"

type AuditAction string

const (
	AuditActionCreate  AuditAction = "CREATE"
	AuditActionUpdate  AuditAction = "UPDATE"
	AuditActionDelete  AuditAction = "DELETE"
	AuditActionImport  AuditAction = "IMPORT"
	AuditActionExport  AuditAction = "EXPORT"
	AuditActionApprove AuditAction = "APPROVE"
	AuditActionReject  AuditAction = "REJECT"
)

type AuditLog struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	EmployeeID   uint        `gorm:"index;not null" json:"employee_id"`
	EmployeeName string      `gorm:"size:150;not null" json:"employee_name"`
	EntityType   string      `gorm:"size:50;index;not null" json:"entity_type"`
	EntityID     uint        `gorm:"index;not null" json:"entity_id"`
	Action       AuditAction `gorm:"size:20;not null" json:"action"`
	Description  string      `gorm:"type:text" json:"description"`
	BeforeData   string      `gorm:"type:jsonb" json:"before_data"`
	AfterData    string      `gorm:"type:jsonb" json:"after_data"`
	CreatedAt    time.Time   `json:"created_at"`
}
