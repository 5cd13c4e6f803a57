package models

import "time"

type EmployeeRole string

const (
	RoleAdmin          EmployeeRole = "ADMIN"
	RoleWarehouseStaff EmployeeRole = "WAREHOUSE_STAFF"
	RoleKitchenStaff   EmployeeRole = "KITCHEN_STAFF"
)

type Employee struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Username     string       `gorm:"size:100;uniqueIndex;not null" json:"username"`
	PasswordHash string       `gorm:"size:255;not null" json:"-"`
	FullName     string       `gorm:"size:150;not null" json:"full_name"`
	Email        string       `gorm:"size:150;uniqueIndex;not null" json:"email"`
	Role         EmployeeRole `gorm:"size:30;not null" json:"role"`
	Active       bool         `gorm:"not null" json:"active"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
