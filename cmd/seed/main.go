// Seeds the default employee accounts for local development.
// Usage: go run ./cmd/seed
package main

import (
	"log"

	"warehouse-backend/internal/config"
	"warehouse-backend/internal/database"
	"warehouse-backend/internal/models"

	"golang.org/x/crypto/bcrypt"
)

type seedEmployee struct {
	username string
	password string
	fullName string
	email    string
	role     models.EmployeeRole
}

func main() {
	cfg := config.Load()
	database.Init(cfg)

	seeds := []seedEmployee{
		{"admin", "admin123", "System Administrator", "admin@warehouse.local", models.RoleAdmin},
		{"warehouse1", "warehouse123", "Warehouse Staff", "warehouse1@warehouse.local", models.RoleWarehouseStaff},
		{"kitchen1", "kitchen123", "Kitchen Staff", "kitchen1@warehouse.local", models.RoleKitchenStaff},
	}

	for _, s := range seeds {
		var existing models.Employee
		if err := database.DB.Where("username = ?", s.username).First(&existing).Error; err == nil {
			log.Printf("employee %q already exists, skipping", s.username)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("bcrypt error: %v", err)
		}

		employee := models.Employee{
			Username:     s.username,
			PasswordHash: string(hash),
			FullName:     s.fullName,
			Email:        s.email,
			Role:         s.role,
			Active:       true,
		}
		if err := database.DB.Create(&employee).Error; err != nil {
			log.Fatalf("could not create employee %q: %v", s.username, err)
		}
		log.Printf("employee %q created (%s)", s.username, s.role)
	}
}
