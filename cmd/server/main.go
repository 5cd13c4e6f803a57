package main

import (
	"log"
	"strings"

	"warehouse-backend/internal/audit"
	"warehouse-backend/internal/auth"
	"warehouse-backend/internal/config"
	"warehouse-backend/internal/database"
	"warehouse-backend/internal/material"
	"warehouse-backend/internal/models"
	"warehouse-backend/internal/request"
	"warehouse-backend/internal/response"
	"warehouse-backend/internal/supplier"
	"warehouse-backend/internal/transaction"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: response.ErrorHandler,
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/login", auth.LoginHandler(cfg))
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))

	// Everything below requires a valid token.
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Post("/auth/logout", auth.LogoutHandler())
	protected.Get("/auth/me", auth.MeHandler())

	allStaff := auth.RequireRole(models.RoleAdmin, models.RoleWarehouseStaff, models.RoleKitchenStaff)
	warehouse := auth.RequireRole(models.RoleAdmin, models.RoleWarehouseStaff)
	kitchen := auth.RequireRole(models.RoleAdmin, models.RoleKitchenStaff)
	adminOnly := auth.RequireRole(models.RoleAdmin)

	// Material catalog
	protected.Get("/materials", allStaff, material.ListMaterialsHandler())
	protected.Get("/materials/search", allStaff, material.SearchMaterialsHandler())
	protected.Get("/materials/warning", warehouse, material.WarningsHandler())
	protected.Post("/materials", warehouse, material.CreateMaterialHandler())
	protected.Post("/materials/import", warehouse, transaction.ImportHandler())
	protected.Post("/materials/export", warehouse, transaction.ExportHandler())
	protected.Get("/materials/:id", allStaff, material.GetMaterialHandler())
	protected.Put("/materials/:id", warehouse, material.UpdateMaterialHandler())

	// Transaction ledger
	protected.Get("/transactions", warehouse, transaction.ListTransactionsHandler())
	protected.Get("/transactions/material/:materialId", warehouse, transaction.ListTransactionsByMaterialHandler())

	// Restock request workflow
	protected.Get("/requests", allStaff, request.ListRequestsHandler())
	protected.Get("/requests/pending", warehouse, request.PendingRequestsHandler())
	protected.Get("/requests/:id", allStaff, request.GetRequestHandler())
	protected.Post("/requests", kitchen, request.CreateRequestHandler())
	protected.Put("/requests/:id/approve", warehouse, request.ApproveRequestHandler())
	protected.Put("/requests/:id/reject", warehouse, request.RejectRequestHandler())

	// Supplier registry
	protected.Get("/suppliers", warehouse, supplier.ListSuppliersHandler())
	protected.Get("/suppliers/search", warehouse, supplier.SearchSuppliersHandler())
	protected.Get("/suppliers/:id", warehouse, supplier.GetSupplierHandler())
	protected.Post("/suppliers", warehouse, supplier.CreateSupplierHandler())
	protected.Put("/suppliers/:id", warehouse, supplier.UpdateSupplierHandler())
	protected.Delete("/suppliers/:id", warehouse, supplier.DeleteSupplierHandler())

	// Audit trail
	protected.Get("/audit-logs", adminOnly, audit.ListAuditLogsHandler())

	log.Println("Server listening on port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
