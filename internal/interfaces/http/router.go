package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bodegas-api/internal/application/auth"
	"github.com/jhoicas/Bodegas-api/internal/application/inventory"
	"github.com/jhoicas/Bodegas-api/internal/application/ledger"
	"github.com/jhoicas/Bodegas-api/internal/application/transfer"
	"github.com/jhoicas/Bodegas-api/internal/application/usecase"
	"github.com/jhoicas/Bodegas-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC   *usecase.CompanyUseCase
	WarehouseUC *usecase.WarehouseUseCase
	ReconcileUC *inventory.ReconcileUseCase
	ItemAdminUC *inventory.ItemAdminUseCase
	StockUC     *inventory.StockUseCase
	TransferUC  *transfer.TransferUseCase
	BulkUC      *transfer.BulkCoordinator
	LedgerUC    *ledger.QueryUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (público por ahora; se puede proteger con AuthMiddleware(deps.JWTSecret))
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	adminOnly := RequireRole(entity.RoleAdmin)
	stockRoles := RequireRole(entity.RoleAdmin, entity.RoleBodeguero)

	// Warehouses (protegido; administración solo admin)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC, deps.ReconcileUC)
	warehouses.Post("/", adminOnly, warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", adminOnly, warehouseHandler.Update)
	warehouses.Delete("/:id", adminOnly, warehouseHandler.Deactivate)
	warehouses.Get("/:id/alert", warehouseHandler.AlertStatus)
	warehouses.Post("/:id/reconcile", adminOnly, warehouseHandler.Reconcile)

	// Items (protegido)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemAdminUC)
	items.Post("/", stockRoles, itemHandler.Create)
	items.Get("/", itemHandler.ListByWarehouse)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", stockRoles, itemHandler.Update)
	items.Delete("/:id", adminOnly, itemHandler.Delete)

	// Operaciones de inventario (protegido)
	invGroup := protected.Group("/inventory")
	stockHandler := NewStockHandler(deps.StockUC)
	invGroup.Post("/movements", stockRoles, stockHandler.RegisterOperation)

	transferHandler := NewTransferHandler(deps.TransferUC, deps.BulkUC)
	invGroup.Post("/transfers", stockRoles, transferHandler.Transfer)
	invGroup.Post("/transfers/bulk", stockRoles, transferHandler.BulkTransfer)

	// Ledger (protegido, solo lectura)
	ledgerGroup := protected.Group("/ledger")
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	ledgerGroup.Get("/", ledgerHandler.List)
	ledgerGroup.Get("/:id", ledgerHandler.GetByID)
}
