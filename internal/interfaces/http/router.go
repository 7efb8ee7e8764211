package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/martinmalgor04/sistema-empleados-api/internal/application/auth"
	"github.com/martinmalgor04/sistema-empleados-api/internal/application/procurement"
	"github.com/martinmalgor04/sistema-empleados-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	SupplierUC       *usecase.SupplierUseCase
	PurchaseUC       *usecase.PurchaseUseCase
	RegisterPurchase *procurement.RegisterPurchaseUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Needs (protegido): catálogo de necesidades pendientes
	needs := protected.Group("/needs")
	needHandler := NewNeedHandler(deps.RegisterPurchase)
	needs.Get("/", needHandler.List)

	// Suppliers (protegido): directorio de proveedores
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/search", supplierHandler.Search)
	suppliers.Post("/", supplierHandler.Create)

	// Procurement (protegido): asistente de registro de compras por sesión
	proc := protected.Group("/procurement")
	procHandler := NewProcurementHandler(deps.RegisterPurchase)
	proc.Post("/session", procHandler.StartSession)
	proc.Get("/session", procHandler.Session)
	proc.Put("/session/selection", procHandler.ToggleSelection)
	proc.Put("/session/selection/all", procHandler.SelectAll)
	proc.Put("/session/items/:needId", procHandler.EditItem)
	proc.Put("/session/supplier", procHandler.ResolveSupplier)
	proc.Get("/suppliers", procHandler.SearchSuppliers)
	proc.Put("/session/general", procHandler.SetGeneral)
	proc.Post("/session/next", procHandler.Advance)
	proc.Post("/session/back", procHandler.Back)
	proc.Post("/session/abort", procHandler.Abort)
	proc.Post("/session/confirm", procHandler.Confirm)

	// Purchases (protegido): historial de compras confirmadas
	purchases := protected.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.GetByID)
}
