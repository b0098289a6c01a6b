package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmoreiradev/fardamento-api/internal/application/auth"
	"github.com/jmoreiradev/fardamento-api/internal/application/damage"
	"github.com/jmoreiradev/fardamento-api/internal/application/movement"
	"github.com/jmoreiradev/fardamento-api/internal/application/usecase"
	"github.com/jmoreiradev/fardamento-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	LocationUC  *usecase.LocationUseCase
	ItemUC      *usecase.ItemUseCase
	EmployeeUC  *usecase.EmployeeUseCase
	StockUC     *usecase.StockQueryUseCase
	DashboardUC *usecase.DashboardUseCase
	MovementUC  *movement.UseCase
	DamageUC    *damage.UseCase
	AuthUC      *auth.UseCase
	JWTSecret   string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Escrita restrita a admin e almoxarife; o papel consulta só lê.
	operates := RequireRole(entity.RoleAdmin, entity.RoleAlmoxarife)

	// Locations (protegido)
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", operates, locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Put("/:id", operates, locationHandler.Update)

	// Item types e variants (protegido)
	itemHandler := NewItemHandler(deps.ItemUC)
	itemTypes := protected.Group("/item-types")
	itemTypes.Post("/", operates, itemHandler.CreateType)
	itemTypes.Get("/", itemHandler.ListTypes)
	itemVariants := protected.Group("/item-variants")
	itemVariants.Post("/", operates, itemHandler.CreateVariant)
	itemVariants.Get("/", itemHandler.ListVariants)
	itemVariants.Get("/:id", itemHandler.GetVariant)

	// Employees (protegido)
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", operates, employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", operates, employeeHandler.Update)
	employees.Get("/:id/balances", employeeHandler.Balances)

	// Stock (protegido, somente leitura)
	stockHandler := NewStockHandler(deps.StockUC)
	protected.Get("/stock", stockHandler.List)

	// Movements (protegido)
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Post("/", operates, movementHandler.Create)
	movements.Get("/", movementHandler.List)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Post("/:id/status", operates, movementHandler.AdvanceStatus)

	// Damages (protegido)
	damageHandler := NewDamageHandler(deps.DamageUC)
	movements.Post("/:id/damages", operates, damageHandler.Register)
	movements.Get("/:id/damages", damageHandler.ListByMovement)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)
}
