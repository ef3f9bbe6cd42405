package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.UseCase
	UserUC    *usecase.UserUseCase
	ProductUC *usecase.ProductUseCase
	HistoryUC *usecase.HistoryUseCase
	LogUC     *usecase.LogUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (solo admin: incluye el alta con rol explícito)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Delete("/:username", userHandler.Delete)
	users.Get("/:username/role", userHandler.GetRole)
	users.Get("/:username/locked", userHandler.GetLocked)

	// Products (staff o superior)
	products := protected.Group("/products", RequireRole(entity.RoleStaff, entity.RoleManager, entity.RoleAdmin))
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:name", productHandler.GetByName)

	// History (staff o superior)
	history := protected.Group("/history", RequireRole(entity.RoleStaff, entity.RoleManager, entity.RoleAdmin))
	historyHandler := NewHistoryHandler(deps.HistoryUC)
	history.Get("/", historyHandler.List)
	history.Post("/", historyHandler.Create)

	// Logs de auditoría (solo admin)
	logs := protected.Group("/logs", RequireRole(entity.RoleAdmin))
	logsHandler := NewLogsHandler(deps.LogUC)
	logs.Get("/", logsHandler.List)
	logs.Post("/", logsHandler.Create)
}
