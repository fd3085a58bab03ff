package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/chilaquiles-api/internal/application/auth"
	"github.com/jhoicas/chilaquiles-api/internal/application/usecase"
	"github.com/jhoicas/chilaquiles-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	MenuItemUC *usecase.MenuItemUseCase
	Tokens     tokenVerifier
	Log        *logger.Logger
	Driver     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	api.Get("/health", Health(deps.Driver))

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	requireAuth := AuthMiddleware(deps.Tokens, deps.Log)
	api.Get("/me", requireAuth, authHandler.Me)

	// Chilaquiles (cualquier usuario autenticado)
	menu := api.Group("/chilaquiles", requireAuth)
	menuHandler := NewMenuItemHandler(deps.MenuItemUC)
	menu.Get("/", menuHandler.List)
	menu.Post("/", menuHandler.Create)
	menu.Get("/:id", menuHandler.GetByID)
	menu.Put("/:id", menuHandler.Update)
	menu.Delete("/:id", menuHandler.Delete)
	menu.Post("/:id/restore", menuHandler.Restore)

	// Usuarios (admin, rol releído en cada petición)
	admin := api.Group("/admin", requireAuth, RequireAdmin(deps.AuthUC))
	userHandler := NewAdminUserHandler(deps.UserUC)
	admin.Get("/users", userHandler.List)
	admin.Post("/users", userHandler.Create)
	admin.Put("/users/:id", userHandler.Update)
	admin.Delete("/users/:id", userHandler.Delete)
	admin.Post("/users/:id/restore", userHandler.Restore)
}
