package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/swaggo/swag"

	_ "github.com/jhoicas/chilaquiles-api/docs"
	"github.com/jhoicas/chilaquiles-api/internal/application/auth"
	"github.com/jhoicas/chilaquiles-api/internal/application/usecase"
	"github.com/jhoicas/chilaquiles-api/internal/domain/repository"
	"github.com/jhoicas/chilaquiles-api/internal/infrastructure/memory"
	"github.com/jhoicas/chilaquiles-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/chilaquiles-api/internal/interfaces/http"
	"github.com/jhoicas/chilaquiles-api/pkg/config"
	"github.com/jhoicas/chilaquiles-api/pkg/jwt"
	"github.com/jhoicas/chilaquiles-api/pkg/logger"
)

// @title                       Chilaquiles API
// @version                     1.0
// @description                 API REST de chilaquiles con autenticación JWT.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		userRepo     repository.UserRepository
		menuItemRepo repository.MenuItemRepository
	)
	switch cfg.DB.Driver {
	case "memory":
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		userRepo = memory.NewUserRepository()
		menuItemRepo = memory.NewMenuItemRepository()
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		if cfg.DB.AutoMigrate {
			if err := postgres.Migrate(ctx, pool, postgres.MigrateUp); err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
			log.Info().Msg("migraciones aplicadas")
		}
		userRepo = postgres.NewUserRepository(pool)
		menuItemRepo = postgres.NewMenuItemRepository(pool)
	}

	tokens, err := jwt.NewManager(jwt.Config{
		Key:      cfg.JWT.Key,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
		TTL:      time.Duration(cfg.JWT.Expiration) * time.Minute,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("configuración JWT")
	}

	authUC := auth.NewAuthUseCase(userRepo, tokens)
	userUC := usecase.NewUserUseCase(userRepo)
	menuItemUC := usecase.NewMenuItemUseCase(menuItemRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	httpRouter.UseBaseMiddleware(app, log)
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.ReplaceAll(cfg.HTTP.CORSOrigins, " ", ""),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Chilaquiles API",
	}))
	app.Get("/api/docs/doc.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.SendString(doc)
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		UserUC:     userUC,
		MenuItemUC: menuItemUC,
		Tokens:     tokens,
		Log:        log,
		Driver:     cfg.DB.Driver,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
