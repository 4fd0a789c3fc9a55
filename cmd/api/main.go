package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/opsdesk-api/internal/application/auth"
	"github.com/jhoicas/opsdesk-api/internal/bootstrap"
	httpRouter "github.com/jhoicas/opsdesk-api/internal/interfaces/http"
	"github.com/jhoicas/opsdesk-api/pkg/config"
	"github.com/jhoicas/opsdesk-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = "dev-only-secret"
		log.Warn().Msg("JWT_SECRET vacío: usando secreto de desarrollo")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Str("storage_driver", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	repos, closeDB, err := bootstrap.OpenRepositories(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("persistencia")
	}
	defer closeDB()

	files, filesDir, err := bootstrap.OpenStorage(ctx, cfg.Storage, cfg.HTTP.APIPrefix)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de archivos")
	}

	revoker, closeRevoker, err := bootstrap.OpenRevoker(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer closeRevoker()

	ucs := bootstrap.NewUseCases(repos, files, revoker, auth.JWTConfig{
		Secret:      cfg.JWT.Secret,
		Issuer:      cfg.JWT.Issuer,
		LoginTTL:    cfg.JWT.LoginTTL,
		RegisterTTL: cfg.JWT.RegisterTTL,
	}, cfg.App.Name)

	app := httpRouter.NewApp(cfg.App.Name)

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.HTTP.DocsFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.DocsFile,
			Path:     "docs",
			Title:    "OpsDesk API",
		}))
	} else {
		log.Warn().Str("file", cfg.HTTP.DocsFile).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       ucs.Auth,
		JobRequestUC: ucs.JobRequest,
		DeliveryUC:   ucs.Delivery,
		PatrolUC:     ucs.Patrol,
		ReportUC:     ucs.Report,
		MealCountUC:  ucs.MealCount,
		CompanyUC:    ucs.Company,
		UserUC:       ucs.User,
		DashboardUC:  ucs.Dashboard,
		APIPrefix:    cfg.HTTP.APIPrefix,
		CookieSecure: cfg.JWT.CookieSecure,
		FilesDir:     filesDir,
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
