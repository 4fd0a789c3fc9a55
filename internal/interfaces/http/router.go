package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/opsdesk-api/internal/application/analytics"
	"github.com/jhoicas/opsdesk-api/internal/application/auth"
	"github.com/jhoicas/opsdesk-api/internal/application/usecase"
	"github.com/jhoicas/opsdesk-api/internal/domain/entity"
)

// BodyLimit tamaño máximo de petición: adjuntos de 10 MiB más el sobre multipart.
const BodyLimit = 12 << 20

// NewApp crea la aplicación Fiber con el manejador de errores, recover y log de peticiones.
func NewApp(name string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      name,
		ErrorHandler: ErrorHandler,
		BodyLimit:    BodyLimit,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(RequestLogger())
	return app
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	JobRequestUC *usecase.JobRequestUseCase
	DeliveryUC   *usecase.DeliveryUseCase
	PatrolUC     *usecase.PatrolUseCase
	ReportUC     *usecase.ReportUseCase
	MealCountUC  *usecase.MealCountUseCase
	CompanyUC    *usecase.CompanyUseCase
	UserUC       *usecase.UserUseCase
	DashboardUC  *appanalytics.DashboardUseCase

	APIPrefix    string // ej. /api/v1
	CookieSecure bool
	FilesDir     string // almacenamiento local servido en {prefix}/files; vacío con MinIO
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	prefix := deps.APIPrefix
	if prefix == "" {
		prefix = "/api/v1"
	}
	api := app.Group(prefix)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.CookieSecure)
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Get("/verify", authHandler.Verify)
	api.Post("/logout", authHandler.Logout)

	// Rutas protegidas (cookie "token" o Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.AuthUC))
	managers := RequireRole(string(entity.RoleAdmin), string(entity.RoleManager))

	if deps.FilesDir != "" {
		protected.Static("/files", deps.FilesDir)
	}

	// Job requests
	jobs := protected.Group("/job-requests")
	jobHandler := NewJobRequestHandler(deps.JobRequestUC)
	jobs.Get("/", jobHandler.List)
	jobs.Post("/", jobHandler.Create)
	jobs.Get("/export", jobHandler.Export)
	jobs.Get("/:id", jobHandler.GetByID)
	jobs.Patch("/:id", jobHandler.Update)
	jobs.Put("/:id/status", jobHandler.UpdateStatus)
	jobs.Patch("/:id/status", jobHandler.UpdateStatus)
	jobs.Post("/:id/comments", jobHandler.AddComment)
	jobs.Delete("/:id", managers, jobHandler.Delete)

	// Deliveries
	deliveries := protected.Group("/deliveries")
	deliveryHandler := NewDeliveryHandler(deps.DeliveryUC)
	deliveries.Get("/", deliveryHandler.List)
	deliveries.Post("/", deliveryHandler.Create)
	deliveries.Get("/:id", deliveryHandler.GetByID)
	deliveries.Patch("/:id/status", deliveryHandler.UpdateStatus)
	deliveries.Put("/:id/status", deliveryHandler.UpdateStatus)
	deliveries.Delete("/:id", managers, deliveryHandler.Delete)

	// Patrols
	patrols := protected.Group("/patrols")
	patrolHandler := NewPatrolHandler(deps.PatrolUC)
	patrols.Get("/", patrolHandler.List)
	patrols.Post("/", patrolHandler.Create)
	patrols.Get("/:id", patrolHandler.GetByID)
	patrols.Patch("/:id", patrolHandler.Update)
	patrols.Patch("/:id/status", patrolHandler.UpdateStatus)
	patrols.Post("/:id/image", patrolHandler.UploadImage)
	patrols.Delete("/:id", managers, patrolHandler.Delete)

	// Reports
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/", reportHandler.List)
	reports.Post("/", reportHandler.Create)
	reports.Get("/:id", reportHandler.GetByID)
	reports.Get("/:id/pdf", reportHandler.PDF)
	reports.Put("/:id/status", reportHandler.UpdateStatus)
	reports.Patch("/:id/status", reportHandler.UpdateStatus)
	reports.Post("/:reportId/comments", reportHandler.AddComment)
	reports.Post("/:reportId/files", reportHandler.AddFile)
	reports.Delete("/:id", managers, reportHandler.Delete)

	// Meal counts
	meals := protected.Group("/meal-counts")
	mealHandler := NewMealCountHandler(deps.MealCountUC)
	meals.Get("/", mealHandler.List)
	meals.Post("/", mealHandler.Save)
	meals.Get("/export", mealHandler.Export)
	meals.Get("/:date", mealHandler.GetByDate)

	// Companies & employees
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies := protected.Group("/companies")
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)
	employees := protected.Group("/employees")
	employees.Get("/", companyHandler.ListEmployees)
	employees.Post("/", companyHandler.CreateEmployee)
	employees.Get("/:id", companyHandler.GetEmployee)
	employees.Delete("/:id", managers, companyHandler.DeleteEmployee)

	// Users (solo ADMIN)
	users := protected.Group("/users", RequireRole(string(entity.RoleAdmin)))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Patch("/:id/role", userHandler.UpdateRole)
	users.Delete("/:id", userHandler.Delete)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.GetSummary)
}
