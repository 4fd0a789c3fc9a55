// Package bootstrap arma el grafo de dependencias (persistencia, almacenamiento,
// revocación de tokens y casos de uso) a partir de la configuración.
// Lo comparten cmd/api y cmd/opsctl.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	appanalytics "github.com/jhoicas/opsdesk-api/internal/application/analytics"
	"github.com/jhoicas/opsdesk-api/internal/application/auth"
	"github.com/jhoicas/opsdesk-api/internal/application/ports"
	"github.com/jhoicas/opsdesk-api/internal/application/status"
	"github.com/jhoicas/opsdesk-api/internal/application/usecase"
	"github.com/jhoicas/opsdesk-api/internal/domain/repository"
	"github.com/jhoicas/opsdesk-api/internal/infrastructure/cache"
	"github.com/jhoicas/opsdesk-api/internal/infrastructure/excel"
	"github.com/jhoicas/opsdesk-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/opsdesk-api/internal/infrastructure/pdf"
	"github.com/jhoicas/opsdesk-api/internal/infrastructure/postgres"
	"github.com/jhoicas/opsdesk-api/internal/infrastructure/storage"
	"github.com/jhoicas/opsdesk-api/pkg/config"
)

// Repositories puertos de persistencia de un mismo backend (postgres o memory).
type Repositories struct {
	Users       repository.UserRepository
	JobRequests repository.JobRequestRepository
	Deliveries  repository.DeliveryRepository
	Patrols     repository.PatrolRepository
	Reports     repository.ReportRepository
	MealCounts  repository.MealCountRepository
	Companies   repository.CompanyRepository
	Employees   repository.EmployeeRepository
	Dashboard   repository.DashboardRepository
	JobTx       ports.JobRequestTxRunner
}

// MemoryRepositories repositorios sobre un Store en memoria.
func MemoryRepositories(s *memory.Store) *Repositories {
	return &Repositories{
		Users:       s.Users(),
		JobRequests: s.JobRequests(),
		Deliveries:  s.Deliveries(),
		Patrols:     s.Patrols(),
		Reports:     s.Reports(),
		MealCounts:  s.MealCounts(),
		Companies:   s.Companies(),
		Employees:   s.Employees(),
		Dashboard:   s.Dashboard(),
		JobTx:       memory.NewTxRunner(s),
	}
}

// OpenRepositories abre el backend indicado por DB_DRIVER. El cierre devuelto libera el pool.
func OpenRepositories(ctx context.Context, cfg config.DBConfig) (*Repositories, func(), error) {
	if cfg.Driver == config.DriverMemory {
		log.Warn().Msg("DB_DRIVER=memory: los datos se pierden al reiniciar")
		return MemoryRepositories(memory.NewStore()), func() {}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	if cfg.AutoSchema {
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
	}
	return &Repositories{
		Users:       postgres.NewUserRepository(pool),
		JobRequests: postgres.NewJobRequestRepository(pool),
		Deliveries:  postgres.NewDeliveryRepository(pool),
		Patrols:     postgres.NewPatrolRepository(pool),
		Reports:     postgres.NewReportRepository(pool),
		MealCounts:  postgres.NewMealCountRepository(pool),
		Companies:   postgres.NewCompanyRepository(pool),
		Employees:   postgres.NewEmployeeRepository(pool),
		Dashboard:   postgres.NewDashboardRepository(pool),
		JobTx:       postgres.NewTxRunner(pool),
	}, pool.Close, nil
}

// OpenStorage abre el almacenamiento de archivos. filesDir no está vacío cuando el
// almacenamiento es local y debe servirse en {apiPrefix}/files.
func OpenStorage(ctx context.Context, cfg config.StorageConfig, apiPrefix string) (store ports.ObjectStorage, filesDir string, err error) {
	if cfg.Driver == config.StorageMinIO {
		m, err := storage.NewMinIOStorage(ctx, storage.MinIOConfig{
			Endpoint:  cfg.MinIOEndpoint,
			AccessKey: cfg.MinIOAccessKey,
			SecretKey: cfg.MinIOSecretKey,
			Bucket:    cfg.MinIOBucket,
			UseSSL:    cfg.MinIOUseSSL,
			URLExpiry: time.Hour,
		})
		if err != nil {
			return nil, "", err
		}
		return m, "", nil
	}
	local, err := storage.NewLocalStorage(cfg.LocalDir, apiPrefix+"/files")
	if err != nil {
		return nil, "", err
	}
	return local, local.Dir(), nil
}

// OpenRevoker usa Redis si REDIS_ADDR está definido; si no, una lista en memoria.
func OpenRevoker(ctx context.Context, cfg config.RedisConfig) (ports.TokenRevoker, func(), error) {
	if cfg.Addr == "" {
		return cache.NewMemoryRevoker(), func() {}, nil
	}
	client, err := cache.NewRedisClient(ctx, cache.RedisConfig{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
	if err != nil {
		return nil, nil, err
	}
	return cache.NewRedisRevoker(client), func() { _ = client.Close() }, nil
}

// UseCases casos de uso listos para el router o la CLI.
type UseCases struct {
	Auth       *auth.AuthUseCase
	JobRequest *usecase.JobRequestUseCase
	Delivery   *usecase.DeliveryUseCase
	Patrol     *usecase.PatrolUseCase
	Report     *usecase.ReportUseCase
	MealCount  *usecase.MealCountUseCase
	Company    *usecase.CompanyUseCase
	User       *usecase.UserUseCase
	Dashboard  *appanalytics.DashboardUseCase
}

// NewUseCases construye los casos de uso sobre los repositorios y adaptadores dados.
func NewUseCases(r *Repositories, files ports.ObjectStorage, revoker ports.TokenRevoker, jwtCfg auth.JWTConfig, appName string) *UseCases {
	statuses := status.NewService(r.JobRequests, r.Deliveries, r.Patrols, r.Reports)
	exporter := excel.NewExporter()
	return &UseCases{
		Auth:       auth.NewAuthUseCase(r.Users, revoker, jwtCfg),
		JobRequest: usecase.NewJobRequestUseCase(r.JobRequests, r.JobTx, statuses, exporter),
		Delivery:   usecase.NewDeliveryUseCase(r.Deliveries, statuses),
		Patrol:     usecase.NewPatrolUseCase(r.Patrols, r.Users, statuses, files),
		Report:     usecase.NewReportUseCase(r.Reports, statuses, files, infrapdf.NewMarotoPDFGenerator(appName)),
		MealCount:  usecase.NewMealCountUseCase(r.MealCounts, exporter),
		Company:    usecase.NewCompanyUseCase(r.Companies, r.Employees),
		User:       usecase.NewUserUseCase(r.Users),
		Dashboard:  appanalytics.NewDashboardUseCase(r.Dashboard, r.MealCounts),
	}
}
