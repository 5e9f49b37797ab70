package bootstrap

import (
	"storefront-be/internal/config"
	"storefront-be/internal/pkg/logger"
	"storefront-be/internal/repository/memory"
	"storefront-be/internal/repository/unitofwork"
	"storefront-be/internal/service"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type Container struct {
	Logger     logger.ILogger
	UOWFactory unitofwork.RepositoryFactory

	CatalogService service.ICatalogService
	OrderService   service.IOrderService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	return newContainer(db, cfg, sysLogger)
}

func newContainer(db *gorm.DB, cfg *config.Config, sysLogger logger.ILogger) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	validate := validator.New()

	// 2. Caches
	catalogCache := memory.NewResultCache(cfg.Catalog.CacheTTL, cfg.Catalog.CacheCleanupInterval)

	// 3. Services
	catalogService := service.NewCatalogService(uowFactory, catalogCache, sysLogger, validate)
	orderService := service.NewOrderService(uowFactory, sysLogger, validate)

	sysLogger.Info("BOOTSTRAP", "Container ready", map[string]interface{}{
		"environment": cfg.App.Environment,
		"cache_ttl":   cfg.Catalog.CacheTTL.String(),
	})

	return &Container{
		Logger:         sysLogger,
		UOWFactory:     uowFactory,
		CatalogService: catalogService,
		OrderService:   orderService,
	}
}
