package app

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"headcover-configurator/app/controller"
	"headcover-configurator/app/router"
	"headcover-configurator/config"
	"headcover-configurator/db"
	"headcover-configurator/repository"
	"headcover-configurator/service"
	"headcover-configurator/variants"
)

// NewCatalogRepository picks the catalog source: PostgreSQL when database
// settings are present, otherwise the YAML snapshot
func NewCatalogRepository(ctx context.Context, cfg config.Config, logger *zap.Logger) (repository.CatalogRepositoryInterface, error) {
	if cfg.UsesDatabase() {
		if err := db.InitDB(ctx, cfg.DatabaseURL); err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		logger.Info("catalog source: postgres")
		return repository.NewCatalogRepository(logger), nil
	}

	if cfg.CatalogSnapshot == "" {
		return nil, fmt.Errorf("no catalog source configured. Set DATABASE_URL, DB_HOST or CATALOG_SNAPSHOT")
	}
	repo, err := repository.LoadSnapshot(cfg.CatalogSnapshot, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("catalog source: snapshot", zap.String("path", cfg.CatalogSnapshot))
	return repo, nil
}

// Initialize initializes the application and returns the configured router
func Initialize(ctx context.Context, cfg config.Config, logger *zap.Logger) (*http.ServeMux, error) {
	repo, err := NewCatalogRepository(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	engine := variants.NewEngine(
		variants.WithLogger(logger.Named("variants")),
		variants.WithConcurrency(cfg.GenerationConcurrency),
	)

	variantService := service.NewVariantService(repo, engine, logger.Named("service"))
	sheetService := service.NewSheetService(cfg.ChromePath, cfg.SheetTimeout, logger.Named("sheet"))

	controllers := &router.Controllers{
		Variant: controller.NewVariantController(variantService, sheetService, logger.Named("http")),
	}

	mux := http.NewServeMux()
	router.SetupRoutes(mux, controllers)
	return mux, nil
}
