package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"headcover-configurator/metrics"
	"headcover-configurator/models"
	"headcover-configurator/repository"
	"headcover-configurator/variants"
)

// ErrIncompleteVariantSet is returned by Submit when any variant was skipped
var ErrIncompleteVariantSet = errors.New("variant set incomplete")

const (
	actionPreview = "preview"
	actionSubmit  = "submit"
)

// VariantService loads reference data and runs the variant engine
type VariantService struct {
	repository repository.CatalogRepositoryInterface
	engine     *variants.Engine
	logger     *zap.Logger
}

// NewVariantService creates a new VariantService
func NewVariantService(repo repository.CatalogRepositoryInterface, engine *variants.Engine, logger *zap.Logger) *VariantService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VariantService{
		repository: repo,
		engine:     engine,
		logger:     logger,
	}
}

// Preview generates the variant set for a configuration without any side effects.
// Skipped items are reported alongside the variants.
func (s *VariantService) Preview(ctx context.Context, cfg models.Configuration) (*models.VariantPreview, error) {
	return s.generate(ctx, actionPreview, cfg)
}

// Submit generates the variant set and rejects it unless every variant could be built.
// Publishing the accepted set is left to the caller.
func (s *VariantService) Submit(ctx context.Context, cfg models.Configuration) (*models.VariantPreview, error) {
	preview, err := s.generate(ctx, actionSubmit, cfg)
	if err != nil {
		return nil, err
	}
	if len(preview.Skipped) > 0 {
		return preview, fmt.Errorf("%w: %d variant(s) skipped", ErrIncompleteVariantSet, len(preview.Skipped))
	}
	return preview, nil
}

func (s *VariantService) generate(ctx context.Context, action string, cfg models.Configuration) (preview *models.VariantPreview, err error) {
	started := time.Now()
	defer func() {
		metrics.RecordGeneration(cfg.CollectionID, action, started, err)
	}()

	if cfg.CollectionID == "" {
		return nil, fmt.Errorf("%w: collectionId is required", variants.ErrConfiguration)
	}

	in, err := s.loadInput(ctx, cfg)
	if err != nil {
		return nil, err
	}

	result, err := s.engine.Generate(*in)
	if err != nil {
		s.logger.Warn("VariantService: generation rejected",
			zap.String("action", action),
			zap.String("collection", cfg.CollectionID),
			zap.Error(err))
		return nil, err
	}

	metrics.RecordVariants(cfg.CollectionID, result.RegularCount, result.CustomCount)
	for _, item := range result.Skipped {
		metrics.RecordSkipped(cfg.CollectionID, item.Stage)
	}

	s.logger.Info("VariantService: generated variants",
		zap.String("action", action),
		zap.String("collection", cfg.CollectionID),
		zap.Int("variants", len(result.Variants)),
		zap.Int("skipped", len(result.Skipped)),
		zap.Duration("elapsed", time.Since(started)))

	return &models.VariantPreview{
		CollectionID: cfg.CollectionID,
		Variants:     result.Variants,
		Skipped:      result.Skipped,
		RegularCount: result.RegularCount,
		CustomCount:  result.CustomCount,
	}, nil
}

// loadInput materializes the collection, its price table and the catalog
func (s *VariantService) loadInput(ctx context.Context, cfg models.Configuration) (*variants.Input, error) {
	collection, err := s.repository.GetCollection(ctx, cfg.CollectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load collection: %w", err)
	}

	prices, err := s.repository.GetPriceTable(ctx, cfg.CollectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load price table: %w", err)
	}

	catalog, err := s.repository.GetCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	return &variants.Input{
		Collection: *collection,
		PriceTable: *prices,
		Catalog:    *catalog,
		Config:     cfg,
	}, nil
}
