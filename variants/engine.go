// Package variants expands a headcover configuration into its purchasable variants.
//
// Generation is pure: catalogs are materialized by the caller, nothing is read
// or written, and identical inputs always produce an identical ordered output.
package variants

import (
	"errors"

	"go.uber.org/zap"

	"headcover-configurator/models"
)

const defaultConcurrency = 4

// Input is everything one generation run needs
type Input struct {
	Collection models.Collection
	PriceTable models.PriceTable
	Catalog    models.Catalog
	Config     models.Configuration
}

// Result is the composed output of one generation run
type Result struct {
	Variants     []models.Variant
	Skipped      []models.SkippedItem
	RegularCount int
	CustomCount  int
}

// Engine generates variant sets
type Engine struct {
	logger      *zap.Logger
	concurrency int
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the logger used to report skipped items
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithConcurrency bounds the number of custom variants derived in parallel
func WithConcurrency(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// NewEngine creates a new Engine
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		logger:      zap.NewNop(),
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generate expands the configuration into regular variants, the "Create my own set"
// entry and custom variants, in that order. A configuration missing a required
// top-level field yields an empty result and an error wrapping ErrConfiguration;
// per-item failures are skipped and reported in Result.Skipped.
func (e *Engine) Generate(in Input) (Result, error) {
	r, err := newRun(&in, e.logger)
	if err != nil {
		e.logger.Warn("GenerateVariants: configuration rejected",
			zap.String("collection", in.Collection.ID), zap.Error(err))
		return emptyResult(), err
	}

	regular := r.buildRegular()
	assignPositions(regular, &in.Catalog)

	custom := r.buildCustom(regular, e.concurrency)

	variants, err := compose(r, regular, custom)
	if err != nil {
		return emptyResult(), err
	}

	e.logger.Debug("GenerateVariants: completed",
		zap.String("collection", in.Collection.ID),
		zap.Int("regular", len(regular)),
		zap.Int("custom", len(custom)),
		zap.Int("skipped", len(r.skipped)))

	return Result{
		Variants:     variants,
		Skipped:      r.skipped,
		RegularCount: len(regular),
		CustomCount:  len(custom),
	}, nil
}

func emptyResult() Result {
	return Result{Variants: []models.Variant{}, Skipped: []models.SkippedItem{}}
}

// run holds the resolved top-level selections of one generation
type run struct {
	in        *Input
	logger    *zap.Logger
	primary   models.LeatherColor
	secondary *models.LeatherColor
	stitching *models.ThreadColor
	selected  int // Shapes with a non-empty weight entry
	woodCount int // Selected WOOD shapes present in the catalog
	skipped   []models.SkippedItem
}

func newRun(in *Input, logger *zap.Logger) (*run, error) {
	cfg := &in.Config
	col := in.Collection

	if err := ValidateCollection(col); err != nil {
		return nil, err
	}

	if cfg.PrimaryLeatherID == "" {
		return nil, configurationErr("primary leather is required")
	}
	primary, ok := in.Catalog.Leather(cfg.PrimaryLeatherID)
	if !ok {
		return nil, configurationErr("primary leather %q not in catalog", cfg.PrimaryLeatherID)
	}

	r := &run{in: in, logger: logger, primary: primary, skipped: []models.SkippedItem{}}

	if cfg.SecondaryLeatherID != "" {
		secondary, ok := in.Catalog.Leather(cfg.SecondaryLeatherID)
		if !ok {
			return nil, configurationErr("secondary leather %q not in catalog", cfg.SecondaryLeatherID)
		}
		r.secondary = &secondary
	} else if col.NeedsSecondaryLeather {
		return nil, configurationErr("collection %q requires a secondary leather", col.ID)
	}

	if cfg.StitchingColorID != "" {
		stitching, ok := in.Catalog.Thread(cfg.StitchingColorID)
		if !ok {
			return nil, configurationErr("stitching color %q not in catalog", cfg.StitchingColorID)
		}
		r.stitching = &stitching
	} else if col.NeedsStitchingColor {
		return nil, configurationErr("collection %q requires a stitching color", col.ID)
	}

	r.selected = cfg.SelectedCount()
	for id := range cfg.Weights {
		if !cfg.IsSelected(id) {
			continue
		}
		if shape, ok := in.Catalog.Shape(id); ok && shape.Classification == models.ClassificationWood {
			r.woodCount++
		}
	}
	return r, nil
}

// skip records a per-item failure and logs it
func (r *run) skip(stage, shapeID string, err error) {
	itemErr := &ItemError{Stage: stage, ShapeID: shapeID, Err: err}
	r.logger.Warn("GenerateVariants: skipping variant",
		zap.String("stage", stage),
		zap.String("shape", shapeID),
		zap.Bool("lookup", errors.Is(err, ErrLookup)),
		zap.Error(err))
	r.skipped = append(r.skipped, models.SkippedItem{
		ShapeID: shapeID,
		Stage:   stage,
		Reason:  itemErr.Error(),
	})
}

// skuParts returns the SKU inputs shared by every variant of the run
func (r *run) skuParts() SKUParts {
	p := SKUParts{
		CollectionType: r.in.Collection.Type,
		Leather1:       r.primary.Abbreviation,
		LimitedEdition: r.in.Config.Offering.IsLimitedEdition(),
	}
	if r.secondary != nil {
		p.Leather2 = r.secondary.Abbreviation
	}
	if r.stitching != nil {
		p.Stitching = r.stitching.Abbreviation
	}
	return p
}

// inventoryQuantity returns the quantity attached to limited-edition variants
func (r *run) inventoryQuantity() int {
	if r.in.Config.Offering.IsLimitedEdition() {
		return r.in.Config.Offering.Quantity
	}
	return 0
}
