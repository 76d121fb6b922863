package repository

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"headcover-configurator/models"
	"headcover-configurator/variants"
)

// snapshotFile is the on-disk layout of a catalog snapshot
type snapshotFile struct {
	Collections []models.Collection          `yaml:"collections"`
	Prices      map[string]map[string]string `yaml:"prices"` // [collectionID][shapeID] = "45.00"
	Catalog     models.Catalog               `yaml:"catalog"`
}

// SnapshotRepository serves reference data from a YAML snapshot loaded once at startup
type SnapshotRepository struct {
	collections map[string]models.Collection
	prices      map[string]*models.PriceTable
	catalog     models.Catalog
}

// Ensure SnapshotRepository implements CatalogRepositoryInterface
var _ CatalogRepositoryInterface = (*SnapshotRepository)(nil)

// LoadSnapshot reads and validates a catalog snapshot file
func LoadSnapshot(path string, logger *zap.Logger) (*SnapshotRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog snapshot: %w", err)
	}
	return ParseSnapshot(data, logger)
}

// ParseSnapshot decodes a YAML catalog snapshot.
// Styles whose name pattern cannot be rendered are dropped with a warning.
func ParseSnapshot(data []byte, logger *zap.Logger) (*SnapshotRepository, error) {
	var raw snapshotFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode catalog snapshot: %w", err)
	}

	repo := &SnapshotRepository{
		collections: make(map[string]models.Collection, len(raw.Collections)),
		prices:      make(map[string]*models.PriceTable, len(raw.Prices)),
		catalog: models.Catalog{
			Shapes:   raw.Catalog.Shapes,
			Leathers: raw.Catalog.Leathers,
			Threads:  raw.Catalog.Threads,
		},
	}

	for _, c := range raw.Collections {
		if c.ID == "" {
			return nil, fmt.Errorf("catalog snapshot: collection without id")
		}
		if _, dup := repo.collections[c.ID]; dup {
			return nil, fmt.Errorf("catalog snapshot: duplicate collection %q", c.ID)
		}
		if err := variants.ValidateCollection(c); err != nil {
			return nil, fmt.Errorf("catalog snapshot: %w", err)
		}
		repo.collections[c.ID] = c
	}

	for collectionID, entries := range raw.Prices {
		table := &models.PriceTable{CollectionID: collectionID, Prices: make(map[string]decimal.Decimal, len(entries))}
		for shapeID, value := range entries {
			price, err := decimal.NewFromString(value)
			if err != nil {
				return nil, fmt.Errorf("catalog snapshot: price %s/%s: %w", collectionID, shapeID, err)
			}
			table.Prices[shapeID] = price
		}
		repo.prices[collectionID] = table
	}

	for i := range raw.Catalog.Shapes {
		s := &repo.catalog.Shapes[i]
		if s.Classification == "" {
			s.Classification = models.ClassificationOther
		}
	}

	for _, s := range raw.Catalog.Styles {
		if err := variants.ValidateStyle(s); err != nil {
			logger.Warn("ParseSnapshot: ignoring style with invalid name pattern",
				zap.String("style", s.ID), zap.Error(err))
			continue
		}
		repo.catalog.Styles = append(repo.catalog.Styles, s)
	}

	logger.Info("catalog snapshot loaded",
		zap.Int("collections", len(repo.collections)),
		zap.Int("shapes", len(repo.catalog.Shapes)),
		zap.Int("styles", len(repo.catalog.Styles)))
	return repo, nil
}

// CollectionIDs returns the IDs of every collection in the snapshot, sorted
func (r *SnapshotRepository) CollectionIDs() []string {
	ids := make([]string, 0, len(r.collections))
	for id := range r.collections {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// GetCollection returns the collection with the given ID
func (r *SnapshotRepository) GetCollection(_ context.Context, id string) (*models.Collection, error) {
	c, ok := r.collections[id]
	if !ok {
		return nil, fmt.Errorf("collection %q: %w", id, ErrNotFound)
	}
	return &c, nil
}

// GetPriceTable returns a copy of the collection's price table
func (r *SnapshotRepository) GetPriceTable(_ context.Context, collectionID string) (*models.PriceTable, error) {
	table, ok := r.prices[collectionID]
	if !ok {
		return nil, fmt.Errorf("price table for collection %q: %w", collectionID, ErrNotFound)
	}
	out := &models.PriceTable{CollectionID: table.CollectionID, Prices: make(map[string]decimal.Decimal, len(table.Prices))}
	for k, v := range table.Prices {
		out.Prices[k] = v
	}
	return out, nil
}

// GetCatalog returns a copy of the snapshot catalog
func (r *SnapshotRepository) GetCatalog(_ context.Context) (*models.Catalog, error) {
	c := models.Catalog{
		Shapes:   append([]models.Shape(nil), r.catalog.Shapes...),
		Styles:   append([]models.Style(nil), r.catalog.Styles...),
		Leathers: append([]models.LeatherColor(nil), r.catalog.Leathers...),
		Threads:  append([]models.ThreadColor(nil), r.catalog.Threads...),
	}
	return &c, nil
}
