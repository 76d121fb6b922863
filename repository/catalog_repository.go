package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"headcover-configurator/db"
	"headcover-configurator/models"
	"headcover-configurator/variants"
)

// CatalogRepository reads collections, price tables and catalogs from PostgreSQL
type CatalogRepository struct {
	logger *zap.Logger
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(logger *zap.Logger) *CatalogRepository {
	return &CatalogRepository{logger: logger}
}

// Ensure CatalogRepository implements CatalogRepositoryInterface
var _ CatalogRepositoryInterface = (*CatalogRepository)(nil)

// GetCollection retrieves one collection by ID
func (r *CatalogRepository) GetCollection(ctx context.Context, id string) (*models.Collection, error) {
	query := `
		SELECT id, type, label,
		       needs_style, needs_secondary_leather, needs_stitching_color, needs_color_designation,
		       COALESCE(sku_template, ''), COALESCE(title_template, '')
		FROM collections
		WHERE id = $1 AND is_active = true
	`

	var c models.Collection
	var collectionType string
	err := db.DB.QueryRowContext(ctx, query, id).Scan(
		&c.ID,
		&collectionType,
		&c.Label,
		&c.NeedsStyle,
		&c.NeedsSecondaryLeather,
		&c.NeedsStitchingColor,
		&c.NeedsColorDesignation,
		&c.SKUTemplate,
		&c.TitleTemplate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("collection %q: %w", id, ErrNotFound)
		}
		r.logger.Error("GetCollection: query failed", zap.String("collection", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}
	c.Type = models.CollectionType(collectionType)
	if err := variants.ValidateCollection(c); err != nil {
		r.logger.Error("GetCollection: invalid collection flags", zap.String("collection", id), zap.Error(err))
		return nil, err
	}
	return &c, nil
}

// GetPriceTable retrieves the per-shape base prices of a collection
func (r *CatalogRepository) GetPriceTable(ctx context.Context, collectionID string) (*models.PriceTable, error) {
	query := `
		SELECT shape_id, price
		FROM collection_prices
		WHERE collection_id = $1
		ORDER BY shape_id ASC
	`

	rows, err := db.DB.QueryContext(ctx, query, collectionID)
	if err != nil {
		r.logger.Error("GetPriceTable: query failed", zap.String("collection", collectionID), zap.Error(err))
		return nil, fmt.Errorf("failed to query prices: %w", err)
	}
	defer rows.Close()

	table := &models.PriceTable{CollectionID: collectionID, Prices: map[string]decimal.Decimal{}}
	for rows.Next() {
		var shapeID string
		var price decimal.Decimal
		if err := rows.Scan(&shapeID, &price); err != nil {
			return nil, fmt.Errorf("failed to scan price: %w", err)
		}
		table.Prices[shapeID] = price
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate prices: %w", err)
	}

	if len(table.Prices) == 0 {
		return nil, fmt.Errorf("price table for collection %q: %w", collectionID, ErrNotFound)
	}
	return table, nil
}

// GetCatalog retrieves every active shape, style, leather and thread color
func (r *CatalogRepository) GetCatalog(ctx context.Context) (*models.Catalog, error) {
	catalog := &models.Catalog{}

	var err error
	if catalog.Shapes, err = r.getShapes(ctx); err != nil {
		return nil, err
	}
	if catalog.Styles, err = r.getStyles(ctx); err != nil {
		return nil, err
	}
	if catalog.Leathers, err = r.getLeathers(ctx); err != nil {
		return nil, err
	}
	if catalog.Threads, err = r.getThreads(ctx); err != nil {
		return nil, err
	}

	r.logger.Debug("GetCatalog: loaded",
		zap.Int("shapes", len(catalog.Shapes)),
		zap.Int("styles", len(catalog.Styles)),
		zap.Int("leathers", len(catalog.Leathers)),
		zap.Int("threads", len(catalog.Threads)))
	return catalog, nil
}

func (r *CatalogRepository) getShapes(ctx context.Context) ([]models.Shape, error) {
	query := `
		SELECT id, label, abbreviation, classification, display_order
		FROM shapes
		WHERE is_active = true
		ORDER BY display_order ASC, id ASC
	`

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query shapes: %w", err)
	}
	defer rows.Close()

	var shapes []models.Shape
	for rows.Next() {
		var s models.Shape
		var classification string
		if err := rows.Scan(&s.ID, &s.Label, &s.Abbreviation, &classification, &s.DisplayOrder); err != nil {
			return nil, fmt.Errorf("failed to scan shape: %w", err)
		}
		s.Classification = models.Classification(strings.ToUpper(classification))
		shapes = append(shapes, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shapes: %w", err)
	}
	return shapes, nil
}

func (r *CatalogRepository) getStyles(ctx context.Context) ([]models.Style, error) {
	query := `
		SELECT id, label, abbreviation, name_pattern, use_opposite_leather,
		       COALESCE(leather_phrase, ''), COALESCE(custom_name_pattern, '')
		FROM styles
		WHERE is_active = true
		ORDER BY id ASC
	`

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query styles: %w", err)
	}
	defer rows.Close()

	var styles []models.Style
	for rows.Next() {
		var s models.Style
		var pattern string
		if err := rows.Scan(&s.ID, &s.Label, &s.Abbreviation, &pattern, &s.UseOppositeLeather,
			&s.LeatherPhrase, &s.CustomNamePattern); err != nil {
			return nil, fmt.Errorf("failed to scan style: %w", err)
		}
		s.NamePattern = models.NamePattern(strings.ToUpper(pattern))

		// A style that cannot be named is left out so the variants using it are skipped
		if err := variants.ValidateStyle(s); err != nil {
			r.logger.Warn("GetCatalog: ignoring style with invalid name pattern",
				zap.String("style", s.ID), zap.Error(err))
			continue
		}
		styles = append(styles, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate styles: %w", err)
	}
	return styles, nil
}

func (r *CatalogRepository) getLeathers(ctx context.Context) ([]models.LeatherColor, error) {
	rows, err := db.DB.QueryContext(ctx, colorQuery("leather_colors"))
	if err != nil {
		return nil, fmt.Errorf("failed to query leather colors: %w", err)
	}
	defer rows.Close()

	var leathers []models.LeatherColor
	for rows.Next() {
		var l models.LeatherColor
		var linked string
		if err := rows.Scan(&l.ID, &l.Label, &l.Abbreviation, &linked); err != nil {
			return nil, fmt.Errorf("failed to scan leather color: %w", err)
		}
		l.LinkedNumbers = splitLinkedNumbers(linked)
		leathers = append(leathers, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leather colors: %w", err)
	}
	return leathers, nil
}

func (r *CatalogRepository) getThreads(ctx context.Context) ([]models.ThreadColor, error) {
	rows, err := db.DB.QueryContext(ctx, colorQuery("thread_colors"))
	if err != nil {
		return nil, fmt.Errorf("failed to query thread colors: %w", err)
	}
	defer rows.Close()

	var threads []models.ThreadColor
	for rows.Next() {
		var t models.ThreadColor
		var linked string
		if err := rows.Scan(&t.ID, &t.Label, &t.Abbreviation, &linked); err != nil {
			return nil, fmt.Errorf("failed to scan thread color: %w", err)
		}
		t.LinkedNumbers = splitLinkedNumbers(linked)
		threads = append(threads, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate thread colors: %w", err)
	}
	return threads, nil
}

// colorQuery selects a color table; table is one of the fixed names above, never user input
func colorQuery(table string) string {
	return fmt.Sprintf(`
		SELECT id, label, abbreviation, COALESCE(array_to_string(linked_numbers, ','), '')
		FROM %s
		WHERE is_active = true
		ORDER BY label ASC
	`, table)
}

// splitLinkedNumbers parses a comma-separated list, dropping blanks
func splitLinkedNumbers(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
