package variants

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"headcover-configurator/models"
)

// regularItem is a regular variant plus the references its custom counterpart needs
type regularItem struct {
	variant models.Variant
	shape   models.Shape
	style   *models.Style
}

// buildRegular produces one non-customized variant per selected shape.
// Shapes that cannot be resolved are skipped; the rest of the batch continues.
func (r *run) buildRegular() []regularItem {
	ids := make([]string, 0, len(r.in.Config.Weights))
	for id := range r.in.Config.Weights {
		if r.in.Config.IsSelected(id) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	items := make([]regularItem, 0, len(ids))
	for _, id := range ids {
		item, err := r.buildRegularItem(id)
		if err != nil {
			r.skip(StageRegular, id, err)
			continue
		}
		items = append(items, item)
	}
	return items
}

func (r *run) buildRegularItem(shapeID string) (regularItem, error) {
	shape, ok := r.in.Catalog.Shape(shapeID)
	if !ok {
		return regularItem{}, lookupErr("shape %q not in catalog", shapeID)
	}

	weight, err := parseWeight(r.in.Config.Weights[shapeID])
	if err != nil {
		return regularItem{}, err
	}

	style, err := r.styleFor(shape)
	if err != nil {
		return regularItem{}, err
	}

	price, err := PriceFor(shape.ID, r.in.PriceTable, &r.in.Catalog)
	if err != nil {
		return regularItem{}, err
	}

	parts := r.skuParts()
	parts.FinalID = r.regularFinalID(shape)
	sku, err := AssembleSKU(parts)
	if err != nil {
		return regularItem{}, err
	}

	name := shape.Label
	if style != nil {
		name = shape.Label + " - " + style.Label
	}

	v := models.Variant{
		ShapeID:           shape.ID,
		ShapeLabel:        shape.Label,
		SKU:               sku.Value,
		BaseSKU:           sku.Base,
		Name:              name,
		Price:             FormatPrice(price),
		Weight:            weight,
		Threads:           r.threadsFor(shape.ID),
		InventoryQuantity: r.inventoryQuantity(),
	}
	if style != nil {
		v.StyleID = style.ID
	}

	if r.in.Collection.NeedsColorDesignation && shape.Classification != models.ClassificationPutter {
		designation, err := r.colorDesignation(shape, style)
		if err != nil {
			return regularItem{}, err
		}
		v.ColorDesignation = designation
	}

	return regularItem{variant: v, shape: shape, style: style}, nil
}

// styleApplies reports whether variants of the shape carry a style
func (r *run) styleApplies(shape models.Shape) bool {
	if shape.Classification == models.ClassificationPutter {
		return false
	}
	return r.in.Collection.NeedsStyle
}

// styleFor resolves the style selected for a shape, per shape in independent mode
// and globally otherwise. A missing style on a style-requiring collection skips the variant.
func (r *run) styleFor(shape models.Shape) (*models.Style, error) {
	if !r.styleApplies(shape) {
		return nil, nil
	}

	styleID := r.in.Config.StyleID
	if r.in.Config.IndependentStyles {
		styleID = r.in.Config.ShapeStyles[shape.ID]
	}
	if styleID == "" {
		return nil, lookupErr("no style selected for shape %q", shape.ID)
	}

	style, ok := r.in.Catalog.Style(styleID)
	if !ok {
		return nil, lookupErr("style %q not in catalog", styleID)
	}
	return &style, nil
}

// shapeLeather resolves the per-shape quilted leather and applies the opposite-leather rule
func (r *run) shapeLeather(shape models.Shape, style *models.Style) (models.LeatherColor, error) {
	leatherID := r.in.Config.ShapeLeathers[shape.ID]
	if leatherID == "" {
		return models.LeatherColor{}, lookupErr("no leather designated for shape %q", shape.ID)
	}
	chosen, ok := r.in.Catalog.Leather(leatherID)
	if !ok {
		return models.LeatherColor{}, lookupErr("leather %q not in catalog", leatherID)
	}
	return ResolveNamedLeather(style, chosen, r.primary, r.secondary), nil
}

// colorDesignation renders the option value naming the leather of a shape
func (r *run) colorDesignation(shape models.Shape, style *models.Style) (string, error) {
	leather, err := r.shapeLeather(shape, style)
	if err != nil {
		return "", err
	}
	if style == nil {
		return leather.Label, nil
	}
	return RenderName(*style, leather, shape.Label)
}

// regularFinalID returns the last SKU token of a regular variant.
// A WOOD shape selected on its own is sold under the Fairway token.
func (r *run) regularFinalID(shape models.Shape) string {
	if shape.Classification == models.ClassificationWood && r.woodCount == 1 {
		return models.FairwayAbbreviation
	}
	return shape.Abbreviation
}

// threadsFor resolves the per-shape thread selection, falling back to the global one
func (r *run) threadsFor(shapeID string) []models.ThreadRef {
	ids := r.in.Config.Threads.Global
	if perShape, ok := r.in.Config.Threads.PerShape[shapeID]; ok && len(perShape) > 0 {
		ids = perShape
	}
	if len(ids) == 0 {
		return nil
	}

	refs := make([]models.ThreadRef, 0, len(ids))
	for _, id := range ids {
		thread, ok := r.in.Catalog.Thread(id)
		if !ok {
			r.logger.Warn("GenerateVariants: thread not in catalog",
				zap.String("shape", shapeID), zap.String("thread", id))
			continue
		}
		refs = append(refs, models.ThreadRef{
			ID:           thread.ID,
			Label:        thread.Label,
			Abbreviation: thread.Abbreviation,
		})
	}
	return refs
}

func parseWeight(raw string) (string, error) {
	w, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return "", assemblyErr("invalid weight %q", raw)
	}
	if !w.IsPositive() {
		return "", assemblyErr("weight must be positive, got %q", raw)
	}
	return w.String(), nil
}
