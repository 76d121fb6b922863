package variants

import (
	"golang.org/x/sync/errgroup"

	"headcover-configurator/models"
)

// customCandidate is a derived custom variant before wood collapsing.
// collapseKey is set only for WOOD-classified shapes.
type customCandidate struct {
	variant     models.Variant
	collapseKey string
}

type candidateResult struct {
	shapeID   string
	candidate customCandidate
	err       error
}

// buildCustom derives one custom counterpart per regular variant. Derivation runs
// in parallel; collapsing is a single ordered pass over the results so duplicates
// are always resolved by catalog order.
func (r *run) buildCustom(regular []regularItem, concurrency int) []models.Variant {
	results := make([]candidateResult, len(regular))

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i := range regular {
		i := i
		item := regular[i]
		g.Go(func() error {
			results[i] = r.deriveCustom(item)
			return nil
		})
	}
	_ = g.Wait()

	custom, _ := reduceCandidates(r, results, collapseSet{})
	return custom
}

func (r *run) deriveCustom(item regularItem) candidateResult {
	res := candidateResult{shapeID: item.shape.ID}

	strategy, ok := strategyFor(item.shape, r.in.Collection)
	if !ok {
		res.err = assemblyErr("no custom strategy for %s shape in %s collection",
			classificationOf(item.shape), requirementOf(r.in.Collection))
		return res
	}

	res.candidate, res.err = strategy(r, item)
	return res
}

// baseCustom copies the fields every custom variant inherits from its regular variant
func baseCustom(r *run, item regularItem) (models.Variant, error) {
	price, err := CustomPrice(item.variant.Price)
	if err != nil {
		return models.Variant{}, err
	}
	return models.Variant{
		ShapeID:           item.shape.ID,
		ShapeLabel:        item.shape.Label,
		Price:             price,
		Weight:            item.variant.Weight,
		IsCustom:          true,
		Threads:           item.variant.Threads,
		InventoryQuantity: r.inventoryQuantity(),
	}, nil
}

// customFinalID returns the final SKU identifier of a non-collapsed custom variant.
// Multi-shape limited editions carry the piece count ahead of the shape token.
func (r *run) customFinalID(shape models.Shape) string {
	if r.in.Config.Offering.IsLimitedEdition() && r.selected > 1 {
		return PieceCountToken(r.selected) + skuSeparator + shape.Abbreviation
	}
	return shape.Abbreviation
}

// customSKU assembles the SKU of a non-collapsed custom variant. Its base is
// always the regular variant's, so the pair stays grouped.
func (r *run) customSKU(item regularItem, leather2Override string) (SKU, error) {
	parts := r.skuParts()
	parts.Custom = true
	parts.FinalID = r.customFinalID(item.shape)
	if leather2Override != "" {
		parts.Leather2 = leather2Override
	}
	sku, err := AssembleSKU(parts)
	if err != nil {
		return SKU{}, err
	}
	sku.Base = item.variant.BaseSKU
	return sku, nil
}

func (r *run) collapsedSKU(leather2Override string) (SKU, error) {
	parts := r.skuParts()
	parts.Custom = true
	parts.CollapsedWood = true
	if leather2Override != "" {
		parts.Leather2 = leather2Override
	}
	return AssembleSKU(parts)
}

// asFairway rewrites a custom variant so it stands for every WOOD shape
func asFairway(v models.Variant, r *run) (models.Variant, error) {
	price, err := PriceFor(models.FairwayShapeID, r.in.PriceTable, &r.in.Catalog)
	if err != nil {
		return models.Variant{}, err
	}
	v.ShapeID = models.FairwayShapeID
	v.ShapeLabel = models.FairwayLabel
	v.Price = FormatPrice(price.Add(CustomizationSurcharge))
	return v, nil
}

func woodNonStyledCustom(r *run, item regularItem) (customCandidate, error) {
	v, err := baseCustom(r, item)
	if err != nil {
		return customCandidate{}, err
	}
	if v, err = asFairway(v, r); err != nil {
		return customCandidate{}, err
	}
	sku, err := r.collapsedSKU("")
	if err != nil {
		return customCandidate{}, err
	}
	v.SKU, v.BaseSKU = sku.Value, sku.Base
	v.Name = customName(models.FairwayLabel)
	return customCandidate{variant: v, collapseKey: models.FairwayAbbreviation}, nil
}

func woodStyledCustom(r *run, item regularItem) (customCandidate, error) {
	if item.style == nil {
		return customCandidate{}, lookupErr("no style for wood shape %q", item.shape.ID)
	}
	v, err := baseCustom(r, item)
	if err != nil {
		return customCandidate{}, err
	}
	if v, err = asFairway(v, r); err != nil {
		return customCandidate{}, err
	}
	sku, err := r.collapsedSKU("")
	if err != nil {
		return customCandidate{}, err
	}
	v.SKU, v.BaseSKU = sku.Value, sku.Base
	v.StyleID = item.style.ID
	v.Name = customName(models.FairwayLabel, "-", item.style.Label)
	return customCandidate{
		variant:     v,
		collapseKey: item.style.ID + "-" + models.FairwayAbbreviation,
	}, nil
}

func woodLeatherCustom(r *run, item regularItem) (customCandidate, error) {
	if item.style == nil {
		return customCandidate{}, lookupErr("no style for wood shape %q", item.shape.ID)
	}
	leather, err := r.shapeLeather(item.shape, item.style)
	if err != nil {
		return customCandidate{}, err
	}
	v, err := baseCustom(r, item)
	if err != nil {
		return customCandidate{}, err
	}
	if v, err = asFairway(v, r); err != nil {
		return customCandidate{}, err
	}
	sku, err := r.collapsedSKU(leather.Abbreviation)
	if err != nil {
		return customCandidate{}, err
	}
	v.SKU, v.BaseSKU = sku.Value, sku.Base
	v.StyleID = item.style.ID
	v.ColorDesignation = leather.Label
	v.Name = customName(leather.Label, designationLeatherPhrase(*item.style), item.style.Label, models.FairwayLabel)
	return customCandidate{
		variant:     v,
		collapseKey: item.style.ID + "-" + leather.ID + "-" + models.FairwayAbbreviation,
	}, nil
}

func putterCustom(r *run, item regularItem) (customCandidate, error) {
	v, err := baseCustom(r, item)
	if err != nil {
		return customCandidate{}, err
	}
	sku, err := r.customSKU(item, "")
	if err != nil {
		return customCandidate{}, err
	}
	v.SKU, v.BaseSKU = sku.Value, sku.Base
	v.Name = customName(item.shape.Label)
	return customCandidate{variant: v}, nil
}

func leatherDesignationCustom(r *run, item regularItem) (customCandidate, error) {
	if item.style == nil {
		return customCandidate{}, lookupErr("no style for shape %q", item.shape.ID)
	}
	leather, err := r.shapeLeather(item.shape, item.style)
	if err != nil {
		return customCandidate{}, err
	}
	v, err := baseCustom(r, item)
	if err != nil {
		return customCandidate{}, err
	}
	sku, err := r.customSKU(item, leather.Abbreviation)
	if err != nil {
		return customCandidate{}, err
	}
	v.SKU, v.BaseSKU = sku.Value, sku.Base
	v.StyleID = item.style.ID
	v.ColorDesignation = leather.Label
	v.Name = customName(leather.Label, designationLeatherPhrase(*item.style), item.style.Label, item.shape.Label)
	return customCandidate{variant: v}, nil
}

func nonStyledCustom(r *run, item regularItem) (customCandidate, error) {
	v, err := baseCustom(r, item)
	if err != nil {
		return customCandidate{}, err
	}
	sku, err := r.customSKU(item, "")
	if err != nil {
		return customCandidate{}, err
	}
	v.SKU, v.BaseSKU = sku.Value, sku.Base
	v.Name = customName(item.variant.Name)
	return customCandidate{variant: v}, nil
}

func styledCustom(r *run, item regularItem) (customCandidate, error) {
	if item.style == nil {
		return customCandidate{}, lookupErr("no style for shape %q", item.shape.ID)
	}
	v, err := baseCustom(r, item)
	if err != nil {
		return customCandidate{}, err
	}
	sku, err := r.customSKU(item, "")
	if err != nil {
		return customCandidate{}, err
	}
	v.SKU, v.BaseSKU = sku.Value, sku.Base
	v.StyleID = item.style.ID
	v.Name = customName(item.shape.Label, "-", item.style.Label)
	return customCandidate{variant: v}, nil
}
