package variants

import (
	"github.com/shopspring/decimal"

	"headcover-configurator/models"
)

func testCatalog() models.Catalog {
	return models.Catalog{
		Shapes: []models.Shape{
			{ID: "putter", Label: "Putter", Abbreviation: "Putter", Classification: models.ClassificationPutter, DisplayOrder: 6},
			{ID: "driver", Label: "Driver", Abbreviation: "DR", Classification: models.ClassificationWood, DisplayOrder: 1},
			{ID: "fw3", Label: "3 Wood", Abbreviation: "3W", Classification: models.ClassificationWood, DisplayOrder: 2},
			{ID: "fw5", Label: "5 Wood", Abbreviation: "5W", Classification: models.ClassificationWood, DisplayOrder: 3},
			{ID: "hybrid", Label: "Hybrid", Abbreviation: "HY", Classification: models.ClassificationOther, DisplayOrder: 4},
			{ID: "utility", Label: "Utility", Abbreviation: "UT", Classification: models.ClassificationOther, DisplayOrder: 5},
		},
		Styles: []models.Style{
			{ID: "a", Label: "A", Abbreviation: "A", NamePattern: models.NamePatternStandard, LeatherPhrase: "leather as"},
			{ID: "b", Label: "B", Abbreviation: "B", NamePattern: models.NamePatternStyleFirst},
			{ID: "fat", Label: "Fat Stripe", Abbreviation: "Fat", NamePattern: models.NamePatternStandard, UseOppositeLeather: true},
			{ID: "split", Label: "50/50", Abbreviation: "5050", NamePattern: models.NamePatternStandard},
			{ID: "tmpl", Label: "Racing", Abbreviation: "RC", NamePattern: models.NamePatternCustom, CustomNamePattern: "{shape.label} in {leather.label} ({style.label})"},
		},
		Leathers: []models.LeatherColor{
			{ID: "black", Label: "Black", Abbreviation: "BLK"},
			{ID: "white", Label: "White", Abbreviation: "WHT"},
			{ID: "red", Label: "Red", Abbreviation: "RED"},
		},
		Threads: []models.ThreadColor{
			{ID: "gold", Label: "Gold", Abbreviation: "GLD"},
			{ID: "navy", Label: "Navy", Abbreviation: "NVY"},
		},
	}
}

func testPriceTable(collectionID string) models.PriceTable {
	return models.PriceTable{
		CollectionID: collectionID,
		Prices: map[string]decimal.Decimal{
			models.FairwayShapeID: decimal.RequireFromString("45"),
			"hybrid":              decimal.RequireFromString("42.5"),
			"utility":             decimal.RequireFromString("42.5"),
			"putter":              decimal.RequireFromString("40"),
		},
	}
}

func classicCollection() models.Collection {
	return models.Collection{
		ID: "classic", Type: models.CollectionClassic, Label: "Classic",
		NeedsStyle: true, NeedsSecondaryLeather: true,
	}
}

func quiltedCollection() models.Collection {
	return models.Collection{
		ID: "quilted", Type: models.CollectionQuilted, Label: "Quilted",
		NeedsStitchingColor: true,
	}
}

func qclassicCollection() models.Collection {
	return models.Collection{
		ID: "qclassic", Type: models.CollectionQClassic, Label: "Quilted Classic",
		NeedsStyle: true, NeedsSecondaryLeather: true, NeedsColorDesignation: true,
	}
}

func testInput(col models.Collection, cfg models.Configuration) Input {
	cfg.CollectionID = col.ID
	return Input{
		Collection: col,
		PriceTable: testPriceTable(col.ID),
		Catalog:    testCatalog(),
		Config:     cfg,
	}
}

func names(vs []models.Variant) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Name)
	}
	return out
}

func customs(vs []models.Variant) []models.Variant {
	var out []models.Variant
	for _, v := range vs {
		if v.IsCustom {
			out = append(out, v)
		}
	}
	return out
}

func regulars(vs []models.Variant) []models.Variant {
	var out []models.Variant
	for _, v := range vs {
		if !v.IsCustom && !v.IsSetBuilder {
			out = append(out, v)
		}
	}
	return out
}
