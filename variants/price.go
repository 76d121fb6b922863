package variants

import (
	"github.com/shopspring/decimal"

	"headcover-configurator/models"
)

// CustomizationSurcharge is added to the regular price of every custom variant
var CustomizationSurcharge = decimal.RequireFromString("15.00")

// priceBucket maps a shape to its price table key.
// Every WOOD shape is priced under the synthetic Fairway entry.
func priceBucket(shape models.Shape) string {
	if shape.Classification == models.ClassificationWood {
		return models.FairwayShapeID
	}
	return shape.ID
}

// PriceFor resolves the base price of a shape under the collection's price table.
// A missing shape or price entry returns ErrLookup so the caller can skip the variant.
func PriceFor(shapeID string, table models.PriceTable, catalog *models.Catalog) (decimal.Decimal, error) {
	if shapeID == models.FairwayShapeID {
		return lookupPrice(models.FairwayShapeID, table)
	}

	shape, ok := catalog.Shape(shapeID)
	if !ok {
		return decimal.Zero, lookupErr("shape %q not in catalog", shapeID)
	}
	return lookupPrice(priceBucket(shape), table)
}

func lookupPrice(bucket string, table models.PriceTable) (decimal.Decimal, error) {
	price, exists := table.Prices[bucket]
	if !exists {
		return decimal.Zero, lookupErr("no price for %q in collection %q", bucket, table.CollectionID)
	}
	if price.IsNegative() {
		return decimal.Zero, lookupErr("negative price for %q in collection %q", bucket, table.CollectionID)
	}
	return price, nil
}

// FormatPrice renders a price with exactly two decimal places
func FormatPrice(price decimal.Decimal) string {
	return price.StringFixed(2)
}

// CustomPrice returns the formatted price of the custom counterpart of a regular variant
func CustomPrice(regularPrice string) (string, error) {
	price, err := decimal.NewFromString(regularPrice)
	if err != nil {
		return "", assemblyErr("invalid regular price %q", regularPrice)
	}
	return FormatPrice(price.Add(CustomizationSurcharge)), nil
}
