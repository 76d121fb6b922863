package models

import "github.com/shopspring/decimal"

// PriceTable holds the base price per shape for one collection.
// WOOD shapes are priced under the FairwayShapeID entry.
type PriceTable struct {
	CollectionID string                     `json:"collectionId" yaml:"collectionId"`
	Prices       map[string]decimal.Decimal `json:"prices" yaml:"prices"` // [shapeID] = base price
}
