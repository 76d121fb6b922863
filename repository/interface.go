package repository

import (
	"context"
	"errors"

	"headcover-configurator/models"
)

// ErrNotFound is returned when a collection or its price table does not exist
var ErrNotFound = errors.New("not found")

// CatalogRepositoryInterface defines the contract for loading the reference data of a generation run
type CatalogRepositoryInterface interface {
	GetCollection(ctx context.Context, id string) (*models.Collection, error)
	GetPriceTable(ctx context.Context, collectionID string) (*models.PriceTable, error)
	GetCatalog(ctx context.Context) (*models.Catalog, error)
}
