package services

import (
	"context"

	"github.com/shopeasy/storefront/internal/client/api"
	"github.com/shopeasy/storefront/internal/client/models"
	"github.com/shopeasy/storefront/internal/logging"
)

// CatalogService fetches the product catalog.
type CatalogService interface {
	// List returns the catalog. A fetch failure is logged and degrades to
	// an empty slice; the product grid simply shows nothing.
	List(ctx context.Context) []models.Product
}

type catalogService struct {
	client api.Client
	logger logging.Logger
}

func NewCatalogService(client api.Client, logger logging.Logger) CatalogService {
	return &catalogService{client: client, logger: logger}
}

func (s *catalogService) List(ctx context.Context) []models.Product {
	products, err := s.client.ListProducts(ctx)
	if err != nil {
		s.logger.Error(ctx, "error fetching products", "error", err)
		return []models.Product{}
	}
	return products
}
