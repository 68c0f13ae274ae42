package repository

import (
	"ceam-backend/models"
	"context"
)

// CatalogRepositoryInterface defines the contract for the static content catalog
type CatalogRepositoryInterface interface {
	Events() []models.Event
	Articles() []models.NewsArticle
	Reload() (*Catalog, error)
}

// DeliveryRepositoryInterface defines the contract for the mail delivery ledger
type DeliveryRepositoryInterface interface {
	Enabled() bool
	Record(ctx context.Context, record *models.DeliveryRecord) error
	List(ctx context.Context, filter models.DeliveryFilter) ([]*models.DeliveryRecord, error)
}

// RepositoryContainerInterface defines the contract for the repository container
type RepositoryContainerInterface interface {
	GetCatalogRepository() CatalogRepositoryInterface
	GetDeliveryRepository() DeliveryRepositoryInterface
}

var (
	_ CatalogRepositoryInterface  = (*CatalogRepository)(nil)
	_ DeliveryRepositoryInterface = (*DeliveryRepository)(nil)
	_ DeliveryRepositoryInterface = DisabledDeliveryRepository{}
)
