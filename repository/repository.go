package repository

import (
	"ceam-backend/dal"
	"ceam-backend/models"
	"ceam-backend/utils/logger"
)

type Repository struct {
	Catalog  CatalogRepositoryInterface
	Delivery DeliveryRepositoryInterface
}

// NewRepository wires the repositories. db may be nil when the delivery ledger is disabled.
func NewRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) (*Repository, error) {
	catalog, err := NewCatalogRepository(cfg, log)
	if err != nil {
		return nil, err
	}

	var delivery DeliveryRepositoryInterface = DisabledDeliveryRepository{}
	if cfg.DeliveryLogEnabled && db != nil {
		delivery = NewDeliveryRepository(db, cfg, log)
	}

	return &Repository{
		Catalog:  catalog,
		Delivery: delivery,
	}, nil
}

func (r *Repository) GetCatalogRepository() CatalogRepositoryInterface {
	return r.Catalog
}

func (r *Repository) GetDeliveryRepository() DeliveryRepositoryInterface {
	return r.Delivery
}
