package services

import (
	"ceam-backend/models"
	"ceam-backend/repository"
	"ceam-backend/utils/logger"
	"context"
	"fmt"
)

const maxDeliveryListLimit = 500

type DeliveryService struct {
	repo   repository.DeliveryRepositoryInterface
	logger logger.Logger
}

func NewDeliveryService(repo repository.DeliveryRepositoryInterface, log logger.Logger) *DeliveryService {
	return &DeliveryService{repo: repo, logger: log}
}

func (s *DeliveryService) Enabled() bool {
	return s.repo.Enabled()
}

// ListDeliveries returns ledger records, newest first
func (s *DeliveryService) ListDeliveries(ctx context.Context, filter models.DeliveryFilter) ([]*models.DeliveryRecord, error) {
	switch filter.Status {
	case "", models.DeliveryStatusSent, models.DeliveryStatusFailed:
	default:
		return nil, &models.ValidationError{Message: fmt.Sprintf("Unknown status %q", filter.Status), Field: "status"}
	}
	if filter.Limit < 0 || filter.Limit > maxDeliveryListLimit {
		return nil, &models.ValidationError{Message: fmt.Sprintf("limit must be between 0 and %d", maxDeliveryListLimit), Field: "limit"}
	}

	s.logger.Debugf("Listing deliveries (status=%q, limit=%d)", filter.Status, filter.Limit)
	return s.repo.List(ctx, filter)
}
