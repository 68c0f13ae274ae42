package repository

import (
	"ceam-backend/dal"
	"ceam-backend/models"
	"ceam-backend/utils/logger"
	"context"
	"fmt"
	"sort"
)

const defaultDeliveryListLimit = 50

// DeliveryRepository stores mail delivery outcomes in DynamoDB
type DeliveryRepository struct {
	db     dal.DatabaseClientInterface
	config *models.Config
	logger logger.Logger
}

func NewDeliveryRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *DeliveryRepository {
	return &DeliveryRepository{
		db:     db,
		config: cfg,
		logger: log,
	}
}

func (r *DeliveryRepository) Enabled() bool {
	return r.db != nil
}

// Record writes one delivery record
func (r *DeliveryRepository) Record(ctx context.Context, record *models.DeliveryRecord) error {
	if err := r.db.PutItem(ctx, r.config.DeliveriesTable(), record); err != nil {
		r.logger.Errorf("Failed to record delivery %s: %v", record.ID, err)
		return fmt.Errorf("failed to record delivery: %w", err)
	}
	r.logger.Debugf("Delivery recorded: %s (%s)", record.ID, record.Status)
	return nil
}

// List returns records newest first, optionally narrowed to one status
func (r *DeliveryRepository) List(ctx context.Context, filter models.DeliveryFilter) ([]*models.DeliveryRecord, error) {
	var records []*models.DeliveryRecord
	tableName := r.config.DeliveriesTable()

	var err error
	if filter.Status != "" {
		err = r.db.ScanWhere(ctx, tableName, "status", string(filter.Status), &records)
	} else {
		err = r.db.Scan(ctx, tableName, &records)
	}
	if err != nil {
		r.logger.Errorf("Failed to scan %s: %v", tableName, err)
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultDeliveryListLimit
	}
	if len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// DisabledDeliveryRepository is used when the ledger is turned off
type DisabledDeliveryRepository struct{}

func (DisabledDeliveryRepository) Enabled() bool { return false }

func (DisabledDeliveryRepository) Record(ctx context.Context, record *models.DeliveryRecord) error {
	return nil
}

func (DisabledDeliveryRepository) List(ctx context.Context, filter models.DeliveryFilter) ([]*models.DeliveryRecord, error) {
	return []*models.DeliveryRecord{}, nil
}
