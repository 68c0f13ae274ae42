package services

import (
	"ceam-backend/models"
	"ceam-backend/utils/logger"
	"context"
	"errors"
)

// ErrWorkerUnavailable is returned when no background worker is attached
var ErrWorkerUnavailable = errors.New("background worker is not running")

type InfrastructureService struct {
	worker WorkerInterface
	logger logger.Logger
	config *models.Config
}

func NewInfrastructureService(worker WorkerInterface, logger logger.Logger, config *models.Config) *InfrastructureService {
	return &InfrastructureService{
		worker: worker,
		logger: logger,
		config: config,
	}
}

// GetWorkerStatus returns the table bootstrap and catalog reload state
func (s *InfrastructureService) GetWorkerStatus(ctx context.Context) (*models.WorkerHealth, error) {
	if s.worker == nil {
		return nil, ErrWorkerUnavailable
	}
	health := s.worker.Health()
	return &health, nil
}

// IsWorkerHealthy reports whether the last setup and reload succeeded
func (s *InfrastructureService) IsWorkerHealthy() (bool, string) {
	if s.worker == nil {
		return false, "worker not attached"
	}
	health := s.worker.Health()
	if !health.Running {
		return false, "worker stopped"
	}
	if health.Setup != nil && health.Setup.Status == models.StatusFailed {
		return false, "table setup failed: " + health.Setup.ErrorMessage
	}
	if health.LastReload != nil && health.LastReload.Status == models.StatusFailed {
		return false, "last catalog reload failed: " + health.LastReload.Error
	}
	return true, "ok"
}

// ReloadCatalog triggers an immediate catalog reload
func (s *InfrastructureService) ReloadCatalog(ctx context.Context) (*models.ReloadResult, error) {
	if s.worker == nil {
		return nil, ErrWorkerUnavailable
	}
	s.logger.Info("Manual catalog reload requested")
	result := s.worker.ReloadCatalog()
	if result.Status == models.StatusFailed {
		return result, errors.New(result.Error)
	}
	return result, nil
}
