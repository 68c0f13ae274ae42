package services

import (
	"ceam-backend/mailer"
	"ceam-backend/models"
	"ceam-backend/repository"
	"ceam-backend/utils/logger"
)

// Service implements ServiceContainerInterface
type Service struct {
	contactService        ContactServiceInterface
	eventService          EventServiceInterface
	newsService           NewsServiceInterface
	deliveryService       DeliveryServiceInterface
	infrastructureService InfrastructureServiceInterface
}

// NewService creates a new service container with all dependencies injected.
// worker may be nil, in which case the infrastructure endpoints report it as unavailable.
func NewService(
	repoContainer repository.RepositoryContainerInterface,
	transport mailer.Transport,
	renderer *mailer.Renderer,
	worker WorkerInterface,
	logger logger.Logger,
	config *models.Config,
) ServiceContainerInterface {
	return &Service{
		contactService:        NewContactService(transport, renderer, repoContainer.GetDeliveryRepository(), config, logger),
		eventService:          NewEventService(repoContainer.GetCatalogRepository(), logger),
		newsService:           NewNewsService(repoContainer.GetCatalogRepository(), logger),
		deliveryService:       NewDeliveryService(repoContainer.GetDeliveryRepository(), logger),
		infrastructureService: NewInfrastructureService(worker, logger, config),
	}
}

// GetContactService returns the contact service interface
func (s *Service) GetContactService() ContactServiceInterface {
	return s.contactService
}

// GetEventService returns the event service interface
func (s *Service) GetEventService() EventServiceInterface {
	return s.eventService
}

// GetNewsService returns the news service interface
func (s *Service) GetNewsService() NewsServiceInterface {
	return s.newsService
}

// GetDeliveryService returns the delivery service interface
func (s *Service) GetDeliveryService() DeliveryServiceInterface {
	return s.deliveryService
}

// GetInfrastructureService returns the infrastructure service interface
func (s *Service) GetInfrastructureService() InfrastructureServiceInterface {
	return s.infrastructureService
}
