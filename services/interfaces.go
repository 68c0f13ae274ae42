package services

import (
	"ceam-backend/models"
	"context"
)

// ContactServiceInterface defines the contract for the contact form pipeline
type ContactServiceInterface interface {
	ParseInquiry(body []byte) (*models.Inquiry, error)
	ValidateInquiry(inq *models.Inquiry) error
	Submit(ctx context.Context, inq *models.Inquiry, clientIP string) (*models.SubmissionResult, error)
}

// EventServiceInterface defines the contract for the event catalog
type EventServiceInterface interface {
	ListEvents() []models.Event
	UpcomingEvents() []models.Event
	HomeSection(phase models.Phase) (models.HomeSectionView, error)
	ListingGrid(phase models.Phase) (models.ListingGridView, error)
	GetEvent(id string) (*models.Event, error)
	GetCountdown(id string) (*models.Countdown, error)
}

// NewsServiceInterface defines the contract for the news catalog
type NewsServiceInterface interface {
	Latest(count int) []models.NewsArticle
	ByCategory(category models.NewsCategory) ([]models.NewsArticle, error)
	Featured() (*models.NewsArticle, error)
	BySlug(slug string) (*models.NewsArticle, error)
	Related(slug string, category models.NewsCategory, count int) []models.NewsArticle
	Detail(slug string) (*models.ArticleDetail, error)
}

// DeliveryServiceInterface defines the contract for the delivery ledger
type DeliveryServiceInterface interface {
	Enabled() bool
	ListDeliveries(ctx context.Context, filter models.DeliveryFilter) ([]*models.DeliveryRecord, error)
}

// InfrastructureServiceInterface defines the contract for infrastructure service
type InfrastructureServiceInterface interface {
	GetWorkerStatus(ctx context.Context) (*models.WorkerHealth, error)
	IsWorkerHealthy() (bool, string)
	ReloadCatalog(ctx context.Context) (*models.ReloadResult, error)
}

// WorkerInterface is the part of the background worker the services talk to
type WorkerInterface interface {
	Health() models.WorkerHealth
	ReloadCatalog() *models.ReloadResult
}

// ServiceContainer interface defines the main service container contract
type ServiceContainerInterface interface {
	GetContactService() ContactServiceInterface
	GetEventService() EventServiceInterface
	GetNewsService() NewsServiceInterface
	GetDeliveryService() DeliveryServiceInterface
	GetInfrastructureService() InfrastructureServiceInterface
}

var (
	_ ContactServiceInterface        = (*ContactService)(nil)
	_ EventServiceInterface          = (*EventService)(nil)
	_ NewsServiceInterface           = (*NewsService)(nil)
	_ DeliveryServiceInterface       = (*DeliveryService)(nil)
	_ InfrastructureServiceInterface = (*InfrastructureService)(nil)
)
