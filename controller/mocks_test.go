package controller

import (
	"ceam-backend/models"
	"ceam-backend/services"
	"ceam-backend/utils/logger"
	"context"

	"github.com/stretchr/testify/mock"
)

// MockControllerLogger is a mock implementation of logger.Logger
type MockControllerLogger struct {
	mock.Mock
}

func (m *MockControllerLogger) Debug(args ...interface{})                 { m.Called(args) }
func (m *MockControllerLogger) Debugf(format string, args ...interface{}) { m.Called(format, args) }
func (m *MockControllerLogger) Info(args ...interface{})                  { m.Called(args) }
func (m *MockControllerLogger) Infof(format string, args ...interface{})  { m.Called(format, args) }
func (m *MockControllerLogger) Warn(args ...interface{})                  { m.Called(args) }
func (m *MockControllerLogger) Warnf(format string, args ...interface{})  { m.Called(format, args) }
func (m *MockControllerLogger) Error(args ...interface{})                 { m.Called(args) }
func (m *MockControllerLogger) Errorf(format string, args ...interface{}) { m.Called(format, args) }
func (m *MockControllerLogger) Fatal(args ...interface{})                 { m.Called(args) }
func (m *MockControllerLogger) Fatalf(format string, args ...interface{}) { m.Called(format, args) }

func (m *MockControllerLogger) WithFields(fields logger.Fields) logger.Logger {
	return m.Called(fields).Get(0).(logger.Logger)
}

func newMockLogger() *MockControllerLogger {
	l := &MockControllerLogger{}
	for _, method := range []string{"Debug", "Info", "Warn", "Error"} {
		l.On(method, mock.Anything).Maybe()
		l.On(method+"f", mock.Anything, mock.Anything).Maybe()
	}
	l.On("WithFields", mock.Anything).Return(l).Maybe()
	return l
}

// MockContactService implements services.ContactServiceInterface for testing
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) ParseInquiry(body []byte) (*models.Inquiry, error) {
	args := m.Called(body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Inquiry), args.Error(1)
}

func (m *MockContactService) ValidateInquiry(inq *models.Inquiry) error {
	return m.Called(inq).Error(0)
}

func (m *MockContactService) Submit(ctx context.Context, inq *models.Inquiry, clientIP string) (*models.SubmissionResult, error) {
	args := m.Called(ctx, inq, clientIP)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubmissionResult), args.Error(1)
}

// MockEventService implements services.EventServiceInterface for testing
type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) ListEvents() []models.Event {
	return m.Called().Get(0).([]models.Event)
}

func (m *MockEventService) UpcomingEvents() []models.Event {
	return m.Called().Get(0).([]models.Event)
}

func (m *MockEventService) HomeSection(phase models.Phase) (models.HomeSectionView, error) {
	args := m.Called(phase)
	return args.Get(0).(models.HomeSectionView), args.Error(1)
}

func (m *MockEventService) ListingGrid(phase models.Phase) (models.ListingGridView, error) {
	args := m.Called(phase)
	return args.Get(0).(models.ListingGridView), args.Error(1)
}

func (m *MockEventService) GetEvent(id string) (*models.Event, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockEventService) GetCountdown(id string) (*models.Countdown, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Countdown), args.Error(1)
}

// MockNewsService implements services.NewsServiceInterface for testing
type MockNewsService struct {
	mock.Mock
}

func (m *MockNewsService) Latest(count int) []models.NewsArticle {
	return m.Called(count).Get(0).([]models.NewsArticle)
}

func (m *MockNewsService) ByCategory(category models.NewsCategory) ([]models.NewsArticle, error) {
	args := m.Called(category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.NewsArticle), args.Error(1)
}

func (m *MockNewsService) Featured() (*models.NewsArticle, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NewsArticle), args.Error(1)
}

func (m *MockNewsService) BySlug(slug string) (*models.NewsArticle, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NewsArticle), args.Error(1)
}

func (m *MockNewsService) Related(slug string, category models.NewsCategory, count int) []models.NewsArticle {
	return m.Called(slug, category, count).Get(0).([]models.NewsArticle)
}

func (m *MockNewsService) Detail(slug string) (*models.ArticleDetail, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ArticleDetail), args.Error(1)
}

// MockDeliveryService implements services.DeliveryServiceInterface for testing
type MockDeliveryService struct {
	mock.Mock
}

func (m *MockDeliveryService) Enabled() bool {
	return m.Called().Bool(0)
}

func (m *MockDeliveryService) ListDeliveries(ctx context.Context, filter models.DeliveryFilter) ([]*models.DeliveryRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.DeliveryRecord), args.Error(1)
}

// MockInfrastructureService implements services.InfrastructureServiceInterface for testing
type MockInfrastructureService struct {
	mock.Mock
}

func (m *MockInfrastructureService) GetWorkerStatus(ctx context.Context) (*models.WorkerHealth, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WorkerHealth), args.Error(1)
}

func (m *MockInfrastructureService) IsWorkerHealthy() (bool, string) {
	args := m.Called()
	return args.Bool(0), args.String(1)
}

func (m *MockInfrastructureService) ReloadCatalog(ctx context.Context) (*models.ReloadResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReloadResult), args.Error(1)
}

// mockServices implements services.ServiceContainerInterface
type mockServices struct {
	contact        *MockContactService
	events         *MockEventService
	news           *MockNewsService
	deliveries     *MockDeliveryService
	infrastructure *MockInfrastructureService
}

func newMockServices() *mockServices {
	return &mockServices{
		contact:        &MockContactService{},
		events:         &MockEventService{},
		news:           &MockNewsService{},
		deliveries:     &MockDeliveryService{},
		infrastructure: &MockInfrastructureService{},
	}
}

func (s *mockServices) GetContactService() services.ContactServiceInterface { return s.contact }
func (s *mockServices) GetEventService() services.EventServiceInterface     { return s.events }
func (s *mockServices) GetNewsService() services.NewsServiceInterface       { return s.news }
func (s *mockServices) GetDeliveryService() services.DeliveryServiceInterface {
	return s.deliveries
}
func (s *mockServices) GetInfrastructureService() services.InfrastructureServiceInterface {
	return s.infrastructure
}
