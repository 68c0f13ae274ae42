package services

import (
	"ceam-backend/models"
	"ceam-backend/repository"
	"ceam-backend/utils/logger"
	"context"

	"github.com/stretchr/testify/mock"
)

// MockLogger is a mock implementation of logger.Logger
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(args ...interface{}) {
	m.Called(args)
}

func (m *MockLogger) Debugf(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockLogger) Info(args ...interface{}) {
	m.Called(args)
}

func (m *MockLogger) Infof(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockLogger) Warn(args ...interface{}) {
	m.Called(args)
}

func (m *MockLogger) Warnf(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockLogger) Error(args ...interface{}) {
	m.Called(args)
}

func (m *MockLogger) Errorf(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockLogger) Fatal(args ...interface{}) {
	m.Called(args)
}

func (m *MockLogger) Fatalf(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockLogger) WithFields(fields logger.Fields) logger.Logger {
	args := m.Called(fields)
	return args.Get(0).(logger.Logger)
}

// newQuietLogger returns a MockLogger accepting any call
func newQuietLogger() *MockLogger {
	l := &MockLogger{}
	for _, method := range []string{"Debug", "Info", "Warn", "Error"} {
		l.On(method, mock.Anything).Return().Maybe()
		l.On(method+"f", mock.AnythingOfType("string"), mock.Anything).Return().Maybe()
	}
	l.On("WithFields", mock.Anything).Return(l).Maybe()
	return l
}

// MockTransport is a mock implementation of mailer.Transport
type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Send(ctx context.Context, msg *models.MailMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockTransport) Name() string {
	return "mock"
}

// MockCatalogRepository is a mock implementation of repository.CatalogRepositoryInterface
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) Events() []models.Event {
	args := m.Called()
	events := args.Get(0).([]models.Event)
	out := make([]models.Event, len(events))
	copy(out, events)
	return out
}

func (m *MockCatalogRepository) Articles() []models.NewsArticle {
	args := m.Called()
	articles := args.Get(0).([]models.NewsArticle)
	out := make([]models.NewsArticle, len(articles))
	copy(out, articles)
	return out
}

func (m *MockCatalogRepository) Reload() (*repository.Catalog, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Catalog), args.Error(1)
}

// MockDeliveryRepository is a mock implementation of repository.DeliveryRepositoryInterface
type MockDeliveryRepository struct {
	mock.Mock
}

func (m *MockDeliveryRepository) Enabled() bool {
	return m.Called().Bool(0)
}

func (m *MockDeliveryRepository) Record(ctx context.Context, record *models.DeliveryRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *MockDeliveryRepository) List(ctx context.Context, filter models.DeliveryFilter) ([]*models.DeliveryRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.DeliveryRecord), args.Error(1)
}

// MockWorker is a mock implementation of WorkerInterface
type MockWorker struct {
	mock.Mock
}

func (m *MockWorker) Health() models.WorkerHealth {
	return m.Called().Get(0).(models.WorkerHealth)
}

func (m *MockWorker) ReloadCatalog() *models.ReloadResult {
	return m.Called().Get(0).(*models.ReloadResult)
}
