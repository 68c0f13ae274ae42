package services

import (
	"ceam-backend/models"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryServiceList(t *testing.T) {
	ctx := context.Background()
	repo := &MockDeliveryRepository{}
	filter := models.DeliveryFilter{Status: models.DeliveryStatusFailed, Limit: 10}
	repo.On("List", ctx, filter).Return([]*models.DeliveryRecord{{ID: "a"}}, nil).Once()
	repo.On("Enabled").Return(true)

	service := NewDeliveryService(repo, newQuietLogger())
	assert.True(t, service.Enabled())

	records, err := service.ListDeliveries(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, records, 1)
	repo.AssertExpectations(t)
}

func TestDeliveryServiceRejectsBadFilter(t *testing.T) {
	service := NewDeliveryService(&MockDeliveryRepository{}, newQuietLogger())

	var vErr *models.ValidationError
	_, err := service.ListDeliveries(context.Background(), models.DeliveryFilter{Status: "lost"})
	assert.True(t, errors.As(err, &vErr))

	_, err = service.ListDeliveries(context.Background(), models.DeliveryFilter{Limit: 10000})
	assert.True(t, errors.As(err, &vErr))
	assert.Equal(t, "limit", vErr.Field)
}
