package controller

import (
	"ceam-backend/models"
	"ceam-backend/services"
	"ceam-backend/utils/logger"
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	ctx            context.Context
	deliveries     services.DeliveryServiceInterface
	infrastructure services.InfrastructureServiceInterface
	logger         logger.Logger
}

func NewAdminController(ctx context.Context, deliveries services.DeliveryServiceInterface, infrastructure services.InfrastructureServiceInterface, logger logger.Logger) *AdminController {
	return &AdminController{
		ctx:            ctx,
		deliveries:     deliveries,
		infrastructure: infrastructure,
		logger:         logger,
	}
}

// ListDeliveries handles GET /admin/deliveries
// @Summary List mail delivery records
// @Description Outcome of the admin notification and auto-reply for each accepted submission, newest first
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param status query string false "sent or failed" Enums(sent, failed)
// @Param limit query int false "Maximum number of records" default(50)
// @Success 200 {object} models.APIResponse{data=[]models.DeliveryRecord}
// @Failure 400 {object} models.APIResponse
// @Failure 401 {object} models.APIResponse
// @Failure 403 {object} models.APIResponse
// @Failure 503 {object} models.APIResponse "Delivery log disabled"
// @Router /admin/deliveries [get]
func (h *AdminController) ListDeliveries(c *gin.Context) {
	if !h.deliveries.Enabled() {
		c.JSON(http.StatusServiceUnavailable, failure(http.StatusServiceUnavailable, "Delivery log is disabled", "ConfigurationError", "set DELIVERY_LOG_ENABLED=true to record deliveries", ""))
		return
	}

	limit, ok := queryInt(c, "limit", 0)
	if !ok {
		return
	}

	records, err := h.deliveries.ListDeliveries(c.Request.Context(), models.DeliveryFilter{
		Status: models.DeliveryStatus(c.Query("status")),
		Limit:  limit,
	})
	if err != nil {
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, failure(http.StatusBadRequest, vErr.Message, "ValidationError", vErr.Message, vErr.Field))
			return
		}
		h.logger.Errorf("Failed to list deliveries: %v", err)
		c.JSON(http.StatusInternalServerError, failure(http.StatusInternalServerError, "Failed to list deliveries", "DatabaseError", err.Error(), ""))
		return
	}

	c.JSON(http.StatusOK, success("Deliveries retrieved successfully", records))
}

// WorkerStatus handles GET /admin/worker
// @Summary Background worker status
// @Description Table setup result and the last catalog reload
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.WorkerHealth}
// @Failure 401 {object} models.APIResponse
// @Failure 403 {object} models.APIResponse
// @Failure 503 {object} models.APIResponse
// @Router /admin/worker [get]
func (h *AdminController) WorkerStatus(c *gin.Context) {
	health, err := h.infrastructure.GetWorkerStatus(c.Request.Context())
	if err != nil {
		h.workerError(c, err)
		return
	}

	healthy, reason := h.infrastructure.IsWorkerHealthy()
	status, message := "success", "Worker is healthy"
	if !healthy {
		status, message = "warning", "Worker is unhealthy: "+reason
	}
	c.JSON(http.StatusOK, models.APIResponse{
		Status:  status,
		Code:    http.StatusOK,
		Message: message,
		Data:    health,
	})
}

// ReloadCatalog handles POST /admin/catalog/reload
// @Summary Reload the event and news catalog
// @Description Re-reads the catalog files now. On failure the previous catalog stays in use.
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.ReloadResult}
// @Failure 401 {object} models.APIResponse
// @Failure 403 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Failure 503 {object} models.APIResponse
// @Router /admin/catalog/reload [post]
func (h *AdminController) ReloadCatalog(c *gin.Context) {
	result, err := h.infrastructure.ReloadCatalog(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrWorkerUnavailable) {
			h.workerError(c, err)
			return
		}
		c.JSON(http.StatusInternalServerError, models.APIResponse{
			Status:  "error",
			Code:    http.StatusInternalServerError,
			Message: "Catalog reload failed, previous catalog kept",
			Data:    result,
			Error:   &models.APIError{Type: "CatalogError", Details: err.Error()},
		})
		return
	}
	c.JSON(http.StatusOK, success("Catalog reloaded successfully", result))
}

func (h *AdminController) workerError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrWorkerUnavailable) {
		c.JSON(http.StatusServiceUnavailable, failure(http.StatusServiceUnavailable, "Worker is not running", "WorkerError", err.Error(), ""))
		return
	}
	h.logger.Errorf("Worker error: %v", err)
	c.JSON(http.StatusInternalServerError, failure(http.StatusInternalServerError, "Failed to retrieve worker status", "WorkerError", err.Error(), ""))
}
