package controller

import (
	"ceam-backend/middelware"
	"ceam-backend/models"
	"ceam-backend/services"
	"ceam-backend/utils/logger"
	"ceam-backend/utils/swagger"
	"context"
	"net/http"

	_ "ceam-backend/docs"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	Contact *ContactController
	Event   *EventController
	News    *NewsController
	Admin   *AdminController

	jwtManager *middelware.JWTManager
	config     *models.Config
}

func NewController(ctx context.Context, svc services.ServiceContainerInterface, jwtManager *middelware.JWTManager, cfg *models.Config, log logger.Logger) *Controller {
	return &Controller{
		Contact:    NewContactController(ctx, svc.GetContactService(), log),
		Event:      NewEventController(ctx, svc.GetEventService(), log),
		News:       NewNewsController(ctx, svc.GetNewsService(), log),
		Admin:      NewAdminController(ctx, svc.GetDeliveryService(), svc.GetInfrastructureService(), log),
		jwtManager: jwtManager,
		config:     cfg,
	}
}

func success(message string, data interface{}) models.APIResponse {
	return models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		Data:    data,
	}
}

func failure(code int, message, errType, details, field string) models.APIResponse {
	return models.APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		Error: &models.APIError{
			Type:    errType,
			Details: details,
			Field:   field,
		},
	}
}

// Health handles GET /health
// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (c *Controller) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": c.config.AppVersion,
		"service": c.config.AppName,
	})
}

// RegisterRoutes mounts every endpoint on r under basePath
func (c *Controller) RegisterRoutes(r *gin.Engine, basePath string) {
	api := r.Group(basePath)

	api.GET("/health", c.Health)

	api.GET("/contact", c.Contact.Status)
	api.POST("/contact", c.Contact.Submit)

	events := api.Group("/events")
	events.GET("", c.Event.ListEvents)
	events.GET("/upcoming", c.Event.UpcomingEvents)
	events.GET("/home", c.Event.HomeSection)
	events.GET("/listing", c.Event.ListingGrid)
	events.GET("/:id", c.Event.GetEvent)
	events.GET("/:id/countdown", c.Event.GetCountdown)

	news := api.Group("/news")
	news.GET("", c.News.ListArticles)
	news.GET("/latest", c.News.LatestArticles)
	news.GET("/featured", c.News.FeaturedArticle)
	news.GET("/:slug", c.News.GetArticle)

	admin := api.Group("/admin", c.jwtManager.AuthMiddleware(), c.jwtManager.RequireRole(models.AdminRole))
	admin.GET("/deliveries", c.Admin.ListDeliveries)
	admin.GET("/worker", c.Admin.WorkerStatus)
	admin.POST("/catalog/reload", c.Admin.ReloadCatalog)

	swaggerConfig := swagger.SwaggerConfig{
		Title:         c.config.AppName,
		SwaggerDocURL: "/swagger/doc.json",
	}
	r.GET("/swagger", swagger.ServeSwaggerUI(swaggerConfig))
	r.GET("/swagger/index.html", swagger.ServeSwaggerUI(swaggerConfig))
	r.GET("/swagger/doc.json", swagger.ServeDoc)
}
