package controller

import (
	"ceam-backend/models"
	"ceam-backend/services"
	"ceam-backend/utils/logger"
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type NewsController struct {
	ctx     context.Context
	service services.NewsServiceInterface
	logger  logger.Logger
}

func NewNewsController(ctx context.Context, service services.NewsServiceInterface, logger logger.Logger) *NewsController {
	return &NewsController{
		ctx:     ctx,
		service: service,
		logger:  logger,
	}
}

// queryInt reads a non-negative integer query parameter
func queryInt(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		c.JSON(http.StatusBadRequest, failure(http.StatusBadRequest, "Invalid "+name, "ValidationError", name+" must be a non-negative integer", name))
		return 0, false
	}
	return n, true
}

// ListArticles handles GET /news
// @Summary List news articles
// @Description Without a category, all articles newest first. With a category, that category in catalog order.
// @Tags News
// @Produce json
// @Param category query string false "Article category"
// @Param limit query int false "Maximum number of articles, 0 for all"
// @Success 200 {object} models.APIResponse{data=[]models.NewsArticle}
// @Failure 400 {object} models.APIResponse
// @Router /news [get]
func (h *NewsController) ListArticles(c *gin.Context) {
	limit, ok := queryInt(c, "limit", 0)
	if !ok {
		return
	}

	var articles []models.NewsArticle
	if category := c.Query("category"); category != "" {
		var err error
		articles, err = h.service.ByCategory(models.NewsCategory(category))
		if err != nil {
			var vErr *models.ValidationError
			if errors.As(err, &vErr) {
				c.JSON(http.StatusBadRequest, failure(http.StatusBadRequest, "Invalid category", "ValidationError", vErr.Message, vErr.Field))
				return
			}
			h.logger.Errorf("Failed to list articles: %v", err)
			c.JSON(http.StatusInternalServerError, failure(http.StatusInternalServerError, "Failed to list articles", "InternalError", err.Error(), ""))
			return
		}
		if limit > 0 && len(articles) > limit {
			articles = articles[:limit]
		}
	} else {
		articles = h.service.Latest(limit)
	}

	c.JSON(http.StatusOK, success("Articles retrieved successfully", articles))
}

// LatestArticles handles GET /news/latest
// @Summary Latest news
// @Description The newest articles, as shown on the home page
// @Tags News
// @Produce json
// @Param count query int false "Number of articles" default(6)
// @Success 200 {object} models.APIResponse{data=[]models.NewsArticle}
// @Failure 400 {object} models.APIResponse
// @Router /news/latest [get]
func (h *NewsController) LatestArticles(c *gin.Context) {
	count, ok := queryInt(c, "count", services.DefaultLatestCount)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, success("Latest articles retrieved successfully", h.service.Latest(count)))
}

// FeaturedArticle handles GET /news/featured
// @Summary Featured article
// @Tags News
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.NewsArticle}
// @Failure 404 {object} models.APIResponse
// @Router /news/featured [get]
func (h *NewsController) FeaturedArticle(c *gin.Context) {
	article, err := h.service.Featured()
	if err != nil {
		h.notFoundOrError(c, err)
		return
	}
	c.JSON(http.StatusOK, success("Featured article retrieved successfully", article))
}

// GetArticle handles GET /news/:slug
// @Summary Get an article
// @Description The article and up to three related articles from the same category
// @Tags News
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} models.APIResponse{data=models.ArticleDetail}
// @Failure 404 {object} models.APIResponse
// @Router /news/{slug} [get]
func (h *NewsController) GetArticle(c *gin.Context) {
	detail, err := h.service.Detail(c.Param("slug"))
	if err != nil {
		h.notFoundOrError(c, err)
		return
	}
	c.JSON(http.StatusOK, success("Article retrieved successfully", detail))
}

func (h *NewsController) notFoundOrError(c *gin.Context, err error) {
	if errors.Is(err, models.ErrArticleNotFound) {
		c.JSON(http.StatusNotFound, failure(http.StatusNotFound, "Article not found", "NotFoundError", err.Error(), ""))
		return
	}
	h.logger.Errorf("Failed to get article: %v", err)
	c.JSON(http.StatusInternalServerError, failure(http.StatusInternalServerError, "Failed to get article", "InternalError", err.Error(), ""))
}
