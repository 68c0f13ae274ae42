package services

import (
	"ceam-backend/models"
	"ceam-backend/repository"
	"ceam-backend/utils/logger"
	"fmt"
	"sort"
)

const (
	DefaultLatestCount  = 6
	DefaultRelatedCount = 3
)

type NewsService struct {
	catalog repository.CatalogRepositoryInterface
	logger  logger.Logger
}

func NewNewsService(catalog repository.CatalogRepositoryInterface, log logger.Logger) *NewsService {
	return &NewsService{
		catalog: catalog,
		logger:  log,
	}
}

// Latest returns up to count articles, newest first. count <= 0 means no limit.
func (s *NewsService) Latest(count int) []models.NewsArticle {
	articles := s.catalog.Articles()
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].Date.After(articles[j].Date)
	})
	if count > 0 && len(articles) > count {
		articles = articles[:count]
	}
	return articles
}

// ByCategory returns the articles of one category in catalog order
func (s *NewsService) ByCategory(category models.NewsCategory) ([]models.NewsArticle, error) {
	if !category.IsValid() {
		return nil, &models.ValidationError{Message: fmt.Sprintf("Unknown category %q", category), Field: "category"}
	}
	out := []models.NewsArticle{}
	for _, a := range s.catalog.Articles() {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out, nil
}

// Featured returns the first article marked featured
func (s *NewsService) Featured() (*models.NewsArticle, error) {
	for _, a := range s.catalog.Articles() {
		if a.Featured {
			article := a
			return &article, nil
		}
	}
	return nil, models.ErrArticleNotFound
}

func (s *NewsService) BySlug(slug string) (*models.NewsArticle, error) {
	for _, a := range s.catalog.Articles() {
		if a.Slug == slug {
			article := a
			return &article, nil
		}
	}
	return nil, models.ErrArticleNotFound
}

// Related returns up to count other articles of the same category, in catalog order
func (s *NewsService) Related(slug string, category models.NewsCategory, count int) []models.NewsArticle {
	out := []models.NewsArticle{}
	for _, a := range s.catalog.Articles() {
		if count > 0 && len(out) == count {
			break
		}
		if a.Category == category && a.Slug != slug {
			out = append(out, a)
		}
	}
	return out
}

// Detail returns an article with its related articles
func (s *NewsService) Detail(slug string) (*models.ArticleDetail, error) {
	article, err := s.BySlug(slug)
	if err != nil {
		return nil, err
	}
	return &models.ArticleDetail{
		Article: *article,
		Related: s.Related(article.Slug, article.Category, DefaultRelatedCount),
	}, nil
}
