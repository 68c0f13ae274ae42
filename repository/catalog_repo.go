package repository

import (
	"ceam-backend/models"
	"ceam-backend/utils/logger"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed content/events.yaml
var defaultEvents []byte

//go:embed content/news.yaml
var defaultNews []byte

// Catalog is an immutable snapshot of the static content
type Catalog struct {
	Events   []models.Event
	Articles []models.NewsArticle
	LoadedAt time.Time
}

type eventsDocument struct {
	Events []eventEntry `yaml:"events"`
}

type eventEntry struct {
	ID              string `yaml:"id"`
	Type            string `yaml:"type"`
	StartDate       string `yaml:"startDate"`
	EndDate         string `yaml:"endDate"`
	Title           string `yaml:"title"`
	Badge           string `yaml:"badge"`
	DateDisplay     string `yaml:"dateDisplay"`
	Location        string `yaml:"location"`
	SecondaryInfo   string `yaml:"secondaryInfo"`
	Description     string `yaml:"description"`
	DescriptionHome string `yaml:"descriptionHome"`
	CTAText         string `yaml:"ctaText"`
	CTATextHome     string `yaml:"ctaTextHome"`
	Href            string `yaml:"href"`
}

type newsDocument struct {
	Articles []articleEntry `yaml:"articles"`
}

type articleEntry struct {
	Slug       string                `yaml:"slug"`
	Title      string                `yaml:"title"`
	Excerpt    string                `yaml:"excerpt"`
	Category   string                `yaml:"category"`
	Date       string                `yaml:"date"`
	Author     string                `yaml:"author"`
	AuthorRole string                `yaml:"authorRole"`
	AuthorBio  string                `yaml:"authorBio"`
	ReadTime   string                `yaml:"readTime"`
	Featured   bool                  `yaml:"featured"`
	Image      string                `yaml:"image"`
	Tags       []string              `yaml:"tags"`
	Content    []models.ContentBlock `yaml:"content"`
}

var contentBlockTypes = map[string]bool{
	"paragraph": true,
	"heading":   true,
	"image":     true,
	"quote":     true,
	"list":      true,
}

// ParseEvents decodes and validates an events document
func ParseEvents(data []byte) ([]models.Event, error) {
	var doc eventsDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}

	var errs []error
	seen := make(map[string]bool, len(doc.Events))
	events := make([]models.Event, 0, len(doc.Events))

	for i, e := range doc.Events {
		where := fmt.Sprintf("events[%d]", i)
		if e.ID == "" {
			errs = append(errs, fmt.Errorf("%s: id is required", where))
			continue
		}
		where = fmt.Sprintf("event %q", e.ID)
		if seen[e.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate id", where))
			continue
		}
		seen[e.ID] = true

		eventType := models.EventType(e.Type)
		if eventType != models.EventTypeCultural && eventType != models.EventTypeEsports {
			errs = append(errs, fmt.Errorf("%s: unknown type %q", where, e.Type))
		}
		if e.Title == "" {
			errs = append(errs, fmt.Errorf("%s: title is required", where))
		}

		start, err := time.Parse(time.RFC3339, e.StartDate)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: invalid startDate: %w", where, err))
		}
		end, endErr := time.Parse(time.RFC3339, e.EndDate)
		if endErr != nil {
			errs = append(errs, fmt.Errorf("%s: invalid endDate: %w", where, endErr))
		}
		if err == nil && endErr == nil && end.Before(start) {
			errs = append(errs, fmt.Errorf("%s: endDate is before startDate", where))
		}

		events = append(events, models.Event{
			ID:              e.ID,
			Type:            eventType,
			StartDate:       start,
			EndDate:         end,
			Title:           e.Title,
			Badge:           e.Badge,
			DateDisplay:     e.DateDisplay,
			Location:        e.Location,
			SecondaryInfo:   e.SecondaryInfo,
			Description:     e.Description,
			DescriptionHome: e.DescriptionHome,
			CTAText:         e.CTAText,
			CTATextHome:     e.CTATextHome,
			Href:            e.Href,
		})
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return events, nil
}

// parseArticleDate accepts a full RFC 3339 timestamp or a plain date
func parseArticleDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, value)
}

// ParseArticles decodes and validates a news document
func ParseArticles(data []byte) ([]models.NewsArticle, error) {
	var doc newsDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode news: %w", err)
	}

	var errs []error
	seen := make(map[string]bool, len(doc.Articles))
	articles := make([]models.NewsArticle, 0, len(doc.Articles))

	for i, a := range doc.Articles {
		if a.Slug == "" {
			errs = append(errs, fmt.Errorf("articles[%d]: slug is required", i))
			continue
		}
		where := fmt.Sprintf("article %q", a.Slug)
		if seen[a.Slug] {
			errs = append(errs, fmt.Errorf("%s: duplicate slug", where))
			continue
		}
		seen[a.Slug] = true

		category := models.NewsCategory(a.Category)
		if !category.IsValid() {
			errs = append(errs, fmt.Errorf("%s: unknown category %q", where, a.Category))
		}
		date, err := parseArticleDate(a.Date)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: invalid date %q", where, a.Date))
		}
		for j, block := range a.Content {
			if !contentBlockTypes[block.Type] {
				errs = append(errs, fmt.Errorf("%s: content[%d] has unknown type %q", where, j, block.Type))
			}
		}

		articles = append(articles, models.NewsArticle{
			Slug:       a.Slug,
			Title:      a.Title,
			Excerpt:    a.Excerpt,
			Category:   category,
			Date:       date,
			Author:     a.Author,
			AuthorRole: a.AuthorRole,
			AuthorBio:  a.AuthorBio,
			ReadTime:   a.ReadTime,
			Featured:   a.Featured,
			Image:      a.Image,
			Tags:       a.Tags,
			Content:    a.Content,
		})
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return articles, nil
}

// CatalogRepository serves events and articles from an in-memory snapshot.
// Reload replaces the snapshot atomically and leaves it untouched on failure.
type CatalogRepository struct {
	eventsFile string
	newsFile   string
	snapshot   atomic.Pointer[Catalog]
	logger     logger.Logger
}

// NewCatalogRepository loads the catalog from the configured files, or the embedded defaults when unset
func NewCatalogRepository(cfg *models.Config, log logger.Logger) (*CatalogRepository, error) {
	r := &CatalogRepository{
		eventsFile: cfg.EventsFile,
		newsFile:   cfg.NewsFile,
		logger:     log,
	}
	if _, err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// NewCatalogRepositoryFromSnapshot builds a repository around an existing catalog
func NewCatalogRepositoryFromSnapshot(c *Catalog, log logger.Logger) *CatalogRepository {
	r := &CatalogRepository{logger: log}
	r.snapshot.Store(c)
	return r
}

func (r *CatalogRepository) read(path string, fallback []byte) ([]byte, error) {
	if strings.TrimSpace(path) == "" {
		return fallback, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// Reload re-reads both files and swaps in the new snapshot
func (r *CatalogRepository) Reload() (*Catalog, error) {
	eventsData, err := r.read(r.eventsFile, defaultEvents)
	if err != nil {
		return nil, err
	}
	newsData, err := r.read(r.newsFile, defaultNews)
	if err != nil {
		return nil, err
	}

	events, err := ParseEvents(eventsData)
	if err != nil {
		r.logger.Errorf("Event catalog rejected: %v", err)
		return nil, err
	}
	articles, err := ParseArticles(newsData)
	if err != nil {
		r.logger.Errorf("News catalog rejected: %v", err)
		return nil, err
	}

	c := &Catalog{Events: events, Articles: articles, LoadedAt: time.Now()}
	r.snapshot.Store(c)
	r.logger.Infof("Catalog loaded: %d events, %d articles", len(events), len(articles))
	return c, nil
}

// Snapshot returns the current catalog
func (r *CatalogRepository) Snapshot() *Catalog {
	return r.snapshot.Load()
}

// Events returns a copy of the configured event list in catalog order
func (r *CatalogRepository) Events() []models.Event {
	c := r.Snapshot()
	if c == nil {
		return nil
	}
	out := make([]models.Event, len(c.Events))
	copy(out, c.Events)
	return out
}

// Articles returns a copy of the article list in catalog order
func (r *CatalogRepository) Articles() []models.NewsArticle {
	c := r.Snapshot()
	if c == nil {
		return nil
	}
	out := make([]models.NewsArticle, len(c.Articles))
	copy(out, c.Articles)
	return out
}
