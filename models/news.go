package models

import "time"

// NewsCategory groups articles on the news page
type NewsCategory string

const (
	NewsCategoryCommunity      NewsCategory = "Community"
	NewsCategoryEducation      NewsCategory = "Education"
	NewsCategoryEvents         NewsCategory = "Events"
	NewsCategoryHealthcare     NewsCategory = "Healthcare"
	NewsCategoryAdvocacy       NewsCategory = "Advocacy"
	NewsCategorySuccessStories NewsCategory = "Success Stories"
)

// IsValid reports whether c is one of the known categories
func (c NewsCategory) IsValid() bool {
	switch c {
	case NewsCategoryCommunity, NewsCategoryEducation, NewsCategoryEvents,
		NewsCategoryHealthcare, NewsCategoryAdvocacy, NewsCategorySuccessStories:
		return true
	}
	return false
}

// ContentBlock is one piece of an article body.
// Type is one of paragraph, heading, image, quote, list.
type ContentBlock struct {
	Type    string   `json:"type" yaml:"type"`
	Text    string   `json:"text,omitempty" yaml:"text"`
	Src     string   `json:"src,omitempty" yaml:"src"`
	Alt     string   `json:"alt,omitempty" yaml:"alt"`
	Caption string   `json:"caption,omitempty" yaml:"caption"`
	Author  string   `json:"author,omitempty" yaml:"author"`
	Items   []string `json:"items,omitempty" yaml:"items"`
}

// NewsArticle is a news story from the static catalog
type NewsArticle struct {
	Slug       string         `json:"slug"`
	Title      string         `json:"title"`
	Excerpt    string         `json:"excerpt"`
	Category   NewsCategory   `json:"category"`
	Date       time.Time      `json:"date"`
	Author     string         `json:"author"`
	AuthorRole string         `json:"authorRole,omitempty"`
	AuthorBio  string         `json:"authorBio,omitempty"`
	ReadTime   string         `json:"readTime"`
	Featured   bool           `json:"featured"`
	Image      string         `json:"image"`
	Tags       []string       `json:"tags,omitempty"`
	Content    []ContentBlock `json:"content"`
}

// ArticleDetail is an article together with its related articles
type ArticleDetail struct {
	Article NewsArticle   `json:"article"`
	Related []NewsArticle `json:"related"`
}
