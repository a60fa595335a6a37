// Package news fetches trending articles for keywords from pluggable
// sources.
package news

import (
	"context"
	"fmt"

	"github.com/thedittmer/research-agent/internal/models"
)

// Source fetches articles for a single keyword.
type Source interface {
	Name() string
	Fetch(ctx context.Context, keyword string) ([]models.NewsArticle, error)
}

// Aggregator fetches articles for each keyword from its source.
type Aggregator struct {
	source Source
}

func NewAggregator(source Source) *Aggregator {
	return &Aggregator{source: source}
}

// SourceName reports which news backend the aggregator is using.
func (a *Aggregator) SourceName() string {
	return a.source.Name()
}

// FetchAll fetches articles for the keywords in order. A keyword whose
// fetch fails contributes a warning instead of aborting the run.
func (a *Aggregator) FetchAll(ctx context.Context, keywords []string) ([]models.NewsArticle, []string) {
	var articles []models.NewsArticle
	var warnings []string

	for _, keyword := range keywords {
		fetched, err := a.source.Fetch(ctx, keyword)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("Error fetching articles for keyword '%s': %v", keyword, err))
			continue
		}
		articles = append(articles, fetched...)
	}

	return articles, warnings
}
