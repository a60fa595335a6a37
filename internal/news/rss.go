package news

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mmcdole/gofeed"

	"github.com/thedittmer/research-agent/internal/models"
)

const googleNewsURL = "https://news.google.com/rss/search"

// GoogleNews fetches articles from the Google News RSS search feed.
// It needs no API key.
type GoogleNews struct {
	baseURL  string
	pageSize int
	parser   *gofeed.Parser
}

func NewGoogleNews(pageSize int) *GoogleNews {
	return &GoogleNews{
		baseURL:  googleNewsURL,
		pageSize: pageSize,
		parser:   gofeed.NewParser(),
	}
}

func (g *GoogleNews) Name() string {
	return "googlenews"
}

// SetBaseURL points the source at a different feed endpoint.
func (g *GoogleNews) SetBaseURL(url string) {
	g.baseURL = url
}

// Fetch parses the news feed for the keyword and returns up to
// pageSize articles.
func (g *GoogleNews) Fetch(ctx context.Context, keyword string) ([]models.NewsArticle, error) {
	feedURL := fmt.Sprintf("%s?q=%s&hl=en-US&gl=US&ceid=US:en", g.baseURL, url.QueryEscape(keyword))

	feed, err := g.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("error parsing feed: %w", err)
	}

	articles := make([]models.NewsArticle, 0, g.pageSize)
	for _, item := range feed.Items {
		if len(articles) >= g.pageSize {
			break
		}
		articles = append(articles, models.NewsArticle{
			Title:       item.Title,
			Description: item.Description,
			Source:      feed.Title,
			PublishedAt: item.Published,
			URL:         item.Link,
		})
	}
	return articles, nil
}
