package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/thedittmer/research-agent/internal/models"
)

const newsAPIURL = "https://newsapi.org/v2/everything"

// Client fetches trending articles from the NewsAPI everything endpoint.
type Client struct {
	apiKey   string
	language string
	pageSize int
	baseURL  string
	httpc    *http.Client
}

func NewClient(apiKey, language string, pageSize int) *Client {
	return &Client{
		apiKey:   apiKey,
		language: language,
		pageSize: pageSize,
		baseURL:  newsAPIURL,
		httpc:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) Name() string {
	return "newsapi"
}

// SetBaseURL points the client at a different endpoint.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

type everythingResponse struct {
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

// Fetch returns the most popular articles matching the keyword.
func (c *Client) Fetch(ctx context.Context, keyword string) ([]models.NewsArticle, error) {
	params := url.Values{}
	params.Set("q", keyword)
	params.Set("sortBy", "popularity")
	params.Set("apiKey", c.apiKey)
	params.Set("language", c.language)
	params.Set("pageSize", strconv.Itoa(c.pageSize))

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch articles: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("NewsAPI returned status %d", resp.StatusCode)
	}

	var payload everythingResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	articles := make([]models.NewsArticle, 0, len(payload.Articles))
	for _, a := range payload.Articles {
		articles = append(articles, models.NewsArticle{
			Title:       a.Title,
			Description: a.Description,
			Source:      a.Source.Name,
			PublishedAt: a.PublishedAt,
			URL:         a.URL,
		})
	}
	return articles, nil
}
