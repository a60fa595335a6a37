package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	duckDuckGoURL = "https://html.duckduckgo.com/html/"

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// maxFetched caps how many results are scraped per query before
	// the LLM sees them.
	maxFetched = 10
)

// DuckDuckGo scrapes the DuckDuckGo HTML endpoint. It needs no API key.
type DuckDuckGo struct {
	baseURL string
	httpc   *http.Client
}

func NewDuckDuckGo() *DuckDuckGo {
	return &DuckDuckGo{
		baseURL: duckDuckGoURL,
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

func (p *DuckDuckGo) Name() string {
	return "duckduckgo"
}

// SetBaseURL points the provider at a different endpoint.
func (p *DuckDuckGo) SetBaseURL(url string) {
	p.baseURL = url
}

// Search fetches the results page for query and renders the scraped
// results as text blocks.
func (p *DuckDuckGo) Search(ctx context.Context, query string) (string, error) {
	searchURL := fmt.Sprintf("%s?q=%s", p.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, "GET", searchURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := p.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("DuckDuckGo search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("DuckDuckGo returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse results page: %w", err)
	}

	var blocks []string
	doc.Find("div.result").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if len(blocks) >= maxFetched {
			return false
		}
		anchor := s.Find("a.result__a")
		title := strings.TrimSpace(anchor.Text())
		snippet := strings.TrimSpace(s.Find("a.result__snippet").Text())
		if title == "" && snippet == "" {
			return true
		}
		href, _ := anchor.Attr("href")
		blocks = append(blocks, fmt.Sprintf("Title: %s\nURL: %s\nSnippet: %s",
			title, unwrapRedirect(href), snippet))
		return true
	})

	if len(blocks) == 0 {
		return "No results found", nil
	}
	return strings.Join(blocks, "\n\n"), nil
}

// unwrapRedirect resolves DuckDuckGo's /l/?uddg=... redirect links to
// their destination URL.
func unwrapRedirect(href string) string {
	if href == "" {
		return ""
	}
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	if strings.HasPrefix(href, "//") {
		return "https:" + href
	}
	return href
}
