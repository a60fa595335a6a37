package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const serperURL = "https://google.serper.dev/search"

// Serper queries the Serper.dev Google Search API.
type Serper struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
}

func NewSerper(apiKey string) *Serper {
	return &Serper{
		apiKey:  apiKey,
		baseURL: serperURL,
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *Serper) Name() string {
	return "serper"
}

// SetBaseURL points the provider at a different endpoint.
func (p *Serper) SetBaseURL(url string) {
	p.baseURL = url
}

type serperResponse struct {
	Organic []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"organic"`
}

// Search queries Serper and renders the organic results as text blocks.
func (p *Serper) Search(ctx context.Context, query string) (string, error) {
	if p.apiKey == "" {
		return "", fmt.Errorf("Serper API key is required")
	}

	reqBody, err := json.Marshal(map[string]any{
		"q":   query,
		"num": maxFetched,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.baseURL, bytes.NewBuffer(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", p.apiKey)

	resp, err := p.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to search Serper: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Serper API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var searchResp serperResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	var blocks []string
	for i, result := range searchResp.Organic {
		if i >= maxFetched {
			break
		}
		blocks = append(blocks, fmt.Sprintf("Title: %s\nURL: %s\nSnippet: %s",
			result.Title, result.Link, result.Snippet))
	}

	if len(blocks) == 0 {
		return "No results found", nil
	}
	return strings.Join(blocks, "\n\n"), nil
}
