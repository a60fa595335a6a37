// Package search turns keywords into structured search results by
// combining a web search provider with an LLM that extracts the
// relevant findings.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/thedittmer/research-agent/internal/models"
)

const (
	// defaultTitle fills in results the model returned without a title.
	defaultTitle = "No title"

	// textResultTitle labels the single result built from a free-text reply.
	textResultTitle = "Search Result"
)

// Provider defines the interface for web search backends. Search
// returns raw findings as text for the LLM to work from.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string) (string, error)
}

// Completer is the slice of the LLM client the agent needs.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Agent researches a single keyword: it fetches raw web findings and
// asks the LLM to distill them into structured results.
type Agent struct {
	llm      Completer
	provider Provider
}

func NewAgent(llm Completer, provider Provider) *Agent {
	return &Agent{
		llm:      llm,
		provider: provider,
	}
}

// ProviderName reports which search backend the agent is using.
func (a *Agent) ProviderName() string {
	return a.provider.Name()
}

// Search researches one keyword and returns at most maxResults
// structured results.
func (a *Agent) Search(ctx context.Context, keyword string, maxResults int) ([]models.SearchResult, error) {
	findings, err := a.provider.Search(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("%s search failed: %w", a.provider.Name(), err)
	}

	prompt := fmt.Sprintf(`You are a research assistant that can search the web.
Below are raw web search findings for the topic "%s".

%s

Extract up to %d of the most relevant results as a JSON array of objects,
each with the keys "title", "link" and "snippet".
Respond with ONLY the JSON array, no other text.`, keyword, findings, maxResults)

	reply, err := a.llm.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("LLM call failed: %w", err)
	}

	results := parseResponse(reply)
	if maxResults > 0 && len(results) > maxResults {
		results = results[:maxResults]
	}
	return results, nil
}

// agentResult is one entry of the JSON the LLM is asked to produce.
type agentResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// parseResponse normalizes an LLM reply into search results. The reply
// arrives in one of three shapes: a JSON object holding a "results"
// array, a bare JSON array, or free text. Free text becomes a single
// synthetic result so a run never loses the model's answer.
func parseResponse(reply string) []models.SearchResult {
	payload := stripFences(reply)

	switch {
	case strings.HasPrefix(payload, "{"):
		var obj struct {
			Results []agentResult `json:"results"`
		}
		if err := json.Unmarshal([]byte(payload), &obj); err == nil {
			return normalizeAll(obj.Results)
		}
	case strings.HasPrefix(payload, "["):
		var list []agentResult
		if err := json.Unmarshal([]byte(payload), &list); err == nil {
			return normalizeAll(list)
		}
	}

	return []models.SearchResult{{
		Title:   textResultTitle,
		Link:    "",
		Snippet: payload,
	}}
}

func normalizeAll(items []agentResult) []models.SearchResult {
	results := make([]models.SearchResult, 0, len(items))
	for _, item := range items {
		results = append(results, normalize(item))
	}
	return results
}

func normalize(item agentResult) models.SearchResult {
	title := item.Title
	if strings.TrimSpace(title) == "" {
		title = defaultTitle
	}
	return models.SearchResult{
		Title:   title,
		Link:    item.Link,
		Snippet: item.Snippet,
	}
}

// stripFences extracts the payload from a fenced code block, if present.
func stripFences(response string) string {
	if strings.Contains(response, "```") {
		parts := strings.SplitN(response, "```", 3)
		if len(parts) >= 2 {
			body := strings.TrimPrefix(parts[1], "json")
			return strings.TrimSpace(body)
		}
	}
	return strings.TrimSpace(response)
}
