// Package content generates content ideas from keywords and derives
// platform-specific social posts from them.
package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/thedittmer/research-agent/internal/models"
)

// FailurePlaceholder stands in for the idea markdown when generation fails.
const FailurePlaceholder = "Failed to generate content ideas."

// Completer is the slice of the LLM client the generator needs.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Generator produces content ideas for a set of keywords.
type Generator struct {
	llm Completer
}

func NewGenerator(llm Completer) *Generator {
	return &Generator{llm: llm}
}

// Generate asks the LLM for five content ideas and parses them. The
// raw markdown is returned alongside the parsed ideas so it can still
// be shown when parsing finds nothing usable.
func (g *Generator) Generate(ctx context.Context, keywords []string) (string, []models.ContentIdea, error) {
	prompt := fmt.Sprintf(`Given these keywords: %s
Generate 5 content ideas that would be interesting and engaging.
For each idea, provide:
1. A catchy title
2. A brief description
3. At least 3 key points to cover

Format the output in markdown.`, strings.Join(keywords, ", "))

	raw, err := g.llm.Complete(ctx, prompt)
	if err != nil {
		return "", nil, fmt.Errorf("content generation failed: %w", err)
	}

	return raw, ParseIdeas(raw), nil
}

// ParseIdeas splits idea markdown into structured ideas. Ideas are
// separated by blank lines; within a block the first line is the
// title, the second the description, and up to three following lines
// the key points. Blocks with fewer than two lines are skipped.
func ParseIdeas(raw string) []models.ContentIdea {
	ideas := make([]models.ContentIdea, 0)
	for _, block := range strings.Split(raw, "\n\n") {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) < 2 {
			continue
		}

		end := len(lines)
		if end > 5 {
			end = 5
		}
		ideas = append(ideas, models.ContentIdea{
			Title:       lines[0],
			Description: lines[1],
			KeyPoints:   lines[2:end],
		})
	}
	return ideas
}
