// Package pipeline runs the research workflow: keyword search, content
// idea generation, then news aggregation, strictly in that order.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/flyt"

	"github.com/thedittmer/research-agent/internal/content"
	"github.com/thedittmer/research-agent/internal/models"
)

// ErrNoKeywords is returned when a run starts without any keywords.
var ErrNoKeywords = errors.New("please enter at least one keyword")

const reportKey = "report"

// Searcher researches one keyword.
type Searcher interface {
	Search(ctx context.Context, keyword string, maxResults int) ([]models.SearchResult, error)
}

// IdeaGenerator produces idea markdown and parsed ideas for keywords.
type IdeaGenerator interface {
	Generate(ctx context.Context, keywords []string) (string, []models.ContentIdea, error)
}

// NewsFetcher gathers articles for keywords, reporting per-keyword
// failures as warnings.
type NewsFetcher interface {
	FetchAll(ctx context.Context, keywords []string) ([]models.NewsArticle, []string)
}

// StatusFunc receives progress messages as a run advances.
type StatusFunc func(msg string)

// Pipeline wires the research stages into a linear flow.
type Pipeline struct {
	searcher Searcher
	ideas    IdeaGenerator
	news     NewsFetcher
	status   StatusFunc
}

func New(searcher Searcher, ideas IdeaGenerator, news NewsFetcher) *Pipeline {
	return &Pipeline{
		searcher: searcher,
		ideas:    ideas,
		news:     news,
		status:   func(string) {},
	}
}

// OnStatus registers a callback for progress messages.
func (p *Pipeline) OnStatus(fn StatusFunc) {
	if fn != nil {
		p.status = fn
	}
}

// Run executes the full research flow and returns the report. Stage
// failures are absorbed into the report's warnings; only an empty
// keyword list or a workflow fault abort the run. The finished report
// is recorded on the session here, not by the caller.
func (p *Pipeline) Run(ctx context.Context, session *models.Session, keywords []string, maxResults int) (*models.ResearchReport, error) {
	if len(keywords) == 0 {
		return nil, ErrNoKeywords
	}

	report := models.NewResearchReport(keywords, maxResults)

	shared := flyt.NewSharedStore()
	shared.Set(reportKey, report)

	searchNode := p.newSearchNode()
	ideasNode := p.newIdeasNode()
	newsNode := p.newNewsNode()

	flow := flyt.NewFlow(searchNode)
	flow.Connect(searchNode, flyt.DefaultAction, ideasNode)
	flow.Connect(ideasNode, flyt.DefaultAction, newsNode)

	if err := flow.Run(ctx, shared); err != nil {
		return nil, fmt.Errorf("research flow failed: %w", err)
	}

	if session != nil {
		session.AddReport(report)
	}
	return report, nil
}

// newSearchNode researches every keyword in order. A failed keyword
// becomes a warning and the remaining keywords still run.
func (p *Pipeline) newSearchNode() flyt.Node {
	return flyt.NewNode(
		flyt.WithPrepFunc(prepReport),
		flyt.WithExecFunc(func(ctx context.Context, prepResult any) (any, error) {
			report := prepResult.(*models.ResearchReport)

			for _, keyword := range report.Keywords {
				p.status(fmt.Sprintf("Searching for: %s", keyword))

				results, err := p.searcher.Search(ctx, keyword, report.MaxResults)
				if err != nil {
					report.AddWarning(fmt.Sprintf("Search failed for '%s': %v", keyword, err))
					continue
				}
				report.SearchResults[keyword] = results
			}
			return report, nil
		}),
		flyt.WithPostFunc(donePost),
	)
}

// newIdeasNode generates content ideas for the whole keyword set and
// derives the per-platform posts from the parsed ideas. On failure the
// report keeps a placeholder and empty post lists.
func (p *Pipeline) newIdeasNode() flyt.Node {
	return flyt.NewNode(
		flyt.WithPrepFunc(prepReport),
		flyt.WithExecFunc(func(ctx context.Context, prepResult any) (any, error) {
			report := prepResult.(*models.ResearchReport)
			p.status("Generating content ideas...")

			raw, ideas, err := p.ideas.Generate(ctx, report.Keywords)
			if err != nil {
				report.AddWarning(err.Error())
				report.RawIdeas = content.FailurePlaceholder
				report.Posts = content.BuildPosts(nil)
				return report, nil
			}

			report.RawIdeas = raw
			report.Ideas = ideas
			report.Posts = content.BuildPosts(ideas)
			return report, nil
		}),
		flyt.WithPostFunc(donePost),
	)
}

// newNewsNode gathers trending articles for every keyword.
func (p *Pipeline) newNewsNode() flyt.Node {
	return flyt.NewNode(
		flyt.WithPrepFunc(prepReport),
		flyt.WithExecFunc(func(ctx context.Context, prepResult any) (any, error) {
			report := prepResult.(*models.ResearchReport)
			p.status("Fetching news articles...")

			articles, warnings := p.news.FetchAll(ctx, report.Keywords)
			report.News = articles
			for _, w := range warnings {
				report.AddWarning(w)
			}
			return report, nil
		}),
		flyt.WithPostFunc(donePost),
	)
}

func prepReport(ctx context.Context, shared *flyt.SharedStore) (any, error) {
	report, ok := shared.Get(reportKey)
	if !ok {
		return nil, fmt.Errorf("no report in shared store")
	}
	return report, nil
}

func donePost(ctx context.Context, shared *flyt.SharedStore, prepResult, execResult any) (flyt.Action, error) {
	return flyt.DefaultAction, nil
}
