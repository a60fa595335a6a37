package ui

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/thedittmer/research-agent/internal/models"
)

// Renderer prints research output styled for the terminal.
type Renderer struct {
	width int
}

func NewRenderer() *Renderer {
	return &Renderer{width: terminalWidth()}
}

// SetWidth overrides the detected terminal width.
func (r *Renderer) SetWidth(w int) {
	if w > 0 {
		r.width = w
	}
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	if width > 100 {
		width = 100
	}
	return width
}

// Banner renders the application header shown above the menu.
func Banner() string {
	return HeaderStyle.Render(" Research Agent ") + "\n" +
		DimStyle.Render("Enter keywords to search for information and news, and generate content ideas.")
}

// RenderReport renders every section of a research run in the order
// the app presents them: search results, content ideas, news articles,
// then one section of posts per platform, then any warnings.
func (r *Renderer) RenderReport(report *models.ResearchReport) string {
	var b strings.Builder

	b.WriteString(r.renderRunHeader(report))
	b.WriteString(r.renderSearchResults(report))
	b.WriteString(r.renderIdeas(report))
	b.WriteString(r.renderNews(report))
	for _, platform := range models.Platforms() {
		b.WriteString(r.renderPosts(platform, report.Posts[platform]))
	}
	b.WriteString(r.renderWarnings(report.Warnings))

	return b.String()
}

func (r *Renderer) renderRunHeader(report *models.ResearchReport) string {
	var b strings.Builder

	chips := make([]string, 0, len(report.Keywords))
	for _, keyword := range report.Keywords {
		chips = append(chips, KeyStyle.Render(keyword))
	}
	b.WriteString(strings.Join(chips, " ") + "\n")
	b.WriteString(DimStyle.Render(fmt.Sprintf("Run %s generated %s",
		report.ID, report.CreatedAt.Format("2006-01-02 15:04:05"))) + "\n\n")

	return b.String()
}

func (r *Renderer) renderSearchResults(report *models.ResearchReport) string {
	var b strings.Builder
	b.WriteString(SectionStyle.Render("Search Results") + "\n\n")

	idx := 0
	for _, keyword := range report.Keywords {
		for _, result := range report.SearchResults[keyword] {
			idx++
			b.WriteString(HighlightStyle.Render(fmt.Sprintf("Result %d", idx)) + "\n")
			if result.Title != "" && result.Title != "No title" {
				b.WriteString(TitleStyle.Render(result.Title) + "\n")
			}
			if result.Link != "" {
				b.WriteString("🔗 " + LinkStyle.Render(result.Link) + "\n")
			}
			if result.Snippet != "" {
				b.WriteString(r.wrap(result.Snippet) + "\n")
			}
			b.WriteString(r.divider() + "\n")
		}
	}

	if idx == 0 {
		b.WriteString(WarningStyle.Render("No results found.") + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

func (r *Renderer) renderIdeas(report *models.ResearchReport) string {
	var b strings.Builder
	b.WriteString(SectionStyle.Render("Content Ideas") + "\n\n")

	if strings.TrimSpace(report.RawIdeas) == "" {
		b.WriteString(DimStyle.Render("No content ideas generated.") + "\n\n")
		return b.String()
	}

	b.WriteString(r.wrap(report.RawIdeas) + "\n\n")
	return b.String()
}

func (r *Renderer) renderNews(report *models.ResearchReport) string {
	var b strings.Builder
	b.WriteString(SectionStyle.Render("News Articles") + "\n\n")

	if len(report.News) == 0 {
		b.WriteString(WarningStyle.Render("No news articles found.") + "\n\n")
		return b.String()
	}

	for idx, article := range report.News {
		title := article.Title
		if title == "" {
			title = "No title"
		}
		description := article.Description
		if description == "" {
			description = "No description"
		}
		source := article.Source
		if source == "" {
			source = "Unknown Source"
		}
		published := article.PublishedAt
		if published == "" {
			published = "No date provided"
		}

		b.WriteString(HighlightStyle.Render(fmt.Sprintf("News Article %d", idx+1)) + "\n")
		b.WriteString(TitleStyle.Render(title) + "\n")
		b.WriteString(r.wrap(description) + "\n")
		b.WriteString(SourceStyle.Render(source) + " " + DateStyle.Render(published) + "\n")
		if article.URL != "" {
			b.WriteString("🔗 " + LinkStyle.Render(article.URL) + "\n")
		}
		b.WriteString(r.divider() + "\n")
	}

	b.WriteString("\n")
	return b.String()
}

func (r *Renderer) renderPosts(platform models.Platform, posts []models.PlatformPost) string {
	var b strings.Builder
	b.WriteString(SectionStyle.Render(platform.DisplayName()+" Posts") + "\n\n")

	if len(posts) == 0 {
		b.WriteString(DimStyle.Render("No posts generated.") + "\n\n")
		return b.String()
	}

	for i, post := range posts {
		b.WriteString(HighlightStyle.Render(fmt.Sprintf("%s Post %d", platform.DisplayName(), i+1)) + "\n")
		b.WriteString(BoxStyle.Width(r.width).Render(post.Body) + "\n\n")
	}
	return b.String()
}

func (r *Renderer) renderWarnings(warnings []string) string {
	if len(warnings) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(SectionStyle.Render("Warnings") + "\n\n")
	for _, warning := range warnings {
		b.WriteString(WarningStyle.Render("! ") + r.wrap(warning) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

// RenderChatMessage styles one chat turn.
func (r *Renderer) RenderChatMessage(msg models.ChatMessage) string {
	label := CommandStyle.Render("You")
	if msg.Role == models.RoleAssistant {
		label = SourceStyle.Render("Agent")
	}
	return label + "\n" + r.wrap(msg.Content) + "\n"
}

func (r *Renderer) wrap(text string) string {
	return TextStyle.Width(r.width).Render(text)
}

func (r *Renderer) divider() string {
	return DimStyle.Render(strings.Repeat("─", r.width))
}
