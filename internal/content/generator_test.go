package content

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thedittmer/research-agent/internal/models"
)

type fakeCompleter struct {
	reply     string
	err       error
	gotPrompt string
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	f.gotPrompt = prompt
	return f.reply, f.err
}

const sampleIdeas = `1. The Future of Go Concurrency
A look at where goroutine scheduling is heading.
- Scheduler internals
- Preemption changes
- Real-world benchmarks

2. Debugging Production Services
War stories from on-call rotations.
- Structured logging
- Tracing setups
- Postmortem culture`

func TestParseIdeas(t *testing.T) {
	ideas := ParseIdeas(sampleIdeas)
	require.Len(t, ideas, 2)

	assert.Equal(t, "1. The Future of Go Concurrency", ideas[0].Title)
	assert.Equal(t, "A look at where goroutine scheduling is heading.", ideas[0].Description)
	assert.Equal(t, []string{"- Scheduler internals", "- Preemption changes", "- Real-world benchmarks"}, ideas[0].KeyPoints)

	assert.Equal(t, "2. Debugging Production Services", ideas[1].Title)
	assert.Equal(t, []string{"- Structured logging", "- Tracing setups", "- Postmortem culture"}, ideas[1].KeyPoints)
}

func TestParseIdeasSkipsShortBlocks(t *testing.T) {
	raw := "Just a heading\n\nA Real Idea\nWith a description.\n- point one\n\n# Content Ideas"
	ideas := ParseIdeas(raw)

	require.Len(t, ideas, 1)
	assert.Equal(t, "A Real Idea", ideas[0].Title)
	assert.Equal(t, "With a description.", ideas[0].Description)
	assert.Equal(t, []string{"- point one"}, ideas[0].KeyPoints)
}

func TestParseIdeasCapsKeyPoints(t *testing.T) {
	raw := "Title\nDescription\np1\np2\np3\np4\np5"
	ideas := ParseIdeas(raw)

	require.Len(t, ideas, 1)
	assert.Equal(t, []string{"p1", "p2", "p3"}, ideas[0].KeyPoints)
}

func TestParseIdeasEmptyInput(t *testing.T) {
	assert.Empty(t, ParseIdeas(""))
	assert.Empty(t, ParseIdeas("\n\n\n\n"))
}

func TestParseIdeasTrimsBlocks(t *testing.T) {
	ideas := ParseIdeas("  Padded Title\nDescription line.  \n\n")

	require.Len(t, ideas, 1)
	assert.Equal(t, "Padded Title", ideas[0].Title)
	assert.Equal(t, "Description line.", ideas[0].Description)
}

func TestGenerate(t *testing.T) {
	llm := &fakeCompleter{reply: sampleIdeas}
	gen := NewGenerator(llm)

	raw, ideas, err := gen.Generate(context.Background(), []string{"golang", "debugging"})
	require.NoError(t, err)

	assert.Equal(t, sampleIdeas, raw)
	assert.Len(t, ideas, 2)
	assert.Contains(t, llm.gotPrompt, "Given these keywords: golang, debugging")
	assert.Contains(t, llm.gotPrompt, "Generate 5 content ideas")
}

func TestGenerateError(t *testing.T) {
	gen := NewGenerator(&fakeCompleter{err: fmt.Errorf("model overloaded")})

	_, _, err := gen.Generate(context.Background(), []string{"golang"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content generation failed")
	assert.Contains(t, err.Error(), "model overloaded")
}

func TestFormatPostLinkedIn(t *testing.T) {
	idea := models.ContentIdea{
		Title:       "Go Concurrency Patterns",
		Description: "A practical tour of channels and goroutines.",
		KeyPoints:   []string{"- Fan-out", "- Pipelines", "- Cancellation"},
	}

	post := FormatPost(models.PlatformLinkedIn, idea)
	assert.Equal(t, models.PlatformLinkedIn, post.Platform)

	want := "🚀 *Go Concurrency Patterns* - Grab attention with this hook!\n\n" +
		"🔍 Let's dive deeper into this topic!\n\n" +
		"A practical tour of channels and goroutines.\n\n" +
		"*Key Points to Cover:*\n- Fan-out\n- Pipelines\n- Cancellation\n\n" +
		"This is where you expand on the idea and provide valuable insights.\n\n" +
		"👉 What are your thoughts? Share in the comments!\n\n" +
		"#ContentIdeas #LinkedIn #Engagement"
	assert.Equal(t, want, post.Body)
}

func TestFormatPostFacebook(t *testing.T) {
	idea := models.ContentIdea{
		Title:       "Go Concurrency Patterns",
		Description: "A practical tour of channels and goroutines.",
		KeyPoints:   []string{"- Fan-out"},
	}

	post := FormatPost(models.PlatformFacebook, idea)

	want := "🌟 *Go Concurrency Patterns*\n\n" +
		"A practical tour of channels and goroutines.\n\n" +
		"*Key Points:*\n- Fan-out\n\n" +
		"💬 We want to hear from you! What do you think about this topic? Share your thoughts in the comments below!\n\n" +
		"#Facebook #Community #Engagement"
	assert.Equal(t, want, post.Body)
}

func TestFormatPostInstagram(t *testing.T) {
	idea := models.ContentIdea{
		Title:       "Go Concurrency Patterns",
		Description: "A practical tour of channels and goroutines.",
		KeyPoints:   []string{"- Fan-out"},
	}

	post := FormatPost(models.PlatformInstagram, idea)

	want := "✨ *Go Concurrency Patterns*\n\n" +
		"A practical tour of channels and goroutines.\n\n" +
		"*Key Highlights:*\n- Fan-out\n\n" +
		"📸 Don't forget to tag us in your posts! #Instagram #ContentIdeas #Inspiration"
	assert.Equal(t, want, post.Body)
}

func TestFormatPostIsPure(t *testing.T) {
	idea := models.ContentIdea{
		Title:       "Stable",
		Description: "Unchanged.",
		KeyPoints:   []string{"- a", "- b"},
	}

	first := FormatPost(models.PlatformFacebook, idea)
	second := FormatPost(models.PlatformFacebook, idea)
	assert.Equal(t, first, second)

	FormatPost(models.PlatformLinkedIn, idea)
	FormatPost(models.PlatformInstagram, idea)
	assert.Equal(t, "Stable", idea.Title)
	assert.Equal(t, "Unchanged.", idea.Description)
	assert.Equal(t, []string{"- a", "- b"}, idea.KeyPoints)
}

func TestBuildPosts(t *testing.T) {
	ideas := ParseIdeas(sampleIdeas)
	posts := BuildPosts(ideas)

	require.Len(t, posts, 3)
	for _, platform := range models.Platforms() {
		assert.Len(t, posts[platform], len(ideas), "platform %s should have one post per idea", platform)
	}

	// Every platform renders from the same parsed ideas.
	assert.Contains(t, posts[models.PlatformInstagram][0].Body, "The Future of Go Concurrency")
	assert.Contains(t, posts[models.PlatformLinkedIn][0].Body, "The Future of Go Concurrency")
	assert.Contains(t, posts[models.PlatformFacebook][1].Body, "Debugging Production Services")
}

func TestBuildPostsNoIdeas(t *testing.T) {
	posts := BuildPosts(nil)

	require.Len(t, posts, 3)
	for _, platform := range models.Platforms() {
		assert.Empty(t, posts[platform])
	}
}
