package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeywords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "one per line",
			input: "golang\nconcurrency\nchannels",
			want:  []string{"golang", "concurrency", "channels"},
		},
		{
			name:  "trims surrounding whitespace",
			input: "  golang  \n\tconcurrency\t",
			want:  []string{"golang", "concurrency"},
		},
		{
			name:  "drops blank lines",
			input: "golang\n\n\nchannels\n",
			want:  []string{"golang", "channels"},
		},
		{
			name:  "empty input",
			input: "",
			want:  []string{},
		},
		{
			name:  "whitespace only",
			input: "   \n\t\n",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseKeywords(tt.input))
		})
	}
}

func TestNewResearchReport(t *testing.T) {
	report := NewResearchReport([]string{"golang"}, 5)

	require.NotNil(t, report)
	assert.NotEmpty(t, report.ID)
	assert.False(t, report.CreatedAt.IsZero())
	assert.Equal(t, []string{"golang"}, report.Keywords)
	assert.Equal(t, 5, report.MaxResults)
	assert.NotNil(t, report.SearchResults)
	assert.NotNil(t, report.Posts)
	assert.Empty(t, report.Warnings)
}

func TestReportIDsAreUnique(t *testing.T) {
	a := NewResearchReport(nil, 5)
	b := NewResearchReport(nil, 5)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestAddWarning(t *testing.T) {
	report := NewResearchReport(nil, 5)
	report.AddWarning("news fetch failed")
	report.AddWarning("search failed for keyword")

	assert.Equal(t, []string{"news fetch failed", "search failed for keyword"}, report.Warnings)
}

func TestSessionAppend(t *testing.T) {
	session := NewSession("duckduckgo", "llama-3.3-70b-versatile", "newsapi")
	session.Append(RoleUser, "hello")
	session.Append(RoleAssistant, "hi there")

	require.Len(t, session.History, 2)
	assert.Equal(t, RoleUser, session.History[0].Role)
	assert.Equal(t, "hello", session.History[0].Content)
	assert.Equal(t, RoleAssistant, session.History[1].Role)
}

func TestSessionAppendTrimsHistory(t *testing.T) {
	session := NewSession("duckduckgo", "llama-3.3-70b-versatile", "newsapi")
	for i := 0; i < maxHistory+10; i++ {
		session.Append(RoleUser, fmt.Sprintf("message %d", i))
	}

	require.Len(t, session.History, maxHistory)
	assert.Equal(t, fmt.Sprintf("message %d", 10), session.History[0].Content)
}

func TestLatestReport(t *testing.T) {
	session := NewSession("duckduckgo", "llama-3.3-70b-versatile", "newsapi")
	assert.Nil(t, session.LatestReport())

	first := NewResearchReport([]string{"a"}, 5)
	second := NewResearchReport([]string{"b"}, 5)
	session.AddReport(first)
	session.AddReport(second)

	assert.Equal(t, second, session.LatestReport())
}

func TestPlatforms(t *testing.T) {
	assert.Equal(t, []Platform{PlatformLinkedIn, PlatformInstagram, PlatformFacebook}, Platforms())
}
