package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Platform identifies a social network a post is written for.
type Platform string

const (
	PlatformLinkedIn  Platform = "linkedin"
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
)

// Platforms lists every supported platform in presentation order.
func Platforms() []Platform {
	return []Platform{PlatformLinkedIn, PlatformInstagram, PlatformFacebook}
}

// DisplayName returns the platform's human readable name.
func (p Platform) DisplayName() string {
	switch p {
	case PlatformLinkedIn:
		return "LinkedIn"
	case PlatformInstagram:
		return "Instagram"
	case PlatformFacebook:
		return "Facebook"
	}
	return string(p)
}

type SearchResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

type ContentIdea struct {
	Title       string
	Description string
	KeyPoints   []string
}

type PlatformPost struct {
	Platform Platform
	Body     string
}

type NewsArticle struct {
	Title       string
	Description string
	Source      string
	PublishedAt string
	URL         string
}

// ResearchReport holds everything one pipeline run produced.
type ResearchReport struct {
	ID            string
	CreatedAt     time.Time
	Keywords      []string
	MaxResults    int
	SearchResults map[string][]SearchResult
	RawIdeas      string
	Ideas         []ContentIdea
	Posts         map[Platform][]PlatformPost
	News          []NewsArticle
	Warnings      []string
}

func NewResearchReport(keywords []string, maxResults int) *ResearchReport {
	return &ResearchReport{
		ID:            uuid.New().String(),
		CreatedAt:     time.Now(),
		Keywords:      keywords,
		MaxResults:    maxResults,
		SearchResults: make(map[string][]SearchResult),
		Posts:         make(map[Platform][]PlatformPost),
	}
}

// AddWarning records a non-fatal problem encountered during a run.
func (r *ResearchReport) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// ParseKeywords splits raw multiline input into cleaned keywords,
// one per line, dropping blanks.
func ParseKeywords(text string) []string {
	keywords := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		kw := strings.TrimSpace(line)
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}
