package models

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"

	maxHistory = 50 // Maximum chat messages to keep per session
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Session carries the user's settings and chat history across menu actions.
type Session struct {
	SearchProvider string
	Model          string
	NewsSource     string
	History        []ChatMessage
	Reports        []*ResearchReport
}

func NewSession(searchProvider, model, newsSource string) *Session {
	return &Session{
		SearchProvider: searchProvider,
		Model:          model,
		NewsSource:     newsSource,
		History:        make([]ChatMessage, 0),
		Reports:        make([]*ResearchReport, 0),
	}
}

// Append adds a message to the chat history, trimming the oldest
// entries once the history grows past its cap.
func (s *Session) Append(role, content string) {
	s.History = append(s.History, ChatMessage{Role: role, Content: content})
	if len(s.History) > maxHistory {
		s.History = s.History[len(s.History)-maxHistory:]
	}
}

// AddReport records a finished research run.
func (s *Session) AddReport(r *ResearchReport) {
	s.Reports = append(s.Reports, r)
}

// LatestReport returns the most recent research run, or nil if none exist.
func (s *Session) LatestReport() *ResearchReport {
	if len(s.Reports) == 0 {
		return nil
	}
	return s.Reports[len(s.Reports)-1]
}
