package result

import "github.com/Wunderbot-Git/alkosto-ai-assistant/internal/domain"

// Source identifies where a search result was produced.
type Source string

const (
	// SourceRemote means the remote index answered the query.
	SourceRemote Source = "remote"
	// SourceFallback means the embedded catalog answered the query.
	SourceFallback Source = "fallback"
)

// Result is a search response.
// Invariants: len(Hits) <= hitsPerPage of the originating request, and
// Total counts all matches before truncation, so Total >= len(Hits).
type Result struct {
	Hits             []domain.Product `json:"hits"`
	Total            int              `json:"total"`
	Page             int              `json:"page"`
	ProcessingTimeMS int              `json:"processingTimeMs"`
	Source           Source           `json:"source"`
	Fallback         bool             `json:"fallback,omitempty"`
	Error            string           `json:"error,omitempty"`
}
