package store

import (
	"time"

	"law-agent-be/pkg/legal"
)

// Turn is one completed query/response exchange within a session.
// Sequence numbers are assigned by the session store and are strictly
// increasing without gaps inside one session.
type Turn struct {
	InteractionID string         `json:"interaction_id"`
	Sequence      int            `json:"sequence"`
	Query         string         `json:"query"`
	Domain        legal.Domain   `json:"domain"`
	Confidence    float64        `json:"confidence"`
	ResponseText  string         `json:"response_text"`
	Source        string         `json:"source"`
	Feedback      legal.Feedback `json:"feedback,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// Session is the server-side conversation context for one user. It is
// owned by the session store; callers hold only a transient copy for
// the duration of one request.
type Session struct {
	ID           string         `json:"id"`
	UserID       string         `json:"user_id"`
	UserType     legal.UserType `json:"user_type"`
	History      []Turn         `json:"history"`
	Satisfaction float64        `json:"satisfaction"` // running score in [-1,1]
	PolicyHints  map[string]any `json:"policy_hints,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	LastAccess   time.Time      `json:"last_access"`
}

// NextSequence returns the sequence number the next turn will get.
func (s *Session) NextSequence() int {
	return len(s.History) + 1
}

// FindTurn returns the turn with the given interaction id, if any.
func (s *Session) FindTurn(interactionID string) (*Turn, bool) {
	for i := range s.History {
		if s.History[i].InteractionID == interactionID {
			return &s.History[i], true
		}
	}
	return nil, false
}

// DomainHistory counts turns by classified domain.
func (s *Session) DomainHistory() map[legal.Domain]int {
	counts := make(map[legal.Domain]int)
	for _, t := range s.History {
		counts[t.Domain]++
	}
	return counts
}
