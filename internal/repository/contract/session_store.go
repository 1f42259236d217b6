package contract

import (
	"context"
	"errors"

	"law-agent-be/pkg/legal"
	"law-agent-be/pkg/store"
)

// ErrSessionNotFound is returned when a session id is unknown or the
// session has expired.
var ErrSessionNotFound = errors.New("session not found")

// ErrInteractionNotFound is returned when feedback references an
// interaction that never happened in the session.
var ErrInteractionNotFound = errors.New("interaction not found in session")

// ISessionStore owns all session records. Implementations must
// serialize mutations per session so turn sequence numbers are
// strictly increasing without gaps, and must keep functioning via an
// in-process fallback when the external cache is unreachable.
type ISessionStore interface {
	Create(ctx context.Context, userID string, userType legal.UserType) (*store.Session, error)
	Get(ctx context.Context, sessionID string) (*store.Session, error)

	// AppendTurn assigns the turn's sequence number and persists it.
	// The returned turn carries the assigned sequence.
	AppendTurn(ctx context.Context, sessionID string, turn store.Turn) (store.Turn, error)

	// RecordFeedback attaches feedback to an existing turn and updates
	// the session's satisfaction score. Returns the updated session.
	RecordFeedback(ctx context.Context, sessionID, interactionID string, fb legal.Feedback) (*store.Session, error)

	// Touch refreshes the session's TTL and last-access time.
	Touch(ctx context.Context, sessionID string) error
}
