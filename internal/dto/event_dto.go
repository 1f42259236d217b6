package dto

import "law-agent-be/pkg/legal"

// FeedbackEventMessage is the wire form of a feedback outcome carried
// over the event bus from the query surface to the policy consumer.
type FeedbackEventMessage struct {
	SessionID     string         `json:"session_id"`
	InteractionID string         `json:"interaction_id"`
	Sequence      int            `json:"sequence"`
	Domain        legal.Domain   `json:"domain"`
	Confidence    float64        `json:"confidence"`
	Feedback      legal.Feedback `json:"feedback"`
	TimeSpent     float64        `json:"time_spent,omitempty"`
}
