package dto

import "law-agent-be/pkg/legal"

type QueryRequest struct {
	SessionID string         `json:"session_id" validate:"required"`
	Query     string         `json:"query" validate:"required,min=1,max=4000"`
	UserType  legal.UserType `json:"user_type,omitempty"`
}

type ResponseDTO struct {
	Text          string   `json:"text"`
	Sections      []string `json:"sections"`
	NextSteps     []string `json:"next_steps,omitempty"`
	Timeline      string   `json:"timeline,omitempty"`
	EstimatedCost string   `json:"estimated_cost,omitempty"`
	SuccessRate   float64  `json:"success_rate,omitempty"`
	Source        string   `json:"source"`
}

type QueryResponse struct {
	InteractionID string            `json:"interaction_id"`
	Sequence      int               `json:"sequence"`
	Domain        legal.Domain      `json:"domain"`
	Confidence    float64           `json:"confidence"`
	Response      ResponseDTO       `json:"response"`
	GlossaryTerms []GlossaryTermDTO `json:"glossary_terms"`
}

type FeedbackRequest struct {
	SessionID     string         `json:"session_id" validate:"required"`
	InteractionID string         `json:"interaction_id" validate:"required"`
	Feedback      legal.Feedback `json:"feedback" validate:"required"`
	TimeSpent     float64        `json:"time_spent,omitempty"`
}

type FeedbackResponse struct {
	Status              string  `json:"status"`
	Reward              float64 `json:"reward"`
	UpdatedSatisfaction float64 `json:"updated_satisfaction"`
}
