package dto

import (
	"time"

	"law-agent-be/pkg/legal"
)

type CreateSessionRequest struct {
	UserID   string         `json:"user_id" validate:"required"`
	UserType legal.UserType `json:"user_type" validate:"required"`
}

type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	Message   string `json:"message"`
}

type SessionSummaryResponse struct {
	SessionID     string         `json:"session_id"`
	UserID        string         `json:"user_id"`
	UserType      legal.UserType `json:"user_type"`
	TurnCount     int            `json:"turn_count"`
	DomainHistory map[string]int `json:"domain_history"`
	Satisfaction  float64        `json:"satisfaction"`
	CreatedAt     time.Time      `json:"created_at"`
	LastAccess    time.Time      `json:"last_access"`
}
