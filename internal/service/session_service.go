package service

import (
	"context"

	"law-agent-be/internal/dto"
	"law-agent-be/internal/pkg/logger"
	"law-agent-be/internal/repository/contract"
)

type ISessionService interface {
	CreateSession(ctx context.Context, request *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error)
	GetSessionSummary(ctx context.Context, sessionID string) (*dto.SessionSummaryResponse, error)
}

type sessionService struct {
	sessions contract.ISessionStore
	log      logger.ILogger
}

func NewSessionService(sessions contract.ISessionStore, log logger.ILogger) ISessionService {
	return &sessionService{
		sessions: sessions,
		log:      log,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, request *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error) {
	session, err := s.sessions.Create(ctx, request.UserID, request.UserType)
	if err != nil {
		return nil, err
	}

	s.log.Info("session", "session created", map[string]interface{}{
		"session_id": session.ID,
		"user_id":    session.UserID,
		"user_type":  string(session.UserType),
	})

	return &dto.CreateSessionResponse{
		SessionID: session.ID,
		UserID:    session.UserID,
		Message:   "session created",
	}, nil
}

func (s *sessionService) GetSessionSummary(ctx context.Context, sessionID string) (*dto.SessionSummaryResponse, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	domainHistory := make(map[string]int)
	for domain, count := range session.DomainHistory() {
		domainHistory[string(domain)] = count
	}

	return &dto.SessionSummaryResponse{
		SessionID:     session.ID,
		UserID:        session.UserID,
		UserType:      session.UserType,
		TurnCount:     len(session.History),
		DomainHistory: domainHistory,
		Satisfaction:  session.Satisfaction,
		CreatedAt:     session.CreatedAt,
		LastAccess:    session.LastAccess,
	}, nil
}
