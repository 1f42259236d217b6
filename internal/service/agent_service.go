package service

import (
	"context"
	"encoding/json"
	"time"

	"law-agent-be/internal/dto"
	"law-agent-be/internal/model"
	"law-agent-be/internal/pkg/logger"
	"law-agent-be/internal/repository/contract"
	"law-agent-be/pkg/legal"
	"law-agent-be/pkg/legal/classifier"
	"law-agent-be/pkg/legal/glossary"
	"law-agent-be/pkg/legal/synthesizer"
	"law-agent-be/pkg/policy"
	"law-agent-be/pkg/store"

	"github.com/google/uuid"
)

type IAgentService interface {
	Query(ctx context.Context, request *dto.QueryRequest) (*dto.QueryResponse, error)
	Feedback(ctx context.Context, request *dto.FeedbackRequest) (*dto.FeedbackResponse, error)
}

// agentService runs the query pipeline: classify, synthesize, extract
// glossary terms, persist the turn. Classification uses the policy
// snapshot current at the start of the request; feedback recorded
// mid-flight applies to later requests only.
type agentService struct {
	sessions         contract.ISessionStore
	analytics        contract.IAnalyticsRepository
	classifier       *classifier.Classifier
	synthesizer      *synthesizer.Synthesizer
	glossary         *glossary.Glossary
	adapter          *policy.Adapter
	publisherService IPublisherService
	maxGlossaryTerms int
	log              logger.ILogger
}

func NewAgentService(
	sessions contract.ISessionStore,
	analytics contract.IAnalyticsRepository,
	cls *classifier.Classifier,
	synth *synthesizer.Synthesizer,
	gls *glossary.Glossary,
	adapter *policy.Adapter,
	publisherService IPublisherService,
	maxGlossaryTerms int,
	log logger.ILogger,
) IAgentService {
	return &agentService{
		sessions:         sessions,
		analytics:        analytics,
		classifier:       cls,
		synthesizer:      synth,
		glossary:         gls,
		adapter:          adapter,
		publisherService: publisherService,
		maxGlossaryTerms: maxGlossaryTerms,
		log:              log,
	}
}

func (s *agentService) Query(ctx context.Context, request *dto.QueryRequest) (*dto.QueryResponse, error) {
	session, err := s.sessions.Get(ctx, request.SessionID)
	if err != nil {
		return nil, err
	}

	userType := session.UserType
	if request.UserType.IsValid() {
		userType = request.UserType
	}

	snap := s.adapter.Snapshot()
	classification := s.classifier.Classify(request.Query, userType, snap)

	response := s.synthesizer.Synthesize(ctx, classification.Domain, request.Query, classification, userType)

	terms := s.extractTerms(request.Query, classification.Domain, userType)

	turn := store.Turn{
		InteractionID: uuid.New().String(),
		Query:         request.Query,
		Domain:        classification.Domain,
		Confidence:    classification.Confidence,
		ResponseText:  response.Text,
		Source:        response.Source,
		CreatedAt:     time.Now().UTC(),
	}

	turn, err = s.sessions.AppendTurn(ctx, request.SessionID, turn)
	if err != nil {
		return nil, err
	}

	s.recordInteraction(ctx, session, turn, userType)

	s.log.Info("agent", "query answered", map[string]interface{}{
		"session_id": session.ID,
		"sequence":   turn.Sequence,
		"domain":     string(classification.Domain),
		"confidence": classification.Confidence,
		"source":     response.Source,
	})

	return &dto.QueryResponse{
		InteractionID: turn.InteractionID,
		Sequence:      turn.Sequence,
		Domain:        classification.Domain,
		Confidence:    classification.Confidence,
		Response: dto.ResponseDTO{
			Text:          response.Text,
			Sections:      response.Sections,
			NextSteps:     response.NextSteps,
			Timeline:      response.Timeline,
			EstimatedCost: response.EstimatedCost,
			SuccessRate:   response.SuccessRate,
			Source:        response.Source,
		},
		GlossaryTerms: terms,
	}, nil
}

func (s *agentService) Feedback(ctx context.Context, request *dto.FeedbackRequest) (*dto.FeedbackResponse, error) {
	session, err := s.sessions.RecordFeedback(ctx, request.SessionID, request.InteractionID, request.Feedback)
	if err != nil {
		return nil, err
	}

	turn, ok := session.FindTurn(request.InteractionID)
	if !ok {
		return nil, contract.ErrInteractionNotFound
	}

	event := policy.Event{
		SessionID:     session.ID,
		InteractionID: turn.InteractionID,
		Sequence:      turn.Sequence,
		Domain:        turn.Domain,
		Confidence:    turn.Confidence,
		Feedback:      request.Feedback,
		TimeSpent:     request.TimeSpent,
	}

	if err := s.publishEvent(ctx, event); err != nil {
		// The feedback itself is already persisted; a bus failure only
		// delays adaptation.
		s.log.Warn("agent", "failed to publish feedback event", map[string]interface{}{
			"session_id": session.ID,
			"error":      err.Error(),
		})
	}

	return &dto.FeedbackResponse{
		Status:              "recorded",
		Reward:              event.Reward(),
		UpdatedSatisfaction: session.Satisfaction,
	}, nil
}

func (s *agentService) publishEvent(ctx context.Context, event policy.Event) error {
	payload, err := json.Marshal(dto.FeedbackEventMessage{
		SessionID:     event.SessionID,
		InteractionID: event.InteractionID,
		Sequence:      event.Sequence,
		Domain:        event.Domain,
		Confidence:    event.Confidence,
		Feedback:      event.Feedback,
		TimeSpent:     event.TimeSpent,
	})
	if err != nil {
		return err
	}
	return s.publisherService.Publish(ctx, payload)
}

func (s *agentService) extractTerms(queryText string, domain legal.Domain, userType legal.UserType) []dto.GlossaryTermDTO {
	var scored []glossary.ScoredTerm
	if domain == legal.DomainUnknown {
		scored = s.glossary.Extract(queryText, s.maxGlossaryTerms)
	} else {
		scored = s.glossary.ExtractForDomain(queryText, domain, s.maxGlossaryTerms)
	}

	terms := make([]dto.GlossaryTermDTO, 0, len(scored))
	for _, st := range scored {
		terms = append(terms, dto.GlossaryTermDTO{
			Term:       st.Term.Term,
			Definition: st.Definition,
			Domain:     st.Domain,
			Complexity: st.Complexity,
			Usage:      st.UsageFor(userType),
			Relevance:  st.Relevance,
		})
	}
	return terms
}

func (s *agentService) recordInteraction(ctx context.Context, session *store.Session, turn store.Turn, userType legal.UserType) {
	if s.analytics == nil {
		return
	}
	interaction := &model.Interaction{
		SessionId:  session.ID,
		Sequence:   turn.Sequence,
		Domain:     string(turn.Domain),
		Confidence: turn.Confidence,
		Source:     turn.Source,
		UserType:   string(userType),
	}
	if err := s.analytics.RecordInteraction(ctx, interaction); err != nil {
		s.log.Warn("agent", "failed to record interaction", map[string]interface{}{
			"session_id": session.ID,
			"error":      err.Error(),
		})
	}
}
