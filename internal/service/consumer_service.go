package service

import (
	"context"
	"encoding/json"

	"law-agent-be/internal/dto"
	"law-agent-be/internal/pkg/logger"
	"law-agent-be/pkg/policy"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains feedback events off the bus and folds each one
// into the policy adapter. Running it off the request path keeps query
// handling independent of how expensive adaptation gets.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	adapter   *policy.Adapter
	log       logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	adapter *policy.Adapter,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		adapter:   adapter,
		log:       log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.FeedbackEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		// Ack malformed messages to prevent infinite retry.
		cs.log.Error("consumer", "failed to unmarshal feedback event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack()
		return
	}

	cs.adapter.Record(policy.Event{
		SessionID:     payload.SessionID,
		InteractionID: payload.InteractionID,
		Sequence:      payload.Sequence,
		Domain:        payload.Domain,
		Confidence:    payload.Confidence,
		Feedback:      payload.Feedback,
		TimeSpent:     payload.TimeSpent,
	})

	cs.log.Debug("consumer", "applied feedback event", map[string]interface{}{
		"session_id":     payload.SessionID,
		"interaction_id": payload.InteractionID,
		"domain":         string(payload.Domain),
		"feedback":       string(payload.Feedback),
	})

	msg.Ack()
}
