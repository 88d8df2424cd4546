package service

import (
	"context"
	"encoding/json"
	"time"

	"educonnect-be/internal/pkg/logger"
	"educonnect-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

type IEventPublisher interface {
	Publish(ctx context.Context, event string, actorId, subjectId string, details map[string]interface{})
}

// eventPublisher puts domain events on the in-process bus. Publishing is
// best-effort: a failed publish is logged and never fails the request that
// produced the event.
type eventPublisher struct {
	publisher message.Publisher
	log       logger.ILogger
}

func NewEventPublisher(publisher message.Publisher, log logger.ILogger) IEventPublisher {
	return &eventPublisher{publisher: publisher, log: log}
}

func (p *eventPublisher) Publish(ctx context.Context, event string, actorId, subjectId string, details map[string]interface{}) {
	envelope := events.Envelope{
		Event:      event,
		ActorId:    actorId,
		SubjectId:  subjectId,
		Details:    details,
		OccurredAt: time.Now(),
	}

	payload, err := json.Marshal(envelope)
	if err != nil {
		p.log.Warn("events", "failed to marshal event", map[string]interface{}{"event": event, "error": err.Error()})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)

	if err := p.publisher.Publish(events.Topic, msg); err != nil {
		p.log.Warn("events", "failed to publish event", map[string]interface{}{"event": event, "error": err.Error()})
	}
}
