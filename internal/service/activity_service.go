package service

import (
	"context"
	"encoding/json"
	"time"

	"educonnect-be/internal/entity"
	"educonnect-be/internal/pkg/logger"
	"educonnect-be/internal/repository/unitofwork"
	"educonnect-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

type IActivityService interface {
	// Run consumes domain events until ctx is cancelled. Meant to be
	// started once as a goroutine at boot.
	Run(ctx context.Context) error
}

// activityService fans every bus event into the activity_logs audit table.
type activityService struct {
	subscriber message.Subscriber
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewActivityService(subscriber message.Subscriber, uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IActivityService {
	return &activityService{
		subscriber: subscriber,
		uowFactory: uowFactory,
		log:        log,
	}
}

func (s *activityService) Run(ctx context.Context) error {
	messages, err := s.subscriber.Subscribe(ctx, events.Topic)
	if err != nil {
		return err
	}

	for msg := range messages {
		if err := s.handle(ctx, msg); err != nil {
			s.log.Warn("activity", "failed to persist activity log", map[string]interface{}{"error": err.Error()})
		}
		// Ack regardless: the audit trail is best-effort and a poison
		// message must not wedge the channel.
		msg.Ack()
	}
	return nil
}

func (s *activityService) handle(ctx context.Context, msg *message.Message) error {
	var envelope events.Envelope
	if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
		return err
	}

	log := &entity.ActivityLog{
		Id:        uuid.New(),
		Event:     envelope.Event,
		CreatedAt: time.Now(),
	}
	if envelope.ActorId != "" {
		if actorId, err := uuid.Parse(envelope.ActorId); err == nil {
			log.ActorId = &actorId
		}
	}
	if envelope.SubjectId != "" {
		subjectId := envelope.SubjectId
		log.SubjectId = &subjectId
	}
	if len(envelope.Details) > 0 {
		if raw, err := json.Marshal(envelope.Details); err == nil {
			details := string(raw)
			log.Details = &details
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ActivityLogRepository().Create(ctx, log)
}
