package service

import (
	"context"
	"encoding/json"

	"ai-session-be/internal/dto"
	"ai-session-be/internal/entity"
	"ai-session-be/internal/pkg/logger"
	"ai-session-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService persists session lifecycle events as audit rows.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		log:        log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.SessionLifecycleMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("AUDIT", "failed to unmarshal lifecycle event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	auditLog := entity.AuditLog{
		EventType:       payload.EventType,
		UserId:          payload.UserId,
		SessionPublicId: payload.SessionPublicId,
		CreatedAt:       payload.OccurredAt,
	}

	if err := uow.AuditLogRepository().Create(ctx, &auditLog); err != nil {
		cs.log.Error("AUDIT", "failed to persist lifecycle event", map[string]interface{}{
			"event_type": payload.EventType,
			"session_id": payload.SessionPublicId,
			"error":      err.Error(),
		})
		msg.Nack() // Nack for retriable errors
		return
	}

	msg.Ack()
}
