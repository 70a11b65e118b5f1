package service

import (
	"context"
	"fmt"

	"ai-session-be/internal/dto"
	"ai-session-be/internal/entity"
	"ai-session-be/internal/repository/specification"
	"ai-session-be/internal/repository/unitofwork"
)

type IMessageService interface {
	GetBySession(ctx context.Context, userId string, sessionPublicId string) ([]*dto.MessageResponse, error)
	GetAllByOwner(ctx context.Context, userId string) ([]*dto.MessageResponse, error)
	// Append is the internal write path. It has no HTTP surface and refuses
	// writes against sessions that do not exist.
	Append(ctx context.Context, params *dto.AppendMessageParams) error
}

type messageService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewMessageService(uowFactory unitofwork.RepositoryFactory) IMessageService {
	return &messageService{
		uowFactory: uowFactory,
	}
}

// GetBySession lists one session's messages newest first, only when the
// session belongs to the caller. A foreign or unknown session is NotFound.
func (s *messageService) GetBySession(ctx context.Context, userId string, sessionPublicId string) ([]*dto.MessageResponse, error) {
	if userId == "" {
		return nil, fmt.Errorf("%w: user identity required", ErrValidation)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	sess, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByPublicID{PublicID: sessionPublicId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrNotFound
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.BySessionPublicID{SessionPublicID: sess.PublicId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	return messagesToResponse(messages), nil
}

// GetAllByOwner lists every message across the caller's sessions, newest
// first.
func (s *messageService) GetAllByOwner(ctx context.Context, userId string) ([]*dto.MessageResponse, error) {
	if userId == "" {
		return nil, fmt.Errorf("%w: user identity required", ErrValidation)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.MessageOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	return messagesToResponse(messages), nil
}

func (s *messageService) Append(ctx context.Context, params *dto.AppendMessageParams) error {
	if params.SessionPublicId == "" || params.Role == "" {
		return fmt.Errorf("%w: session id and role are required", ErrValidation)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	sess, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByPublicID{PublicID: params.SessionPublicId},
	)
	if err != nil {
		return err
	}
	if sess == nil {
		return ErrNotFound
	}

	message := entity.ChatMessage{
		SessionPublicId: sess.PublicId,
		RequestId:       params.RequestId,
		Role:            params.Role,
		Message:         params.Message,
	}

	return uow.ChatMessageRepository().Create(ctx, &message)
}

func messagesToResponse(messages []*entity.ChatMessage) []*dto.MessageResponse {
	response := make([]*dto.MessageResponse, 0, len(messages))
	for _, msg := range messages {
		response = append(response, &dto.MessageResponse{
			SessionId: msg.SessionPublicId,
			RequestId: msg.RequestId,
			Role:      msg.Role,
			Message:   msg.Message,
			CreatedAt: msg.CreatedAt,
		})
	}
	return response
}
