package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ai-session-be/internal/constant"
	"ai-session-be/internal/dto"
	"ai-session-be/internal/entity"
	"ai-session-be/internal/pkg/logger"
	"ai-session-be/internal/repository/specification"
	"ai-session-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ISessionService interface {
	Create(ctx context.Context, userId string, req *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	GetAll(ctx context.Context, userId string, withUserMessages bool) ([]*dto.SessionResponse, error)
	Delete(ctx context.Context, userId string, publicId string) error
}

type sessionService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	log              logger.ILogger
}

func NewSessionService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) ISessionService {
	return &sessionService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		log:              log,
	}
}

// Create stores a new session owned by the resolved user, together with the
// opening assistant greeting, in one transaction. The returned payload is the
// row as the store holds it, not the input echoed back.
func (s *sessionService) Create(ctx context.Context, userId string, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	if userId == "" {
		return nil, fmt.Errorf("%w: user identity required", ErrValidation)
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	session := entity.ChatSession{
		PublicId: uuid.NewString(),
		UserId:   userId,
		Active:   true,
		Name:     req.Name,
	}
	greeting := entity.ChatMessage{
		SessionPublicId: session.PublicId,
		RequestId:       uuid.NewString(),
		Role:            constant.ChatMessageRoleAssistant,
		Message:         constant.ChatSessionGreeting,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatSessionRepository().Create(ctx, &session); err != nil {
		return nil, err
	}
	if err := uow.ChatMessageRepository().Create(ctx, &greeting); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishLifecycleEvent(ctx, constant.EventSessionCreated, &session)

	return sessionToResponse(&session), nil
}

// GetAll lists the caller's sessions newest first. With withUserMessages set,
// sessions that never received a user turn are filtered out.
func (s *sessionService) GetAll(ctx context.Context, userId string, withUserMessages bool) ([]*dto.SessionResponse, error) {
	if userId == "" {
		return nil, fmt.Errorf("%w: user identity required", ErrValidation)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.UserOwnedBy{UserID: userId},
	}
	if withUserMessages {
		specs = append(specs, specification.HasMessageWithRole{Role: constant.ChatMessageRoleUser})
	}
	specs = append(specs, specification.OrderBy{Field: "created_at", Desc: true})

	sessions, err := uow.ChatSessionRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.SessionResponse, 0, len(sessions))
	for _, sess := range sessions {
		response = append(response, sessionToResponse(sess))
	}

	return response, nil
}

// Delete removes a session and every message referencing it, atomically.
// Ownership mismatch and absence are the same outcome.
func (s *sessionService) Delete(ctx context.Context, userId string, publicId string) error {
	if userId == "" {
		return fmt.Errorf("%w: user identity required", ErrValidation)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	sess, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByPublicID{PublicID: publicId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if sess == nil {
		return ErrNotFound
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ChatSessionRepository().Delete(ctx, sess.Id); err != nil {
		return err
	}
	if err := uow.ChatMessageRepository().DeleteBySessionPublicId(ctx, sess.PublicId); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.publishLifecycleEvent(ctx, constant.EventSessionDeleted, sess)

	return nil
}

// publishLifecycleEvent is best effort; a bus hiccup must not fail the
// request that already committed.
func (s *sessionService) publishLifecycleEvent(ctx context.Context, eventType string, sess *entity.ChatSession) {
	msg := dto.SessionLifecycleMessage{
		EventType:       eventType,
		UserId:          sess.UserId,
		SessionPublicId: sess.PublicId,
		OccurredAt:      time.Now(),
	}
	msgJson, _ := json.Marshal(msg)

	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		s.log.Warn("SESSION", "failed to publish lifecycle event", map[string]interface{}{
			"event_type": eventType,
			"session_id": sess.PublicId,
			"error":      err.Error(),
		})
	}
}

func sessionToResponse(sess *entity.ChatSession) *dto.SessionResponse {
	return &dto.SessionResponse{
		PublicId:    sess.PublicId,
		OwnerUserId: sess.UserId,
		Active:      sess.Active,
		Name:        sess.Name,
		CreatedAt:   sess.CreatedAt,
	}
}
