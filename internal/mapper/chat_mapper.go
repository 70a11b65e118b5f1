package mapper

import (
	"ai-session-be/internal/entity"
	"ai-session-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// Session Mappers

func (m *ChatMapper) ChatSessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}

	return &entity.ChatSession{
		Id:        s.Id,
		PublicId:  s.PublicId,
		UserId:    s.UserId,
		Active:    s.Active,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
	}
}

func (m *ChatMapper) ChatSessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}

	return &model.ChatSession{
		Id:        s.Id,
		PublicId:  s.PublicId,
		UserId:    s.UserId,
		Active:    s.Active,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
	}
}

// Message Mappers

func (m *ChatMapper) ChatMessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}

	return &entity.ChatMessage{
		Id:              msg.Id,
		SessionPublicId: msg.SessionPublicId,
		RequestId:       msg.RequestId,
		Role:            msg.Role,
		Message:         msg.Message,
		CreatedAt:       msg.CreatedAt,
	}
}

func (m *ChatMapper) ChatMessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}

	return &model.ChatMessage{
		Id:              msg.Id,
		SessionPublicId: msg.SessionPublicId,
		RequestId:       msg.RequestId,
		Role:            msg.Role,
		Message:         msg.Message,
		CreatedAt:       msg.CreatedAt,
	}
}
