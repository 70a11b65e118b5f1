package mapper

import (
	"ai-session-be/internal/entity"
	"ai-session-be/internal/model"
)

type AuditMapper struct{}

func NewAuditMapper() *AuditMapper {
	return &AuditMapper{}
}

func (m *AuditMapper) AuditLogToEntity(l *model.AuditLog) *entity.AuditLog {
	if l == nil {
		return nil
	}

	return &entity.AuditLog{
		Id:              l.Id,
		EventType:       l.EventType,
		UserId:          l.UserId,
		SessionPublicId: l.SessionPublicId,
		CreatedAt:       l.CreatedAt,
	}
}

func (m *AuditMapper) AuditLogToModel(l *entity.AuditLog) *model.AuditLog {
	if l == nil {
		return nil
	}

	return &model.AuditLog{
		Id:              l.Id,
		EventType:       l.EventType,
		UserId:          l.UserId,
		SessionPublicId: l.SessionPublicId,
		CreatedAt:       l.CreatedAt,
	}
}
