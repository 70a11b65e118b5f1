package contract

import (
	"context"

	"ai-session-be/internal/entity"
	"ai-session-be/internal/repository/specification"
)

type ChatSessionRepository interface {
	// Create inserts the session and re-reads the stored row into the
	// given entity, so callers always see what the store holds.
	Create(ctx context.Context, session *entity.ChatSession) error
	Delete(ctx context.Context, id uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
