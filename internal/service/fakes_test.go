package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"ai-session-be/internal/entity"
	"ai-session-be/internal/repository/contract"
	"ai-session-be/internal/repository/specification"
	"ai-session-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// fakeStore is an in-memory stand-in for the database, shared by every unit
// of work a test factory hands out. Clock is a monotonic counter so ordering
// assertions do not depend on wall time.
type fakeStore struct {
	sessions []*entity.ChatSession
	messages []*entity.ChatMessage

	// Audit rows are written from the consumer goroutine, so they get a lock
	// of their own.
	auditsMu sync.Mutex
	audits   []*entity.AuditLog

	nextSessionId uint
	nextMessageId uint
	now           int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{}
}

func (s *fakeStore) auditRows() []*entity.AuditLog {
	s.auditsMu.Lock()
	defer s.auditsMu.Unlock()
	return append([]*entity.AuditLog(nil), s.audits...)
}

func (s *fakeStore) tick() int64 {
	s.now++
	return s.now
}

type fakeFactory struct {
	store *fakeStore

	failMessageCreate bool
	failMessageDelete bool
}

func newFakeFactory(store *fakeStore) *fakeFactory {
	return &fakeFactory{store: store}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{factory: f}
}

// fakeUow mimics transactional semantics by snapshotting the store on Begin
// and restoring it on Rollback. Rollback after Commit is a no-op error, which
// is what the services rely on with their deferred rollbacks.
type fakeUow struct {
	factory *fakeFactory

	inTx             bool
	sessionsSnapshot []*entity.ChatSession
	messagesSnapshot []*entity.ChatMessage
	auditsSnapshot   []*entity.AuditLog
}

func (u *fakeUow) Begin(ctx context.Context) error {
	if u.inTx {
		return fmt.Errorf("transaction already started")
	}
	store := u.factory.store
	u.sessionsSnapshot = append([]*entity.ChatSession(nil), store.sessions...)
	u.messagesSnapshot = append([]*entity.ChatMessage(nil), store.messages...)
	u.auditsSnapshot = store.auditRows()
	u.inTx = true
	return nil
}

func (u *fakeUow) Commit() error {
	if !u.inTx {
		return fmt.Errorf("no transaction to commit")
	}
	u.inTx = false
	return nil
}

func (u *fakeUow) Rollback() error {
	if !u.inTx {
		return fmt.Errorf("no transaction to rollback")
	}
	store := u.factory.store
	store.sessions = u.sessionsSnapshot
	store.messages = u.messagesSnapshot
	store.auditsMu.Lock()
	store.audits = u.auditsSnapshot
	store.auditsMu.Unlock()
	u.inTx = false
	return nil
}

func (u *fakeUow) ChatSessionRepository() contract.ChatSessionRepository {
	return &fakeSessionRepo{store: u.factory.store}
}

func (u *fakeUow) ChatMessageRepository() contract.ChatMessageRepository {
	return &fakeMessageRepo{
		store:      u.factory.store,
		failCreate: u.factory.failMessageCreate,
		failDelete: u.factory.failMessageDelete,
	}
}

func (u *fakeUow) AuditLogRepository() contract.AuditLogRepository {
	return &fakeAuditRepo{store: u.factory.store}
}

type fakeSessionRepo struct {
	store *fakeStore
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *entity.ChatSession) error {
	r.store.nextSessionId++
	stored := *session
	stored.Id = r.store.nextSessionId
	stored.CreatedAt = r.store.tick()
	r.store.sessions = append(r.store.sessions, &stored)
	*session = stored
	return nil
}

func (r *fakeSessionRepo) Delete(ctx context.Context, id uint) error {
	kept := r.store.sessions[:0:0]
	for _, sess := range r.store.sessions {
		if sess.Id != id {
			kept = append(kept, sess)
		}
	}
	r.store.sessions = kept
	return nil
}

func (r *fakeSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	matches := r.filter(specs)
	if len(matches) == 0 {
		return nil, nil
	}
	found := *matches[0]
	return &found, nil
}

func (r *fakeSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error) {
	return r.filter(specs), nil
}

func (r *fakeSessionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.filter(specs))), nil
}

func (r *fakeSessionRepo) filter(specs []specification.Specification) []*entity.ChatSession {
	result := make([]*entity.ChatSession, 0, len(r.store.sessions))
	result = append(result, r.store.sessions...)

	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByPublicID:
			result = keepSessions(result, func(sess *entity.ChatSession) bool {
				return sess.PublicId == s.PublicID
			})
		case specification.UserOwnedBy:
			result = keepSessions(result, func(sess *entity.ChatSession) bool {
				return sess.UserId == s.UserID
			})
		case specification.HasMessageWithRole:
			result = keepSessions(result, func(sess *entity.ChatSession) bool {
				return r.hasMessageWithRole(sess.PublicId, s.Role)
			})
		case specification.OrderBy:
			sortSessions(result, s)
		}
	}
	return result
}

func (r *fakeSessionRepo) hasMessageWithRole(sessionPublicId, role string) bool {
	for _, msg := range r.store.messages {
		if msg.SessionPublicId == sessionPublicId && msg.Role == role {
			return true
		}
	}
	return false
}

func keepSessions(sessions []*entity.ChatSession, keep func(*entity.ChatSession) bool) []*entity.ChatSession {
	kept := sessions[:0:0]
	for _, sess := range sessions {
		if keep(sess) {
			kept = append(kept, sess)
		}
	}
	return kept
}

func sortSessions(sessions []*entity.ChatSession, order specification.OrderBy) {
	sort.SliceStable(sessions, func(i, j int) bool {
		if order.Desc {
			return sessions[i].CreatedAt > sessions[j].CreatedAt
		}
		return sessions[i].CreatedAt < sessions[j].CreatedAt
	})
}

type fakeMessageRepo struct {
	store      *fakeStore
	failCreate bool
	failDelete bool
}

func (r *fakeMessageRepo) Create(ctx context.Context, message *entity.ChatMessage) error {
	if r.failCreate {
		return fmt.Errorf("message store unavailable")
	}
	r.store.nextMessageId++
	stored := *message
	stored.Id = r.store.nextMessageId
	stored.CreatedAt = r.store.tick()
	r.store.messages = append(r.store.messages, &stored)
	*message = stored
	return nil
}

func (r *fakeMessageRepo) DeleteBySessionPublicId(ctx context.Context, sessionPublicId string) error {
	if r.failDelete {
		return fmt.Errorf("message store unavailable")
	}
	kept := r.store.messages[:0:0]
	for _, msg := range r.store.messages {
		if msg.SessionPublicId != sessionPublicId {
			kept = append(kept, msg)
		}
	}
	r.store.messages = kept
	return nil
}

func (r *fakeMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	result := make([]*entity.ChatMessage, 0, len(r.store.messages))
	result = append(result, r.store.messages...)

	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.BySessionPublicID:
			kept := result[:0:0]
			for _, msg := range result {
				if msg.SessionPublicId == s.SessionPublicID {
					kept = append(kept, msg)
				}
			}
			result = kept
		case specification.MessageOwnedBy:
			kept := result[:0:0]
			for _, msg := range result {
				if r.sessionOwnedBy(msg.SessionPublicId, s.UserID) {
					kept = append(kept, msg)
				}
			}
			result = kept
		case specification.OrderBy:
			order := s
			sort.SliceStable(result, func(i, j int) bool {
				if order.Desc {
					return result[i].CreatedAt > result[j].CreatedAt
				}
				return result[i].CreatedAt < result[j].CreatedAt
			})
		}
	}
	return result, nil
}

func (r *fakeMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	messages, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(messages)), nil
}

func (r *fakeMessageRepo) sessionOwnedBy(sessionPublicId, userId string) bool {
	for _, sess := range r.store.sessions {
		if sess.PublicId == sessionPublicId && sess.UserId == userId {
			return true
		}
	}
	return false
}

type fakeAuditRepo struct {
	store *fakeStore
}

func (r *fakeAuditRepo) Create(ctx context.Context, log *entity.AuditLog) error {
	stored := *log
	if stored.Id == uuid.Nil {
		stored.Id = uuid.New()
	}
	r.store.auditsMu.Lock()
	r.store.audits = append(r.store.audits, &stored)
	r.store.auditsMu.Unlock()
	*log = stored
	return nil
}

func (r *fakeAuditRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AuditLog, error) {
	return r.store.auditRows(), nil
}

func (r *fakeAuditRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.auditRows())), nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type fakePublisher struct {
	published [][]byte
	failWith  error
}

func (p *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	if p.failWith != nil {
		return p.failWith
	}
	p.published = append(p.published, payload)
	return nil
}
