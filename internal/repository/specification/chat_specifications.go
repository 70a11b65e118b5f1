package specification

import "gorm.io/gorm"

// ByPublicID filters sessions by their externally visible identifier.
type ByPublicID struct {
	PublicID string
}

func (s ByPublicID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("public_id = ?", s.PublicID)
}

// UserOwnedBy scopes rows to one owning user.
type UserOwnedBy struct {
	UserID string
}

func (s UserOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// BySessionPublicID filters messages by their owning session.
type BySessionPublicID struct {
	SessionPublicID string
}

func (s BySessionPublicID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_public_id = ?", s.SessionPublicID)
}

// HasMessageWithRole keeps sessions that have at least one message with the
// given role. Existence sub-query, not a join, so rows never duplicate.
type HasMessageWithRole struct {
	Role string
}

func (s HasMessageWithRole) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(
		"EXISTS (SELECT 1 FROM chat_messages m WHERE m.session_public_id = chat_sessions.public_id AND m.role = ?)",
		s.Role,
	)
}

// MessageOwnedBy keeps messages whose session belongs to the given user.
type MessageOwnedBy struct {
	UserID string
}

func (s MessageOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(
		"EXISTS (SELECT 1 FROM chat_sessions s WHERE s.public_id = chat_messages.session_public_id AND s.user_id = ?)",
		s.UserID,
	)
}
