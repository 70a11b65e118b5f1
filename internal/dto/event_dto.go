package dto

import "time"

type SessionLifecycleMessage struct {
	EventType       string    `json:"event_type"`
	UserId          string    `json:"user_id"`
	SessionPublicId string    `json:"session_public_id"`
	OccurredAt      time.Time `json:"occurred_at"`
}
