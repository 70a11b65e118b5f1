package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"

	ChatSessionGreeting = "Hi, how can I help you ?"
)

const (
	EventSessionCreated = "SESSION_CREATED"
	EventSessionDeleted = "SESSION_DELETED"
)
