package dto

type MessageResponse struct {
	SessionId string `json:"session_id"`
	RequestId string `json:"request_id"`
	Role      string `json:"role"`
	Message   string `json:"message"`
	CreatedAt int64  `json:"created_at"`
}

// AppendMessageParams is the internal write contract for the message store.
// There is no HTTP endpoint for it; the session-creation conversation and the
// conversational agent are its callers.
type AppendMessageParams struct {
	SessionPublicId string
	RequestId       string
	Role            string
	Message         string
}
