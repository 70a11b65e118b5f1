package dto

type CreateSessionRequest struct {
	Name string `json:"name" validate:"required"`
}

type SessionResponse struct {
	PublicId    string `json:"public_id"`
	OwnerUserId string `json:"owner_user_id"`
	Active      bool   `json:"active"`
	Name        string `json:"name"`
	CreatedAt   int64  `json:"created_at"`
}
