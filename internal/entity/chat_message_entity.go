package entity

type ChatMessage struct {
	Id              uint
	SessionPublicId string
	RequestId       string
	Role            string
	Message         string
	CreatedAt       int64
}
