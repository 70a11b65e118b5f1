package model

type ChatMessage struct {
	Id              uint   `gorm:"primaryKey;autoIncrement"`
	SessionPublicId string `gorm:"type:uuid;not null;index"` // References chat_sessions.public_id
	RequestId       string `gorm:"type:varchar(128);not null;index"` // Opaque correlation id from the producing pipeline
	Role            string `gorm:"type:varchar(50);not null"`
	Message         string `gorm:"type:text;not null"`
	CreatedAt       int64  `gorm:"autoCreateTime;index"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
