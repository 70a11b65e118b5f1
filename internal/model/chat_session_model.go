package model

type ChatSession struct {
	Id        uint   `gorm:"primaryKey;autoIncrement"`
	PublicId  string `gorm:"type:uuid;not null;uniqueIndex"`
	UserId    string `gorm:"type:varchar(128);not null;index"` // User ownership for data isolation
	Active    bool   `gorm:"not null;default:true"`
	Name      string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"autoCreateTime;index"` // Epoch seconds, sort key
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}
