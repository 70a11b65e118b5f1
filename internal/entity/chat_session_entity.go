package entity

type ChatSession struct {
	Id        uint
	PublicId  string
	UserId    string
	Active    bool
	Name      string
	CreatedAt int64
}
