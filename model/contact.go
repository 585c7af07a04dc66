package model

import "time"

type ContactMessage struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	Name    string    `gorm:"size:100;not null" json:"name"`
	Email   string    `gorm:"size:254;not null;index" json:"email"`
	Message string    `gorm:"type:text;not null" json:"message"`
	SentAt  time.Time `gorm:"autoCreateTime;<-:create;index" json:"sentAt"`
}

// Preview shortens the message for list screens.
func (m ContactMessage) Preview() string {
	runes := []rune(m.Message)
	if len(runes) > 50 {
		return string(runes[:50]) + "..."
	}
	return m.Message
}

type ContactInput struct {
	Name    string `json:"name" form:"name" validate:"required,max=100"`
	Email   string `json:"email" form:"email" validate:"required,email,max=254"`
	Message string `json:"message" form:"message" validate:"required"`
}
