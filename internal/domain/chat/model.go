package chat

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message is one turn of the assistant conversation, optionally tied to a
// specific request. Checklist holds the document checklist the assistant
// attached to its answer, when any.
type Message struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID      `json:"user_id" gorm:"type:uuid;index;not null"`
	RequestID *uuid.UUID     `json:"request_id" gorm:"type:uuid;index"`
	Role      MessageRole    `json:"role" gorm:"size:20;not null"`
	Content   string         `json:"content" gorm:"type:text"`
	Checklist datatypes.JSON `json:"checklist"`
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime;index"`
}

func (Message) TableName() string {
	return "chat_messages"
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
