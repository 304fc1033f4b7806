package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DirectionIncoming = "incoming"
	DirectionOutgoing = "outgoing"

	MessageStatusReceived = "received"
	MessageStatusSent     = "sent"

	MessageTypeText = "text"
)

// WhatsAppMessage is one row of the append-only message audit trail.
type WhatsAppMessage struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ConversationID *uuid.UUID `gorm:"type:uuid;index" json:"conversation_id,omitempty"`
	MessageSID     string     `gorm:"column:message_sid;type:text;index" json:"message_sid"`
	FromPhone      string     `gorm:"column:from_phone_number;type:text" json:"from_phone_number"`
	ToPhone        string     `gorm:"column:to_phone_number;type:text" json:"to_phone_number"`
	Body           string     `gorm:"column:message_body;type:text" json:"message_body"`
	MessageType    string     `gorm:"type:text;not null;default:'text'" json:"message_type"`
	Direction      string     `gorm:"type:text;not null" json:"direction"`
	Status         string     `gorm:"type:text;not null" json:"status"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name
func (WhatsAppMessage) TableName() string {
	return "whatsapp_messages"
}

// BeforeCreate sets UUID before creating
func (m *WhatsAppMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
