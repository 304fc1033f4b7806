package models

import "time"

// InboundDedup records a provider message id that has already been processed.
type InboundDedup struct {
	MessageSID    string     `gorm:"column:message_sid;type:text;primaryKey" json:"message_sid"`
	CustomerPhone string     `gorm:"type:text;not null" json:"customer_phone"`
	ReceivedAt    time.Time  `gorm:"not null;index" json:"received_at"`
	ProcessedAt   *time.Time `json:"processed_at,omitempty"`
}

// TableName specifies the table name
func (InboundDedup) TableName() string {
	return "inbound_dedup"
}
