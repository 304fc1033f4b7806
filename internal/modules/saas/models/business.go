package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const BusinessStatusActive = "active"

// Business is a tenant created during WhatsApp onboarding.
type Business struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BusinessName        string    `gorm:"type:text;not null" json:"business_name"`
	WhatsAppPhoneNumber string    `gorm:"column:whatsapp_phone_number;type:text;not null;uniqueIndex:idx_businesses_whatsapp_phone" json:"whatsapp_phone_number"`
	APIKey              string    `gorm:"type:text;not null;uniqueIndex:idx_businesses_api_key" json:"-"`
	Status              string    `gorm:"type:text;not null;default:'active'" json:"status"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (Business) TableName() string {
	return "businesses"
}

// BeforeCreate sets UUID before creating
func (b *Business) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Status == "" {
		b.Status = BusinessStatusActive
	}
	return nil
}
