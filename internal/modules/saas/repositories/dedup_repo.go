package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/MuhamadAgungGumelar/apexchat-be/internal/modules/saas/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DedupRepo remembers provider message ids so redelivered webhooks are not
// processed twice.
type DedupRepo interface {
	// RecordInbound returns false when the id was already recorded.
	RecordInbound(ctx context.Context, messageSID, phone string) (bool, error)
	MarkProcessed(ctx context.Context, messageSID string) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type dedupRepo struct {
	db *gorm.DB
}

func NewDedupRepo(db *gorm.DB) DedupRepo {
	return &dedupRepo{db: db}
}

func (r *dedupRepo) RecordInbound(ctx context.Context, messageSID, phone string) (bool, error) {
	record := models.InboundDedup{
		MessageSID:    messageSID,
		CustomerPhone: phone,
		ReceivedAt:    time.Now().UTC(),
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "message_sid"}}, DoNothing: true}).
		Create(&record)
	if result.Error != nil {
		return false, fmt.Errorf("record inbound failed: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *dedupRepo) MarkProcessed(ctx context.Context, messageSID string) error {
	err := r.db.WithContext(ctx).
		Model(&models.InboundDedup{}).
		Where("message_sid = ?", messageSID).
		Update("processed_at", time.Now().UTC()).Error
	if err != nil {
		return fmt.Errorf("mark processed failed: %w", err)
	}
	return nil
}

func (r *dedupRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("received_at < ?", cutoff).
		Delete(&models.InboundDedup{})
	if result.Error != nil {
		return 0, fmt.Errorf("prune dedup records: %w", result.Error)
	}
	return result.RowsAffected, nil
}
