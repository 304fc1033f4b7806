package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/MuhamadAgungGumelar/apexchat-be/internal/modules/saas/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BusinessRepo interface {
	Create(ctx context.Context, business *models.Business) error
	// Lookups return nil, nil when nothing matches.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Business, error)
	GetByPhone(ctx context.Context, phone string) (*models.Business, error)
	GetByAPIKey(ctx context.Context, apiKey string) (*models.Business, error)
}

type businessRepo struct {
	db *gorm.DB
}

func NewBusinessRepo(db *gorm.DB) BusinessRepo {
	return &businessRepo{db: db}
}

func (r *businessRepo) Create(ctx context.Context, business *models.Business) error {
	if err := r.db.WithContext(ctx).Create(business).Error; err != nil {
		return fmt.Errorf("create business: %w", err)
	}
	return nil
}

func (r *businessRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Business, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *businessRepo) GetByPhone(ctx context.Context, phone string) (*models.Business, error) {
	return r.findOne(ctx, "whatsapp_phone_number = ?", phone)
}

func (r *businessRepo) GetByAPIKey(ctx context.Context, apiKey string) (*models.Business, error) {
	if apiKey == "" {
		return nil, nil
	}
	return r.findOne(ctx, "api_key = ?", apiKey)
}

func (r *businessRepo) findOne(ctx context.Context, query string, arg interface{}) (*models.Business, error) {
	var business models.Business
	err := r.db.WithContext(ctx).Where(query, arg).Take(&business).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get business: %w", err)
	}
	return &business, nil
}
