package repositories

import (
	"context"

	"github.com/MuhamadAgungGumelar/apexchat-be/internal/modules/saas/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogRepo reads the FAQs and products a business maintains.
type CatalogRepo interface {
	ListFAQs(ctx context.Context, businessID uuid.UUID) ([]models.FAQ, error)
	ListProducts(ctx context.Context, businessID uuid.UUID) ([]models.Product, error)
}

type catalogRepo struct {
	db *gorm.DB
}

func NewCatalogRepo(db *gorm.DB) CatalogRepo {
	return &catalogRepo{db: db}
}

func (r *catalogRepo) ListFAQs(ctx context.Context, businessID uuid.UUID) ([]models.FAQ, error) {
	var faqs []models.FAQ
	err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at ASC").
		Find(&faqs).Error
	return faqs, err
}

func (r *catalogRepo) ListProducts(ctx context.Context, businessID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("product_name ASC").
		Find(&products).Error
	return products, err
}
