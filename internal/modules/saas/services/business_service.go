package services

import (
	"context"
	"errors"
	"strings"

	"github.com/MuhamadAgungGumelar/apexchat-be/internal/modules/saas/models"
	"github.com/MuhamadAgungGumelar/apexchat-be/internal/modules/saas/repositories"
	"github.com/google/uuid"
)

const minBusinessNameLength = 3

var ErrInvalidBusinessName = errors.New("business name must be at least 3 characters")

// BusinessProvisioner creates a tenant through the given repository, which
// is bound to the caller's transaction.
type BusinessProvisioner interface {
	Provision(ctx context.Context, businesses repositories.BusinessRepo, name, phone string) (*models.Business, error)
}

// BusinessService provisions businesses created during onboarding.
type BusinessService struct {
	newAPIKey func() string
}

func NewBusinessService() *BusinessService {
	return &BusinessService{newAPIKey: GenerateAPIKey}
}

var _ BusinessProvisioner = (*BusinessService)(nil)

func (s *BusinessService) Provision(ctx context.Context, businesses repositories.BusinessRepo, name, phone string) (*models.Business, error) {
	name = strings.TrimSpace(name)
	if len([]rune(name)) < minBusinessNameLength {
		return nil, ErrInvalidBusinessName
	}

	business := &models.Business{
		BusinessName:        name,
		WhatsAppPhoneNumber: phone,
		APIKey:              s.newAPIKey(),
		Status:              models.BusinessStatusActive,
	}
	if err := businesses.Create(ctx, business); err != nil {
		return nil, err
	}
	return business, nil
}

// GenerateAPIKey returns an opaque, unguessable API key.
func GenerateAPIKey() string {
	return "ak_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
