package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MuhamadAgungGumelar/apexchat-be/internal/core/llm"
	"github.com/MuhamadAgungGumelar/apexchat-be/internal/modules/saas/models"
	"github.com/MuhamadAgungGumelar/apexchat-be/internal/modules/saas/repositories"
	"github.com/MuhamadAgungGumelar/apexchat-be/internal/shared/database/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLLM struct {
	reply string
	err   error
	calls int
}

func (s *stubLLM) GenerateResponse(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	s.calls++
	return s.reply, s.err
}

func (s *stubLLM) GetProviderName() string { return "stub" }

func newAIFixture(t *testing.T, provider llm.LLMProvider) (*AIService, *models.Business) {
	t.Helper()
	db := dbtest.New(t, models.All()...)
	repos := repositories.NewRepos(db.GORM)
	ctx := context.Background()

	business := &models.Business{BusinessName: "Ajala Ventures", WhatsAppPhoneNumber: phone, APIKey: "ak_test"}
	require.NoError(t, repos.Businesses.Create(ctx, business))
	require.NoError(t, db.GORM.Create(&models.FAQ{BusinessID: business.ID, Question: "What are your opening hours?", Answer: "9am to 6pm, Monday to Saturday."}).Error)
	require.NoError(t, db.GORM.Create(&models.FAQ{BusinessID: business.ID, Question: "What is your refund policy?", Answer: "Refunds within 7 days."}).Error)
	require.NoError(t, db.GORM.Create(&models.Product{BusinessID: business.ID, ProductName: "Zobo Drink", Price: 2.5, StockQuantity: 12}).Error)

	svc := NewAIService(repos.Businesses, repos.Catalog, llm.NewService(provider, llm.NewMemoryCache(), time.Hour))
	return svc, business
}

func TestAIAnswerRuleOrder(t *testing.T) {
	provider := &stubLLM{reply: "generated"}
	svc, business := newAIFixture(t, provider)
	ctx := context.Background()

	exact, err := svc.Answer(ctx, business, "what are your opening hours?")
	require.NoError(t, err)
	assert.Equal(t, SourceFAQExact, exact.Source)
	assert.Equal(t, 99, exact.Confidence)

	keyword, err := svc.Answer(ctx, business, "Can I get a refund?")
	require.NoError(t, err)
	assert.Equal(t, SourceFAQKeyword, keyword.Source)
	assert.Equal(t, "Refunds within 7 days.", keyword.Response)
	assert.Equal(t, 90, keyword.Confidence)

	product, err := svc.Answer(ctx, business, "how much is zobo drink?")
	require.NoError(t, err)
	assert.Equal(t, SourceProduct, product.Source)
	assert.Equal(t, "The Zobo Drink is $2.50 and we have 12 in stock.", product.Response)

	assert.Zero(t, provider.calls)
}

func TestAIAnswerKeywordMatchUsesAnswerAndFAQOrder(t *testing.T) {
	db := dbtest.New(t, models.All()...)
	repos := repositories.NewRepos(db.GORM)
	ctx := context.Background()

	business := &models.Business{BusinessName: "Kemi Foods", WhatsAppPhoneNumber: phone, APIKey: "ak_kemi"}
	require.NoError(t, repos.Businesses.Create(ctx, business))
	base := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, db.GORM.Create(&models.FAQ{BusinessID: business.ID, Question: "Where are you based?", Answer: "Lagos, with same day delivery.", CreatedAt: base}).Error)
	require.NoError(t, db.GORM.Create(&models.FAQ{BusinessID: business.ID, Question: "How can I reach you?", Answer: "Call our support line.", CreatedAt: base.Add(time.Minute)}).Error)
	require.NoError(t, db.GORM.Create(&models.FAQ{BusinessID: business.ID, Question: "Is there shipping abroad?", Answer: "Not yet.", CreatedAt: base.Add(2 * time.Minute)}).Error)

	provider := &stubLLM{reply: "generated"}
	svc := NewAIService(repos.Businesses, repos.Catalog, llm.NewService(provider, llm.NewMemoryCache(), time.Hour))

	// keyword only in the answer
	answer, err := svc.Answer(ctx, business, "is delivery available?")
	require.NoError(t, err)
	assert.Equal(t, SourceFAQKeyword, answer.Source)
	assert.Equal(t, "Lagos, with same day delivery.", answer.Response)

	// "shipping" comes first in the keyword list, but the earlier FAQ wins
	answer, err = svc.Answer(ctx, business, "shipping support please")
	require.NoError(t, err)
	assert.Equal(t, SourceFAQKeyword, answer.Source)
	assert.Equal(t, "Call our support line.", answer.Response)

	assert.Zero(t, provider.calls)
}

func TestAIAnswerGenerativeFallbackIsCached(t *testing.T) {
	provider := &stubLLM{reply: "We are located in Yaba."}
	svc, business := newAIFixture(t, provider)
	ctx := context.Background()

	first, err := svc.Answer(ctx, business, "where are you located?")
	require.NoError(t, err)
	assert.Equal(t, SourceAI, first.Source)
	assert.Equal(t, 85, first.Confidence)

	second, err := svc.Answer(ctx, business, "where are you located?")
	require.NoError(t, err)
	assert.Equal(t, SourceAICached, second.Source)
	assert.Equal(t, 80, second.Confidence)
	assert.Equal(t, 1, provider.calls)
}

func TestAIAnswerStaticFallbackOnProviderError(t *testing.T) {
	svc, business := newAIFixture(t, &stubLLM{err: errors.New("timeout")})

	answer, err := svc.Answer(context.Background(), business, "do you sell shoes?")
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, answer.Source)
	assert.Equal(t, 75, answer.Confidence)
}

func TestAIAnswerAnonymousSkipsCatalog(t *testing.T) {
	provider := &stubLLM{reply: "Hi!"}
	svc, _ := newAIFixture(t, provider)

	answer, err := svc.Answer(context.Background(), nil, "What are your opening hours?")
	require.NoError(t, err)
	assert.Equal(t, SourceAI, answer.Source)
	assert.Equal(t, 1, provider.calls)
}

func TestAIAnswerRejectsEmptyQuery(t *testing.T) {
	svc, business := newAIFixture(t, &stubLLM{})
	_, err := svc.Answer(context.Background(), business, "   ")
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestBusinessByAPIKey(t *testing.T) {
	svc, business := newAIFixture(t, &stubLLM{})

	got, err := svc.BusinessByAPIKey(context.Background(), "ak_test")
	require.NoError(t, err)
	assert.Equal(t, business.ID, got.ID)

	_, err = svc.BusinessByAPIKey(context.Background(), "ak_unknown")
	assert.ErrorIs(t, err, repositories.ErrBusinessNotFound)
}
