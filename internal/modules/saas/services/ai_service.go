package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MuhamadAgungGumelar/apexchat-be/internal/core/llm"
	"github.com/MuhamadAgungGumelar/apexchat-be/internal/modules/saas/models"
	"github.com/MuhamadAgungGumelar/apexchat-be/internal/modules/saas/repositories"
	"github.com/rs/zerolog/log"
)

var ErrEmptyQuery = errors.New("query_text is required")

const (
	SourceFAQExact   = "faq_exact"
	SourceFAQKeyword = "faq_keyword"
	SourceProduct    = "product"
	SourceAICached   = "ai_cached"
	SourceAI         = "ai"
	SourceFallback   = "fallback"

	fallbackAnswer = "Thanks for your question! I don't have that information right now, " +
		"but a team member will get back to you shortly."
)

var faqKeywords = []string{"shipping", "return", "hours", "refund", "delivery", "support", "contact", "policy"}

// AIAnswer is the reply to a customer query.
type AIAnswer struct {
	Response    string      `json:"response"`
	Confidence  int         `json:"confidence"`
	Source      string      `json:"source"`
	MatchedData interface{} `json:"matched_data,omitempty"`
}

// AIService answers customer queries: catalog rules first, then the
// generative fallback.
type AIService struct {
	businesses repositories.BusinessRepo
	catalog    repositories.CatalogRepo
	llm        *llm.Service
}

func NewAIService(businesses repositories.BusinessRepo, catalog repositories.CatalogRepo, llmService *llm.Service) *AIService {
	return &AIService{businesses: businesses, catalog: catalog, llm: llmService}
}

// BusinessByAPIKey resolves the calling tenant. Unknown keys yield
// repositories.ErrBusinessNotFound.
func (s *AIService) BusinessByAPIKey(ctx context.Context, apiKey string) (*models.Business, error) {
	business, err := s.businesses.GetByAPIKey(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, repositories.ErrBusinessNotFound
	}
	return business, nil
}

// Answer replies to query. business may be nil for anonymous queries, which
// skip the catalog rules.
func (s *AIService) Answer(ctx context.Context, business *models.Business, query string) (*AIAnswer, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	kb := &llm.KnowledgeBase{}
	if business != nil {
		faqs, err := s.catalog.ListFAQs(ctx, business.ID)
		if err != nil {
			return nil, fmt.Errorf("list faqs: %w", err)
		}
		products, err := s.catalog.ListProducts(ctx, business.ID)
		if err != nil {
			return nil, fmt.Errorf("list products: %w", err)
		}

		if answer := matchCatalog(query, faqs, products); answer != nil {
			return answer, nil
		}

		kb.BusinessName = business.BusinessName
		for _, f := range faqs {
			kb.FAQs = append(kb.FAQs, llm.FAQ{Question: f.Question, Answer: f.Answer})
		}
		for _, p := range products {
			kb.Products = append(kb.Products, llm.Product{Name: p.ProductName, Price: p.Price, Stock: p.StockQuantity})
		}
	}

	res, err := s.llm.Generate(ctx, llm.BuildSystemPrompt(kb), query)
	if err != nil {
		log.Warn().Err(err).Msg("AI generation failed, using fallback answer")
		return &AIAnswer{Response: fallbackAnswer, Confidence: 75, Source: SourceFallback}, nil
	}
	if res.Cached {
		return &AIAnswer{Response: res.Text, Confidence: 80, Source: SourceAICached}, nil
	}
	return &AIAnswer{Response: res.Text, Confidence: 85, Source: SourceAI}, nil
}

func matchCatalog(query string, faqs []models.FAQ, products []models.Product) *AIAnswer {
	lower := strings.ToLower(query)

	for _, f := range faqs {
		if strings.EqualFold(strings.TrimSpace(f.Question), query) {
			return &AIAnswer{Response: f.Answer, Confidence: 99, Source: SourceFAQExact, MatchedData: f}
		}
	}

	// FAQs in catalog order; the first one sharing a keyword with the query wins
	for _, f := range faqs {
		text := strings.ToLower(f.Question + "\n" + f.Answer)
		for _, keyword := range faqKeywords {
			if strings.Contains(text, keyword) && strings.Contains(lower, keyword) {
				return &AIAnswer{Response: f.Answer, Confidence: 90, Source: SourceFAQKeyword, MatchedData: f}
			}
		}
	}

	for _, p := range products {
		name := strings.ToLower(strings.TrimSpace(p.ProductName))
		if name == "" || !strings.Contains(lower, name) {
			continue
		}
		return &AIAnswer{
			Response:    fmt.Sprintf("The %s is $%.2f and we have %d in stock.", p.ProductName, p.Price, p.StockQuantity),
			Confidence:  95,
			Source:      SourceProduct,
			MatchedData: p,
		}
	}
	return nil
}
