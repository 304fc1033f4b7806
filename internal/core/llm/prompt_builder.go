package llm

import (
	"fmt"
	"strings"
)

type KnowledgeBase struct {
	BusinessName string
	FAQs         []FAQ
	Products     []Product
}

type FAQ struct {
	Question string
	Answer   string
}

type Product struct {
	Name  string
	Price float64
	Stock int
}

// BuildSystemPrompt membuat system prompt dari knowledge base
func BuildSystemPrompt(kb *KnowledgeBase) string {
	var sb strings.Builder

	name := kb.BusinessName
	if name == "" {
		name = "a small business"
	}
	sb.WriteString(fmt.Sprintf("You are a helpful customer service assistant for %s.\n", name))
	sb.WriteString("Answer briefly and only with information you are given. If you do not know, say so politely.\n\n")

	if len(kb.FAQs) > 0 {
		sb.WriteString("=== FAQ ===\n")
		for _, faq := range kb.FAQs {
			sb.WriteString(fmt.Sprintf("Q: %s\nA: %s\n\n", faq.Question, faq.Answer))
		}
	}

	if len(kb.Products) > 0 {
		sb.WriteString("=== PRODUCTS ===\n")
		for _, p := range kb.Products {
			sb.WriteString(fmt.Sprintf("- %s: $%.2f (%d in stock)\n", p.Name, p.Price, p.Stock))
		}
	}

	return sb.String()
}
