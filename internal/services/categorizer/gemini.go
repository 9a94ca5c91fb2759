package categorizer

import (
	"context"
	"fmt"
	"log"
	"strings"

	"fintrack/internal/models"
	"fintrack/internal/money"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// HistoryStore supplies the user's recent categorized spending as
// few-shot examples for the model.
type HistoryStore interface {
	RecentCategorized(userID uint, limit int) ([]models.LedgerEntry, error)
}

// Gemini categorizes transactions with a Gemini model, learning from
// the user's own categorization history.
type Gemini struct {
	client  *genai.Client
	model   string
	history HistoryStore
}

// NewGemini creates a Gemini-backed categorizer. The returned value is
// nil-safe: a nil *Gemini categorizes everything as Uncategorized, so
// callers can wire it unconditionally and run without an API key.
func NewGemini(ctx context.Context, apiKey, model string, history HistoryStore) (*Gemini, error) {
	if apiKey == "" {
		log.Println("GEMINI_API_KEY missing, transfers will be uncategorized")
		return nil, nil
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &Gemini{client: client, model: model, history: history}, nil
}

func (g *Gemini) Categorize(ctx context.Context, userID uint, title string, amount int64) string {
	if g == nil || g.client == nil {
		return CategoryUncategorized
	}

	var examples []models.LedgerEntry
	if g.history != nil {
		entries, err := g.history.RecentCategorized(userID, 10)
		if err != nil {
			log.Printf("categorizer: failed to load history for user %d: %v", userID, err)
		} else {
			examples = entries
		}
	}

	prompt := buildPrompt(examples, title, amount)
	resp, err := g.client.GenerativeModel(g.model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("categorizer: gemini call failed: %v", err)
		return CategoryOthers
	}

	category := extractText(resp)
	if category == "" {
		return CategoryOthers
	}
	return category
}

// buildPrompt assembles the few-shot classification prompt. Without
// history it falls back to two canned examples so the model still sees
// the expected output shape.
func buildPrompt(history []models.LedgerEntry, title string, amount int64) string {
	var examples strings.Builder
	if len(history) == 0 {
		examples.WriteString("Input: \"Zomato Order\" -> Category: Food\n")
		examples.WriteString("Input: \"Uber Ride\" -> Category: Transport")
	} else {
		for i, entry := range history {
			if i > 0 {
				examples.WriteString("\n")
			}
			fmt.Fprintf(&examples, "Input: %q -> Category: %s", entry.Title, entry.Category)
		}
	}

	return fmt.Sprintf(`You are a financial assistant. Categorize the transaction into one of these buckets:
[%s]

Strict Rules:
- Return ONLY the category name. No sentences.
- Learn from the user's past examples below.

User's Past Examples (Pattern to follow):
%s

New Transaction:
Input: %q (Amount: %.2f)
Category:`, strings.Join(Buckets, ", "), examples.String(), title, money.FromMinor(amount))
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			return strings.TrimSpace(string(text))
		}
	}
	return ""
}
