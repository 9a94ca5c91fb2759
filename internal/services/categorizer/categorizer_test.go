package categorizer

import (
	"context"
	"strings"
	"testing"

	"fintrack/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestStaticFallback(t *testing.T) {
	assert.Equal(t, "Food", Static{Category: "Food"}.Categorize(context.Background(), 1, "Zomato", 100))
	assert.Equal(t, CategoryOthers, Static{}.Categorize(context.Background(), 1, "Zomato", 100))
}

func TestNilGeminiIsSafe(t *testing.T) {
	var g *Gemini
	assert.Equal(t, CategoryUncategorized, g.Categorize(context.Background(), 1, "anything", 100))
}

func TestBuildPromptWithHistory(t *testing.T) {
	history := []models.LedgerEntry{
		{Title: "Sent to Ravi - chai", Category: "Food"},
		{Title: "Metro card recharge", Category: "Transport"},
	}

	prompt := buildPrompt(history, "Sent to Ravi - dinner", 45_000)

	for _, bucket := range Buckets {
		assert.Contains(t, prompt, bucket)
	}
	assert.Contains(t, prompt, `Input: "Sent to Ravi - chai" -> Category: Food`)
	assert.Contains(t, prompt, `Input: "Metro card recharge" -> Category: Transport`)
	assert.Contains(t, prompt, `Input: "Sent to Ravi - dinner" (Amount: 450.00)`)
	assert.True(t, strings.HasSuffix(prompt, "Category:"))
}

func TestBuildPromptWithoutHistory(t *testing.T) {
	prompt := buildPrompt(nil, "Sent to Ravi", 10_000)

	// Canned examples stand in when the user has no categorized
	// history yet.
	assert.Contains(t, prompt, `Input: "Zomato Order" -> Category: Food`)
	assert.Contains(t, prompt, `Input: "Uber Ride" -> Category: Transport`)
}
