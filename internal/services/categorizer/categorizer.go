// Package categorizer assigns spending categories to outgoing wallet
// transfers before they are mirrored into the general ledger.
package categorizer

import "context"

// Buckets are the only categories the categorizer may return.
var Buckets = []string{
	"Food", "Transport", "Utilities", "Entertainment",
	"Health", "Education", "Shopping", "Rent", "Others",
}

// Fallback categories.
const (
	CategoryOthers        = "Others"
	CategoryUncategorized = "Uncategorized"
)

// Categorizer picks a category for a transaction. Implementations
// never fail: on any internal error they return a fallback category so
// the mirror write can always proceed.
type Categorizer interface {
	Categorize(ctx context.Context, userID uint, title string, amount int64) string
}

// Static always returns a fixed category. It is the offline fallback
// and the test double.
type Static struct {
	Category string
}

func (s Static) Categorize(context.Context, uint, string, int64) string {
	if s.Category == "" {
		return CategoryOthers
	}
	return s.Category
}
