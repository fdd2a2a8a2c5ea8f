// Package assist provides the text helpers behind smart expense entry and
// settlement message drafting. A regex extractor and a template drafter
// work offline; the Gemini client upgrades both when an API key is
// configured.
package assist

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/akaul/fairsplit/internal/calc"
)

var amountPattern = regexp.MustCompile(`(\d+(\.\d+)?)`)

// extractAmounts pulls every numeric token out of free-form text.
func extractAmounts(text string) []float64 {
	matches := amountPattern.FindAllString(text, -1)
	amounts := make([]float64, 0, len(matches))
	for _, m := range matches {
		v, err := strconv.ParseFloat(m, 64)
		if err != nil {
			continue
		}
		amounts = append(amounts, v)
	}
	return amounts
}

// RegexExtractor extracts expense amounts without any external service.
type RegexExtractor struct{}

// NewRegexExtractor creates an offline amount extractor.
func NewRegexExtractor() *RegexExtractor {
	return &RegexExtractor{}
}

// ExtractAmounts returns every numeric amount found in the text.
func (e *RegexExtractor) ExtractAmounts(ctx context.Context, text string) ([]float64, error) {
	return extractAmounts(text), nil
}

// TemplateDrafter writes the settlement message from a fixed template.
type TemplateDrafter struct{}

// NewTemplateDrafter creates an offline settlement message drafter.
func NewTemplateDrafter() *TemplateDrafter {
	return &TemplateDrafter{}
}

// DraftSettlementMessage lists each transfer on its own line.
func (d *TemplateDrafter) DraftSettlementMessage(ctx context.Context, transactions []calc.Transaction) (string, error) {
	var b strings.Builder
	b.WriteString("Hey everyone! Here's how we settle up:\n")
	for _, tx := range transactions {
		fmt.Fprintf(&b, "- %s pays %s %d\n", tx.From, tx.To, tx.Amount)
	}
	b.WriteString("Thanks!")
	return b.String(), nil
}
