package assist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akaul/fairsplit/internal/calc"
)

func TestRegexExtractor_ExtractAmounts(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []float64
	}{
		{"plain amounts", "spent 120 on groceries and 45.5 on gas", []float64{120, 45.5}},
		{"no amounts", "nothing numeric here", []float64{}},
		{"decimal and integer mixed", "pizza 300.25, cab 80", []float64{300.25, 80}},
		{"amounts inside words", "room4 costs 250", []float64{4, 250}},
	}

	extractor := NewRegexExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractor.ExtractAmounts(context.Background(), tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTemplateDrafter_DraftSettlementMessage(t *testing.T) {
	drafter := NewTemplateDrafter()

	message, err := drafter.DraftSettlementMessage(context.Background(), []calc.Transaction{
		{From: "Ben", To: "Ana", Amount: 450},
		{From: "Cara", To: "Ana", Amount: 50},
	})
	require.NoError(t, err)

	assert.Contains(t, message, "Ben pays Ana 450")
	assert.Contains(t, message, "Cara pays Ana 50")
}
