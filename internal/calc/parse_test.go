package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSumExpenses(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "empty string", input: "", want: 0},
		{name: "whitespace only", input: "   ", want: 0},
		{name: "single value", input: "120", want: 120},
		{name: "multiple values with spaces", input: "100, 200 , 50.5", want: 350.5},
		{name: "invalid tokens dropped silently", input: "100, lunch, 200, ", want: 300},
		{name: "all invalid", input: "rent, wifi", want: 0},
		{name: "negative values allowed", input: "100, -20", want: 80},
		{name: "non-finite tokens dropped", input: "NaN, 900, inf, -Infinity", want: 900},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SumExpenses(tt.input))
		})
	}
}

func TestParseExpenses(t *testing.T) {
	assert.Equal(t, []float64{120, 45.5}, ParseExpenses("120, oops, 45.5"))
	assert.Nil(t, ParseExpenses(""))
}
