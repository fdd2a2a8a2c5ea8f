package calc

import (
	"math"
	"strconv"
	"strings"
)

// ParseExpenses splits a raw comma-separated expense string into the numeric
// tokens it contains. Tokens that fail to parse are dropped silently: the
// input often comes from free-text AI extraction and may contain stray
// fragments, and tolerating them beats rejecting the whole entry. Tokens that
// parse but are not finite ("NaN", "inf") are dropped too; a single NaN would
// otherwise poison every balance downstream.
func ParseExpenses(input string) []float64 {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	var amounts []float64
	for _, token := range strings.Split(input, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		amounts = append(amounts, v)
	}
	return amounts
}

// SumExpenses returns the sum of the parsable tokens in a raw expense string.
// An empty string sums to 0.
func SumExpenses(input string) float64 {
	var total float64
	for _, v := range ParseExpenses(input) {
		total += v
	}
	return total
}
