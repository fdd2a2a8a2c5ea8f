package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/akaul/fairsplit/internal/calc"
)

const (
	geminiBaseURL      = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel = "gemini-2.0-flash"
)

// ErrEmptyCompletion is returned when the model answers with no text.
var ErrEmptyCompletion = errors.New("empty completion from model")

// Gemini calls the Gemini generateContent API to extract amounts from text
// and to draft settlement messages. It satisfies both the extractor and
// drafter roles.
type Gemini struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewGemini creates a Gemini-backed assistant. An empty model selects the
// default.
func NewGemini(apiKey, model string) *Gemini {
	if model == "" {
		model = defaultGeminiModel
	}
	return &Gemini{
		apiKey:  apiKey,
		model:   model,
		baseURL: geminiBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// ExtractAmounts asks the model to list the expense amounts mentioned in
// the text, then parses the numbers out of its reply.
func (g *Gemini) ExtractAmounts(ctx context.Context, text string) ([]float64, error) {
	prompt := fmt.Sprintf(
		"Extract all expense amounts from the following text. "+
			"Reply with only the numeric amounts separated by commas, nothing else.\n\n%s",
		text,
	)

	reply, err := g.generateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return extractAmounts(reply), nil
}

// DraftSettlementMessage asks the model for a friendly message describing
// the transfers.
func (g *Gemini) DraftSettlementMessage(ctx context.Context, transactions []calc.Transaction) (string, error) {
	var lines strings.Builder
	for _, tx := range transactions {
		fmt.Fprintf(&lines, "%s pays %s %d\n", tx.From, tx.To, tx.Amount)
	}

	prompt := fmt.Sprintf(
		"Write a short, friendly group chat message asking everyone to settle "+
			"these shared expenses. Keep every name and amount exactly as given.\n\n%s",
		lines.String(),
	)

	reply, err := g.generateContent(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}

func (g *Gemini) generateContent(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call model: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("model returned status %d: %s", resp.StatusCode, payload)
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyCompletion
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
