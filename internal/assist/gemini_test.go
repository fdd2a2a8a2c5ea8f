package assist

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akaul/fairsplit/internal/calc"
)

func newGeminiServer(t *testing.T, reply string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Contents)

		resp := geminiResponse{}
		resp.Candidates = append(resp.Candidates, struct {
			Content geminiContent `json:"content"`
		}{Content: geminiContent{Parts: []geminiPart{{Text: reply}}}})
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func TestGemini_ExtractAmounts(t *testing.T) {
	server := newGeminiServer(t, "120, 45.5")
	defer server.Close()

	g := NewGemini("test-key", "")
	g.baseURL = server.URL

	amounts, err := g.ExtractAmounts(context.Background(), "spent 120 on groceries and 45.5 on gas")
	require.NoError(t, err)
	assert.Equal(t, []float64{120, 45.5}, amounts)
}

func TestGemini_DraftSettlementMessage(t *testing.T) {
	server := newGeminiServer(t, "  Hey! Ben pays Ana 450. Thanks!  ")
	defer server.Close()

	g := NewGemini("test-key", "")
	g.baseURL = server.URL

	message, err := g.DraftSettlementMessage(context.Background(), []calc.Transaction{
		{From: "Ben", To: "Ana", Amount: 450},
	})
	require.NoError(t, err)
	assert.Equal(t, "Hey! Ben pays Ana 450. Thanks!", message)
}

func TestGemini_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	g := NewGemini("test-key", "")
	g.baseURL = server.URL

	_, err := g.ExtractAmounts(context.Background(), "120")
	assert.Error(t, err)
}

func TestGemini_ModelSelection(t *testing.T) {
	var requestPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestPath = r.URL.Path
		resp := geminiResponse{}
		resp.Candidates = append(resp.Candidates, struct {
			Content geminiContent `json:"content"`
		}{Content: geminiContent{Parts: []geminiPart{{Text: "ok"}}}})
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	g := NewGemini("test-key", "gemini-2.5-pro")
	g.baseURL = server.URL

	_, err := g.ExtractAmounts(context.Background(), "120")
	require.NoError(t, err)
	assert.Equal(t, "/models/gemini-2.5-pro:generateContent", requestPath)
}

func TestNewGemini_DefaultModel(t *testing.T) {
	assert.Equal(t, defaultGeminiModel, NewGemini("test-key", "").model)
}
