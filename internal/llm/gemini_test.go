package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/MKhiriev/go-code-tutor/internal/config"
	"github.com/MKhiriev/go-code-tutor/internal/logger"
	"github.com/MKhiriev/go-code-tutor/models"
)

type capturedRequest struct {
	Contents []struct {
		Role  string `json:"role"`
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
}

func newTestModel(t *testing.T, handler http.HandlerFunc) *geminiModel {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	m, err := newGeminiModel(context.Background(),
		config.LLM{APIKey: "test-key", Model: "gemini-test", Temperature: 0.2},
		genai.HTTPOptions{BaseURL: srv.URL + "/"},
		logger.Nop(),
	)
	require.NoError(t, err)
	return m
}

func TestGeminiModel_Generate_Success(t *testing.T) {
	var got capturedRequest

	m := newTestModel(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "gemini-test:generateContent"), r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"candidates": [{"content": {"role": "model", "parts": [{"text": "What does line 1 print?"}]}, "finishReason": "STOP"}],
			"usageMetadata": {"promptTokenCount": 12, "candidatesTokenCount": 7, "totalTokenCount": 19}
		}`))
	})

	history := []models.ConversationTurn{
		models.NewTurn(models.RoleUser, "hi"),
		{Role: models.RoleModel},
		models.NewTurn(models.RoleModel, "hello"),
	}

	resp, err := m.Generate(context.Background(), history, "explain\n\n```python\nprint(1)\n```")
	require.NoError(t, err)

	assert.Equal(t, "What does line 1 print?", resp.Text)
	require.NotNil(t, resp.UsageMetadata)
	assert.Equal(t, int32(19), resp.UsageMetadata.TotalTokenCount)

	require.Len(t, got.Contents, 3)
	assert.Equal(t, "user", got.Contents[0].Role)
	assert.Equal(t, "model", got.Contents[1].Role)
	assert.Equal(t, "user", got.Contents[2].Role)
	assert.Equal(t, "explain\n\n```python\nprint(1)\n```", got.Contents[2].Parts[0].Text)
}

func TestGeminiModel_Generate_EmptyReply(t *testing.T) {
	m := newTestModel(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates": []}`))
	})

	_, err := m.Generate(context.Background(), nil, "hi")
	assert.ErrorIs(t, err, ErrEmptyReply)
}

func TestGeminiModel_Generate_APIError(t *testing.T) {
	m := newTestModel(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"code": 400, "message": "API key not valid", "status": "INVALID_ARGUMENT"}}`))
	})

	_, err := m.Generate(context.Background(), nil, "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate content")
}

func TestToContent_MapsRoles(t *testing.T) {
	c := toContent(models.NewTurn(models.RoleModel, "a"))
	assert.Equal(t, string(genai.RoleModel), c.Role)
	require.Len(t, c.Parts, 1)
	assert.Equal(t, "a", c.Parts[0].Text)

	assert.Equal(t, string(genai.RoleUser), toContent(models.NewTurn(models.RoleUser, "q")).Role)
}
