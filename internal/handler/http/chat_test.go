package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-code-tutor/internal/app"
	"github.com/MKhiriev/go-code-tutor/internal/service"
	"github.com/MKhiriev/go-code-tutor/internal/utils"
	"github.com/MKhiriev/go-code-tutor/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const chatBody = `{"user_id":"7","user_text":"explain this","code":"` + "```python\\nprint(1)\\n```" + `","lang":"python"}`

var bearer = map[string]string{"Authorization": "Bearer tok"}

// expectToken makes the auth middleware accept "tok" as user 7.
func expectToken(m testMocks) {
	m.auth.EXPECT().ParseToken(gomock.Any(), "tok").Return(models.Token{UserID: 7}, nil)
}

func TestChat_Success(t *testing.T) {
	h, m := newTestHandler(t)
	expectToken(m)

	wantReq := models.ChatRequest{
		UserID:   "7",
		UserText: "explain this",
		Code:     "```python\nprint(1)\n```",
		Lang:     "python",
	}
	m.chat.EXPECT().Chat(gomock.Any(), int64(7), wantReq).
		DoAndReturn(func(ctx context.Context, userID int64, req models.ChatRequest) (models.ChatResponse, error) {
			fromCtx, ok := utils.GetUserIDFromContext(ctx)
			assert.True(t, ok)
			assert.Equal(t, int64(7), fromCtx)
			return models.ChatResponse{
				Text:          "It prints 1.",
				UsageMetadata: &models.UsageMetadata{TotalTokenCount: 12},
			}, nil
		})

	rr := serve(h, http.MethodPost, "/chat", chatBody, bearer)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "It prints 1.", resp.Text)
	require.NotNil(t, resp.UsageMetadata)
	assert.Equal(t, int32(12), resp.UsageMetadata.TotalTokenCount)
}

func TestChat_ServiceErrors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantError   string
		wantMessage string
	}{
		{
			name:        "code too large",
			err:         service.ErrCodeTooLarge,
			wantStatus:  http.StatusBadRequest,
			wantError:   "code_too_large",
			wantMessage: "Please paste a smaller snippet (<= 150 lines) or share a repro gist.",
		},
		{
			name:        "rate limited",
			err:         service.ErrRateLimited,
			wantStatus:  http.StatusTooManyRequests,
			wantError:   app.MsgRateLimited,
			wantMessage: app.MsgRateLimitedHint,
		},
		{
			name:        "daily quota",
			err:         service.ErrDailyQuotaExceeded,
			wantStatus:  http.StatusTooManyRequests,
			wantError:   app.MsgDailyQuotaExceeded,
			wantMessage: app.MsgDailyQuotaExceededHint,
		},
		{
			name:       "user mismatch",
			err:        service.ErrUserMismatch,
			wantStatus: http.StatusForbidden,
			wantError:  app.MsgUserMismatch,
		},
		{
			name:       "model failure",
			err:        fmt.Errorf("%w: upstream 503", service.ErrModelUnavailable),
			wantStatus: http.StatusBadGateway,
			wantError:  app.MsgModelUnavailable,
		},
		{
			name:       "empty prompt",
			err:        service.ErrEmptyPrompt,
			wantStatus: http.StatusBadRequest,
			wantError:  app.MsgEmptyPrompt,
		},
		{
			name:       "unsupported language",
			err:        fmt.Errorf("%w: cobol", service.ErrUnsupportedLanguage),
			wantStatus: http.StatusBadRequest,
			wantError:  app.MsgUnsupportedLanguage,
		},
		{
			name:       "unexpected",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantError:  app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			expectToken(m)
			m.chat.EXPECT().Chat(gomock.Any(), int64(7), gomock.Any()).Return(models.ChatResponse{}, tt.err)

			rr := serve(h, http.MethodPost, "/chat", chatBody, bearer)

			assert.Equal(t, tt.wantStatus, rr.Code)
			body := decodeErrorBody(t, rr)
			assert.Equal(t, tt.wantError, body.Error)
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}

func TestChat_InvalidJSON(t *testing.T) {
	h, m := newTestHandler(t)
	expectToken(m)

	rr := serve(h, http.MethodPost, "/chat", "{", bearer)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, decodeErrorBody(t, rr).Error)
}

func TestChat_RequiresToken(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := serve(h, http.MethodPost, "/chat", chatBody, nil)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, app.MsgNoTokenProvided, decodeErrorBody(t, rr).Error)
}
