package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-code-tutor/internal/app"
	"github.com/MKhiriev/go-code-tutor/internal/service"
	"github.com/MKhiriev/go-code-tutor/internal/utils"
	"github.com/MKhiriev/go-code-tutor/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		parseErr  error
		wantError string
	}{
		{name: "no header", header: "", wantError: app.MsgNoTokenProvided},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", wantError: app.MsgNoTokenProvided},
		{name: "scheme only", header: "Bearer", wantError: app.MsgNoTokenProvided},
		{name: "bad token", header: "Bearer garbage", parseErr: service.ErrTokenIsExpiredOrInvalid, wantError: app.MsgTokenIsExpiredOrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			if tt.parseErr != nil {
				m.auth.EXPECT().ParseToken(gomock.Any(), "garbage").Return(models.Token{}, tt.parseErr)
			}

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { nextCalled = true })

			req := httptest.NewRequest(http.MethodPost, "/chat", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rr, req)

			assert.False(t, nextCalled)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, tt.wantError, decodeErrorBody(t, rr).Error)
		})
	}
}

func TestAuth_StoresUserID(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().ParseToken(gomock.Any(), "tok").Return(models.Token{UserID: 99}, nil)

	var gotID int64
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/chat", nil)
	req.Header.Set("Authorization", "bearer tok")
	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.True(t, gotOK)
	assert.Equal(t, int64(99), gotID)
}
