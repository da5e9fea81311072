// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-code-tutor/internal/config"
	"github.com/MKhiriev/go-code-tutor/internal/logger"
	"github.com/MKhiriev/go-code-tutor/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func newTestAdapter(t *testing.T, handler http.HandlerFunc) ServerAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return a
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// ── constructor ───────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "http://localhost:5000/", want: "http://localhost:5000"},
		{in: "localhost:5000", want: "http://localhost:5000"},
		{in: "  https://tutor.example  ", want: "https://tutor.example"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)
}

// ── Login ─────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, models.Credentials{Username: "u", Password: "p"}, creds)

		writeJSON(w, http.StatusOK, `{"token":"t","user_id":"1","username":"u"}`)
	})

	resp, err := a.Login(context.Background(), models.Credentials{Username: "u", Password: "p"})
	require.NoError(t, err)
	assert.Equal(t, models.LoginResponse{Token: "t", UserID: "1", Username: "u"}, resp)
}

func TestLogin_Unauthorized(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"error":"bad credentials"}`)
	})

	_, err := a.Login(context.Background(), models.Credentials{Username: "u", Password: "p"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)

	var svcErr *ServiceError
	require.True(t, errors.As(err, &svcErr))
	assert.Equal(t, http.StatusUnauthorized, svcErr.Status)
	assert.Equal(t, "bad credentials", svcErr.Text())
	assert.Equal(t, "bad credentials", MessageOr(err, "Login failed"))
}

func TestLogin_MissingToken(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"username":"u"}`)
	})

	_, err := a.Login(context.Background(), models.Credentials{Username: "u", Password: "p"})
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.NotErrorIs(t, err, ErrTransport)
}

func TestLogin_MalformedBody(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"token":`)
	})

	_, err := a.Login(context.Background(), models.Credentials{Username: "u", Password: "p"})
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.NotErrorIs(t, err, ErrTransport)
	assert.Equal(t, "Login failed", MessageOr(err, "Login failed"))
}

func TestLogin_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: addr, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	_, err = a.Login(context.Background(), models.Credentials{Username: "u", Password: "p"})
	assert.ErrorIs(t, err, ErrTransport)
}

func TestLogin_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: 50 * time.Millisecond}, logger.Nop())
	require.NoError(t, err)

	_, err = a.Login(context.Background(), models.Credentials{Username: "u", Password: "p"})
	assert.ErrorIs(t, err, ErrTransport)
}

// ── Register ──────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/register", r.URL.Path)
		writeJSON(w, http.StatusCreated, `{"message":"User registered successfully"}`)
	})

	resp, err := a.Register(context.Background(), models.Credentials{Username: "u", Password: "p"})
	require.NoError(t, err)
	assert.Equal(t, "User registered successfully", resp.Message)
}

func TestRegister_EmptySuccessBody(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	_, err := a.Register(context.Background(), models.Credentials{Username: "u", Password: "p"})
	assert.NoError(t, err)
}

func TestRegister_Conflict(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, `{"error":"Username already exists"}`)
	})

	_, err := a.Register(context.Background(), models.Credentials{Username: "u", Password: "p"})
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "Username already exists", MessageOr(err, "Registration failed"))
}

// ── Chat ──────────────────────────────────────────────────────────────────────

func TestChat_Success(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat", r.URL.Path)
		assert.Equal(t, "Bearer t", r.Header.Get("Authorization"))

		var req models.ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.ChatRequest{UserID: "1", UserText: "hi", Code: "", Lang: "python"}, req)

		writeJSON(w, http.StatusOK, `{"text":"hello","usage_metadata":{"prompt_token_count":3,"candidates_token_count":4,"total_token_count":7}}`)
	})

	resp, err := a.Chat(context.Background(), "t", models.ChatRequest{UserID: "1", UserText: "hi", Lang: "python"})
	require.NoError(t, err)
	assert.Equal(t, "hello", resp.Text)
	require.NotNil(t, resp.UsageMetadata)
	assert.Equal(t, int32(7), resp.UsageMetadata.TotalTokenCount)
}

func TestChat_ErrorPayloads(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		sentinel error
		want     string
	}{
		{"message preferred", http.StatusBadRequest, `{"error":"code_too_large","message":"Please paste a smaller snippet"}`, ErrBadRequest, "Please paste a smaller snippet"},
		{"error only", http.StatusUnauthorized, `{"error":"Invalid or expired token"}`, ErrUnauthorized, "Invalid or expired token"},
		{"message only", http.StatusTooManyRequests, `{"message":"Slow down"}`, ErrTooManyRequests, "Slow down"},
		{"no payload", http.StatusBadGateway, ``, ErrBadGateway, "Chat request failed"},
		{"non json", http.StatusInternalServerError, `oops`, ErrInternalServerError, "Chat request failed"},
		{"unexpected status", http.StatusTeapot, `{}`, ErrUnexpectedStatus, "Chat request failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, tt.body)
			})

			_, err := a.Chat(context.Background(), "t", models.ChatRequest{UserText: "x"})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.Equal(t, tt.want, MessageOr(err, "Chat request failed"))
		})
	}
}

func TestChat_CanceledContext(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"text":"late"}`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Chat(ctx, "t", models.ChatRequest{UserText: "x"})
	assert.ErrorIs(t, err, ErrTransport)
}

func TestServiceError_Error(t *testing.T) {
	assert.Equal(t, "http 401: nope", (&ServiceError{Status: 401, Reason: "nope"}).Error())
	assert.Equal(t, "http 502: Bad Gateway", (&ServiceError{Status: 502}).Error())
	assert.Equal(t, "fallback", MessageOr(errors.New("plain"), "fallback"))
}
