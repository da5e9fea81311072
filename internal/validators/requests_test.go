package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-code-tutor/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestValidator(t *testing.T) {
	v := NewRequestValidator()
	require.NotNil(t, v)
}

// ── Dispatch ─────────────────────────────────────────────────────────────────

func TestValidate_Dispatch(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	creds := models.Credentials{Username: "alice", Password: "pw"}
	req := models.ChatRequest{UserID: "7", Lang: "go"}

	assert.NoError(t, v.Validate(ctx, creds))
	assert.NoError(t, v.Validate(ctx, &creds))
	assert.NoError(t, v.Validate(ctx, req))
	assert.NoError(t, v.Validate(ctx, &req))

	assert.ErrorIs(t, v.Validate(ctx, "string"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, models.User{}), ErrUnsupportedType)
}

func TestValidate_UnknownField(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{Username: "a", Password: "b"}, FieldLang), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(ctx, models.ChatRequest{}, FieldPassword), ErrUnknownField)
}

// ── Credentials ──────────────────────────────────────────────────────────────

func TestValidate_Credentials(t *testing.T) {
	tests := []struct {
		name    string
		creds   models.Credentials
		fields  []string
		wantErr error
	}{
		{name: "valid", creds: models.Credentials{Username: "alice", Password: "pw"}},
		{name: "padded username", creds: models.Credentials{Username: "  alice ", Password: "pw"}},
		{name: "empty username", creds: models.Credentials{Username: "", Password: "pw"}, wantErr: ErrEmptyUsername},
		{name: "blank username", creds: models.Credentials{Username: "   ", Password: "pw"}, wantErr: ErrEmptyUsername},
		{name: "long username", creds: models.Credentials{Username: strings.Repeat("a", MaxUsernameLength+1), Password: "pw"}, wantErr: ErrUsernameTooLong},
		{name: "username at limit", creds: models.Credentials{Username: strings.Repeat("é", MaxUsernameLength), Password: "pw"}},
		{name: "empty password", creds: models.Credentials{Username: "alice"}, wantErr: ErrEmptyPassword},
		{name: "long password", creds: models.Credentials{Username: "alice", Password: strings.Repeat("p", MaxPasswordLength+1)}, wantErr: ErrPasswordTooLong},
		{name: "only username checked", creds: models.Credentials{Username: "alice"}, fields: []string{FieldUsername}},
		{name: "first failing rule wins", creds: models.Credentials{}, fields: []string{FieldPassword, FieldUsername}, wantErr: ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRequestValidator().Validate(context.Background(), tt.creds, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── ChatRequest ──────────────────────────────────────────────────────────────

func TestValidate_ChatRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     models.ChatRequest
		fields  []string
		wantErr error
	}{
		{name: "empty request", req: models.ChatRequest{}},
		{name: "numeric user id", req: models.ChatRequest{UserID: "42"}},
		{name: "non-numeric user id", req: models.ChatRequest{UserID: "abc"}, wantErr: ErrInvalidUserID},
		{name: "zero user id", req: models.ChatRequest{UserID: "0"}, wantErr: ErrInvalidUserID},
		{name: "negative user id", req: models.ChatRequest{UserID: "-3"}, wantErr: ErrInvalidUserID},
		{name: "known language any case", req: models.ChatRequest{Lang: "TypeScript"}},
		{name: "lower-case tag", req: models.ChatRequest{Lang: "c++"}},
		{name: "unknown language", req: models.ChatRequest{Lang: "cobol"}, wantErr: ErrUnknownLanguage},
		{name: "blank language", req: models.ChatRequest{Lang: "  "}},
		{name: "language only", req: models.ChatRequest{UserID: "abc", Lang: "go"}, fields: []string{FieldLang}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRequestValidator().Validate(context.Background(), tt.req, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
