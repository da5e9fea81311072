package validators

import (
	"context"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-code-tutor/models"
)

// Field names accepted by [RequestValidator].
const (
	// FieldUsername targets Credentials.Username; surrounding spaces are ignored.
	FieldUsername = "username"

	// FieldPassword targets Credentials.Password.
	FieldPassword = "password"

	// FieldUserID targets ChatRequest.UserID. An empty id is allowed and
	// means "the token's user".
	FieldUserID = "user_id"

	// FieldLang targets ChatRequest.Lang. An empty tag is allowed.
	FieldLang = "lang"
)

const (
	MaxUsernameLength = 64
	MaxPasswordLength = 256
)

// RequestValidator validates [models.Credentials] and [models.ChatRequest].
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.ChatRequest:
		return v.validateChatRequest(ctx, value, fields...)
	case *models.ChatRequest:
		return v.validateChatRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			username := strings.TrimSpace(creds.Username)
			if username == "" {
				return ErrEmptyUsername
			}
			if utf8.RuneCountInString(username) > MaxUsernameLength {
				return ErrUsernameTooLong
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
			if utf8.RuneCountInString(creds.Password) > MaxPasswordLength {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateChatRequest(_ context.Context, req models.ChatRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldLang}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if req.UserID == "" {
				continue
			}
			id, err := strconv.ParseInt(req.UserID, 10, 64)
			if err != nil || id <= 0 {
				return ErrInvalidUserID
			}
		case FieldLang:
			if strings.TrimSpace(req.Lang) == "" {
				continue
			}
			if _, err := models.ParseLanguage(req.Lang); err != nil {
				return ErrUnknownLanguage
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
