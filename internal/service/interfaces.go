// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-code-tutor/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers accounts, verifies credentials and manages JWTs.
type AuthService interface {
	// RegisterUser hashes the password and stores a new account. A taken
	// username is reported as store.ErrUsernameAlreadyExists.
	RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error)

	// Login returns the account matching creds or an error wrapping
	// ErrWrongPassword / store.ErrNoUserWasFound.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// CreateToken issues a signed JWT whose subject is the user id.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT and returns its claims.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ChatService answers one prompt of an authenticated user.
type ChatService interface {
	// Chat validates req, enforces the user's limits, sends the prompt with
	// recent history to the model and records the exchange.
	Chat(ctx context.Context, userID int64, req models.ChatRequest) (models.ChatResponse, error)
}

// AppInfoService exposes build metadata over the API.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
