// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer the terminal client uses to
// reach the code-tutor service.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from HTTP. Non-2xx responses are mapped to [*ServiceError] values
// that wrap a status sentinel, so callers can use [errors.Is] for
// classification (e.g. [ErrUnauthorized] for 401) and [errors.As] to read the
// service-provided message. Network failures wrap [ErrTransport]; 2xx replies
// with an undecodable or incomplete body wrap [ErrMalformedResponse].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-code-tutor/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the code-tutor service. Every call
// is a single attempt bounded by the adapter's request timeout and ctx.
type ServerAdapter interface {
	// Login posts creds to /login and returns the issued token together with
	// the user id and canonical username.
	Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error)

	// Register posts creds to /register. The success body carries no session;
	// callers log in afterwards.
	Register(ctx context.Context, creds models.Credentials) (models.RegisterResponse, error)

	// Chat posts one prompt to /chat with "Authorization: Bearer <token>".
	Chat(ctx context.Context, token string, req models.ChatRequest) (models.ChatResponse, error)
}
