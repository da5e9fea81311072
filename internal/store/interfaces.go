// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-code-tutor/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository stores server accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with the server-assigned id and
	// creation time. A taken username yields [ErrUsernameAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the account named username or
	// [ErrNoUserWasFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// HistoryRepository stores the conversation turns of every user.
type HistoryRepository interface {
	// AppendTurns stores turns for userID in order.
	AppendTurns(ctx context.Context, userID int64, turns ...models.ConversationTurn) error

	// RecentTurns returns at most limit of the newest turns of userID in
	// chronological order.
	RecentTurns(ctx context.Context, userID int64, limit int) ([]models.ConversationTurn, error)
}
