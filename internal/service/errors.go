// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Server-side errors.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrCodeTooLarge        = errors.New("code snippet is too large")
	ErrUserMismatch        = errors.New("user id does not match the token")
	ErrRateLimited         = errors.New("rate limit exceeded")
	ErrDailyQuotaExceeded  = errors.New("daily quota exceeded")
	ErrModelUnavailable    = errors.New("model call failed")
)

// Errors shared by the client and the server.
var (
	ErrEmptyPrompt = errors.New("prompt text is empty")
)

// Client-side errors.
var (
	ErrEmptyCredentials = errors.New("username and password are required")
	ErrNoCredential     = errors.New("no active session credential")
	ErrRequestInFlight  = errors.New("a chat request is already in flight")

	ErrRegisterOnServer = errors.New("error registering on server")
	ErrLoginOnServer    = errors.New("error logging in on server")
	ErrChatOnServer     = errors.New("error sending prompt to server")
	ErrSavingSession    = errors.New("error saving session")
)
