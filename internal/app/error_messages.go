// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer message strings used by the
// code-tutor server handlers and by the terminal client.
//
// Server-side Msg* constants are written into the "error" or "message" field
// of JSON response bodies. Client-side fallbacks are shown when a failed
// exchange carries no usable message.
package app

// Server response messages.
const (
	// MsgCredentialsRequired is returned by /register and /login when the
	// username or password is missing.
	MsgCredentialsRequired = "Username and password are required"

	// MsgUsernameAlreadyExists is returned by /register for a taken name.
	MsgUsernameAlreadyExists = "Username already exists"

	// MsgUserRegistered is the /register success message.
	MsgUserRegistered = "User registered successfully"

	// MsgInvalidLoginPassword is returned by /login when the account does
	// not exist or the password does not match.
	MsgInvalidLoginPassword = "Invalid username or password"

	// MsgNoTokenProvided is returned when /chat is called without a bearer
	// token.
	MsgNoTokenProvided = "No token provided"

	// MsgTokenIsExpiredOrInvalid is returned when the bearer token cannot
	// be verified.
	MsgTokenIsExpiredOrInvalid = "Invalid or expired token"

	// MsgInvalidDataProvided is returned when a request body cannot be
	// decoded.
	MsgInvalidDataProvided = "Invalid request body"

	// MsgEmptyPrompt is returned by /chat when neither text nor code is
	// given.
	MsgEmptyPrompt = "Message text is required"

	// MsgUnsupportedLanguage is returned by /chat for an unknown lang tag.
	MsgUnsupportedLanguage = "Unsupported language"

	// MsgCodeTooLarge is the error code of an oversized snippet.
	MsgCodeTooLarge = "code_too_large"

	// MsgCodeTooLargeHint accompanies [MsgCodeTooLarge].
	MsgCodeTooLargeHint = "Please paste a smaller snippet (<= %d lines) or share a repro gist."

	// MsgUserMismatch is returned when the body user_id is not the token's
	// subject.
	MsgUserMismatch = "user_id does not match the token"

	// MsgRateLimited is returned when the per-minute budget is spent.
	MsgRateLimited = "rate_limited"

	// MsgRateLimitedHint accompanies [MsgRateLimited].
	MsgRateLimitedHint = "Too many requests. Please wait a moment and try again."

	// MsgDailyQuotaExceeded is returned when the daily budget is spent.
	MsgDailyQuotaExceeded = "daily_quota_exceeded"

	// MsgDailyQuotaExceededHint accompanies [MsgDailyQuotaExceeded].
	MsgDailyQuotaExceededHint = "Daily request limit reached. Please come back tomorrow."

	// MsgModelUnavailable is returned when the model call fails.
	MsgModelUnavailable = "The tutor is unavailable right now. Please try again."

	// MsgInternalServerError is returned for unexpected server failures.
	MsgInternalServerError = "Internal server error"
)

// Client fallbacks used when a failure carries no service message.
const (
	MsgLoginFailed        = "Login failed"
	MsgRegistrationFailed = "Registration failed"
	MsgChatRequestFailed  = "Chat request failed"
	MsgNotLoggedIn        = "Please log in first"
	MsgSessionNotSaved    = "Could not save the session locally"

	// MsgServerUnavailable replaces transport errors in the TUI.
	MsgServerUnavailable = "Network unavailable or server is down"
)
