// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "userID", UserIDCtxKey.String())
	assert.Equal(t, "traceID", TraceIDCtxKey.String())
}

func TestGetUserIDFromContext(t *testing.T) {
	userID, ok := GetUserIDFromContext(WithUserID(context.Background(), 42))
	assert.True(t, ok)
	assert.Equal(t, int64(42), userID)

	_, ok = GetUserIDFromContext(context.Background())
	assert.False(t, ok)

	_, ok = GetUserIDFromContext(context.WithValue(context.Background(), UserIDCtxKey, "42"))
	assert.False(t, ok, "wrong type must not be accepted")
}

func TestGetTraceIDFromContext(t *testing.T) {
	assert.Empty(t, GetTraceIDFromContext(context.Background()))

	ctx := context.WithValue(context.Background(), TraceIDCtxKey, "trace-1")
	assert.Equal(t, "trace-1", GetTraceIDFromContext(ctx))
}

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()
	a, b := g.Generate(), g.Generate()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}
