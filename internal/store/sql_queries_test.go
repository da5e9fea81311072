// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSaveSessionQuery(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	query, args, err := buildSaveSessionQuery("t", "1", `{"username":"u"}`, at)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into session")
	assert.Contains(t, q, "on conflict (id) do update set")
	assert.Contains(t, query, "?")
	assert.NotContains(t, query, "$1")
	assert.Equal(t, []any{sessionRowID, "t", "1", `{"username":"u"}`, at}, args)
}

func TestBuildLoadAndDeleteSessionQuery(t *testing.T) {
	query, args, err := buildLoadSessionQuery()
	require.NoError(t, err)
	assert.Equal(t, "SELECT token, user_id, user_data, saved_at FROM session WHERE id = ?", query)
	assert.Equal(t, []any{sessionRowID}, args)

	query, args, err = buildDeleteSessionQuery()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM session WHERE id = ?", query)
	assert.Equal(t, []any{sessionRowID}, args)
}

func TestBuildUserQueries(t *testing.T) {
	query, args, err := buildCreateUserQuery("alice", "hash")
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO users (username,password_hash) VALUES ($1,$2) RETURNING user_id, username, password_hash, created_at", query)
	assert.Equal(t, []any{"alice", "hash"}, args)

	query, args, err = buildFindUserByUsernameQuery("alice")
	require.NoError(t, err)
	assert.Equal(t, "SELECT user_id, username, password_hash, created_at FROM users WHERE username = $1", query)
	assert.Equal(t, []any{"alice"}, args)
}

func TestBuildAppendHistoryQuery(t *testing.T) {
	query, args, err := buildAppendHistoryQuery(7, []historyRow{
		{role: "user", text: "q"},
		{role: "model", text: "a"},
	})
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO chat_history (user_id,role,text) VALUES ($1,$2,$3),($4,$5,$6)", query)
	assert.Equal(t, []any{int64(7), "user", "q", int64(7), "model", "a"}, args)

	_, _, err = buildAppendHistoryQuery(7, nil)
	assert.ErrorIs(t, err, ErrBuildingSQLQuery)
}

func TestBuildRecentHistoryQuery(t *testing.T) {
	query, args, err := buildRecentHistoryQuery(7, 10)
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, user_id, role, text, created_at FROM chat_history WHERE user_id = $1 ORDER BY id DESC LIMIT 10", query)
	assert.Equal(t, []any{int64(7)}, args)
}
