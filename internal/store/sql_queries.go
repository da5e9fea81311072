package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	sessionTable = "session"
	sessionRowID = 1

	usersTable   = "users"
	historyTable = "chat_history"
)

// sqlite uses "?" placeholders, PostgreSQL "$n".
var (
	sqliteBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	postgresBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
)

// ── session (SQLite) ──────────────────────────────────────────────────────────

// buildSaveSessionQuery writes token and user data of the single session row
// in one upsert.
func buildSaveSessionQuery(token, userID, userData string, savedAt time.Time) (string, []any, error) {
	query, args, err := sqliteBuilder.
		Insert(sessionTable).
		Columns("id", "token", "user_id", "user_data", "saved_at").
		Values(sessionRowID, token, userID, userData, savedAt.UTC()).
		Suffix("ON CONFLICT (id) DO UPDATE SET " +
			"token = excluded.token, " +
			"user_id = excluded.user_id, " +
			"user_data = excluded.user_data, " +
			"saved_at = excluded.saved_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildLoadSessionQuery() (string, []any, error) {
	query, args, err := sqliteBuilder.
		Select("token", "user_id", "user_data", "saved_at").
		From(sessionTable).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteSessionQuery() (string, []any, error) {
	query, args, err := sqliteBuilder.
		Delete(sessionTable).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// ── users (PostgreSQL) ────────────────────────────────────────────────────────

func buildCreateUserQuery(username, passwordHash string) (string, []any, error) {
	query, args, err := postgresBuilder.
		Insert(usersTable).
		Columns("username", "password_hash").
		Values(username, passwordHash).
		Suffix("RETURNING user_id, username, password_hash, created_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindUserByUsernameQuery(username string) (string, []any, error) {
	query, args, err := postgresBuilder.
		Select("user_id", "username", "password_hash", "created_at").
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// ── chat history (PostgreSQL) ─────────────────────────────────────────────────

// historyRow is one flattened turn as stored in chat_history.
type historyRow struct {
	role string
	text string
}

func buildAppendHistoryQuery(userID int64, rows []historyRow) (string, []any, error) {
	if len(rows) == 0 {
		return "", nil, fmt.Errorf("%w: no rows to insert", ErrBuildingSQLQuery)
	}

	insert := postgresBuilder.
		Insert(historyTable).
		Columns("user_id", "role", "text")
	for _, r := range rows {
		insert = insert.Values(userID, r.role, r.text)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildRecentHistoryQuery selects the newest limit turns of userID, newest
// first; callers reverse the result.
func buildRecentHistoryQuery(userID int64, limit int) (string, []any, error) {
	query, args, err := postgresBuilder.
		Select("id", "user_id", "role", "text", "created_at").
		From(historyTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
