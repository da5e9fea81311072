// Package migrations embeds the SQL schema of both binaries and applies it
// with goose. The client keeps its session in SQLite, the server keeps users
// and chat history in PostgreSQL.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

// Set selects which embedded migration directory is applied.
type Set struct {
	dir     string
	dialect goose.Dialect
}

var (
	// Client is the SQLite session schema.
	Client = Set{dir: "client", dialect: goose.DialectSQLite3}
	// Server is the PostgreSQL users and chat-history schema.
	Server = Set{dir: "server", dialect: goose.DialectPostgres}
)

//go:embed client/*.sql server/*.sql
var embedMigrations embed.FS

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

// Migrate applies every pending migration of set to db.
func Migrate(db *sql.DB, set Set) error {
	if db == nil {
		return errors.New("migration error: nil database")
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(string(set.dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, set.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
