// Package sqldao stores accounts and messages in SQLite through database/sql.
// Statements are built with squirrel.
package sqldao

import (
	"database/sql"
	"errors"

	"github.com/dilshat/social-media/dao"
	"github.com/mattn/go-sqlite3"
)

var tables = []string{
	`account (
		account_id INTEGER PRIMARY KEY AUTOINCREMENT,
		username   VARCHAR(255) NOT NULL UNIQUE,
		password   VARCHAR(255) NOT NULL);`,

	`message (
		message_id        INTEGER PRIMARY KEY AUTOINCREMENT,
		posted_by         INTEGER NOT NULL,
		message_text      VARCHAR(255) NOT NULL,
		time_posted_epoch INTEGER NOT NULL);`,
}

//Open opens the sqlite file at path and creates missing tables
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err = Bootstrap(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

//Bootstrap creates tables and indexes that do not exist yet
func Bootstrap(db *sql.DB) error {
	for _, table := range tables {
		if _, err := db.Exec("CREATE TABLE IF NOT EXISTS " + table); err != nil {
			return err
		}
	}
	_, err := db.Exec("CREATE INDEX IF NOT EXISTS message_posted_by ON message (posted_by)")
	return err
}

//translate maps driver errors onto dao sentinel errors
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return dao.ErrNotFound
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return dao.ErrAlreadyExists
	}
	return err
}

func affectedOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return dao.ErrNotFound
	}
	return nil
}
