// Package journal persists reported solutions to a small embedded SQLite
// database, so the solutions of a long interactive session outlive the
// process and can be inspected with ordinary SQL. Nothing here reads them
// back: every run starts a new session and a fresh search. It is grounded in this
// codebase's lineage of opening a *sql.DB against a driver-specific DSN
// and issuing plain parameterized statements; unlike that lineage's
// multi-driver support (mysql/postgres/mssql/sqlite3), this domain needs
// exactly one embedded backend, so only modernc.org/sqlite (pure Go, no
// cgo) is wired in.
//
// The journal is an observability aid, never a participant in search
// semantics: a write failure is reported through the standard logger
// (log.Default) and otherwise swallowed, and dedup of reported solutions still happens
// in-memory in the search engine regardless of what the journal holds.
package journal

import (
	"database/sql"
	"encoding/hex"
	"log"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"bfsynth/internal/apperrors"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id TEXT PRIMARY KEY,
	target_hex TEXT NOT NULL,
	beta REAL NOT NULL,
	gamma REAL NOT NULL,
	started_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS solutions (
	session_id TEXT NOT NULL,
	seq INTEGER NOT NULL,
	program_text TEXT NOT NULL,
	min_len INTEGER NOT NULL,
	extrapolated_hex TEXT NOT NULL,
	steps INTEGER NOT NULL,
	halted INTEGER NOT NULL,
	found_at INTEGER NOT NULL,
	PRIMARY KEY (session_id, seq)
);
`

// Journal wraps a single SQLite-backed solution log.
type Journal struct {
	db  *sql.DB
	log *log.Logger
}

// Open opens (creating if absent) the SQLite file at path and migrates
// its schema.
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, apperrors.Wrap(err, "journal: open %s", path)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, apperrors.Wrap(err, "journal: migrate schema")
	}
	return &Journal{db: db, log: log.Default()}, nil
}

// RecordSession inserts the session header row; a row with the same id
// already present is left as it is.
func (j *Journal) RecordSession(id uuid.UUID, targetHex string, beta, gamma float64) {
	_, err := j.db.Exec(
		`INSERT OR IGNORE INTO sessions (id, target_hex, beta, gamma, started_at) VALUES (?, ?, ?, ?, ?)`,
		id.String(), targetHex, beta, gamma, time.Now().Unix(),
	)
	if err != nil {
		j.log.Printf("journal: record session: %v", err)
	}
}

// RecordSolution appends one reported solution to the journal. extrapolated
// is the runner's raw output bytes; the journal owns hex-encoding them for
// storage.
func (j *Journal) RecordSolution(sessionID uuid.UUID, seq int, text string, minLen int, extrapolated []byte, steps uint64, halted bool) {
	_, err := j.db.Exec(
		`INSERT OR REPLACE INTO solutions
			(session_id, seq, program_text, min_len, extrapolated_hex, steps, halted, found_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sessionID.String(), seq, text, minLen, hex.EncodeToString(extrapolated), int64(steps), halted, time.Now().Unix(),
	)
	if err != nil {
		j.log.Printf("journal: record solution: %v", err)
	}
}

// Close releases the underlying database handle.
func (j *Journal) Close() error {
	return j.db.Close()
}
