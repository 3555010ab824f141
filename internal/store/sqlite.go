// internal/store/sqlite.go
package store

import (
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/vchartered/backend/internal/domain/activity"
	"github.com/vchartered/backend/internal/domain/result"
	"github.com/vchartered/backend/internal/domain/user"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
    email TEXT PRIMARY KEY,
    username TEXT NOT NULL,
    password TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS results (
    email TEXT NOT NULL,
    subject TEXT NOT NULL,
    score INTEGER NOT NULL,
    date TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS activity_logs (
    email TEXT NOT NULL,
    action TEXT NOT NULL,
    details TEXT NOT NULL,
    timestamp TEXT NOT NULL
);
`

type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Users
// ============================================================================

// CreateUser inserts a new account. The email primary key makes duplicates
// impossible; a collision reports ErrDuplicate instead of a driver error.
func (s *SQLiteStore) CreateUser(u *user.User) error {
	res, err := s.db.Exec(
		"INSERT OR IGNORE INTO users (email, username, password) VALUES (?, ?, ?)",
		u.Email, u.Name, u.PasswordHash,
	)
	if err != nil {
		return err
	}
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrDuplicate
	}
	return nil
}

func (s *SQLiteStore) GetUser(email string) (*user.User, error) {
	var u user.User
	err := s.db.QueryRow(
		"SELECT email, username, password FROM users WHERE email = ?", email,
	).Scan(&u.Email, &u.Name, &u.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *SQLiteStore) ListUsers() ([]*user.User, error) {
	rows, err := s.db.Query("SELECT email, username FROM users")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.Email, &u.Name); err != nil {
			return nil, err
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}

// ============================================================================
// Results
// ============================================================================

func (s *SQLiteStore) SaveResult(r *result.Result) error {
	_, err := s.db.Exec(
		"INSERT INTO results (email, subject, score, date) VALUES (?, ?, ?, ?)",
		r.Email, r.Subject, r.Score, r.Date,
	)
	return err
}

// TopResults returns the highest scores, ties broken by insertion order.
func (s *SQLiteStore) TopResults(limit int) ([]*result.Result, error) {
	rows, err := s.db.Query(
		"SELECT email, subject, score, date FROM results ORDER BY score DESC, rowid ASC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*result.Result
	for rows.Next() {
		var r result.Result
		if err := rows.Scan(&r.Email, &r.Subject, &r.Score, &r.Date); err != nil {
			return nil, err
		}
		results = append(results, &r)
	}
	return results, rows.Err()
}

// ============================================================================
// Activity logs
// ============================================================================

func (s *SQLiteStore) AppendActivity(e *activity.Entry) error {
	_, err := s.db.Exec(
		"INSERT INTO activity_logs (email, action, details, timestamp) VALUES (?, ?, ?, ?)",
		e.Email, e.Action, e.Details, e.Timestamp,
	)
	return err
}

func (s *SQLiteStore) ListActivity() ([]*activity.Entry, error) {
	rows, err := s.db.Query(
		"SELECT email, action, details, timestamp FROM activity_logs ORDER BY timestamp DESC, rowid DESC",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*activity.Entry
	for rows.Next() {
		var e activity.Entry
		if err := rows.Scan(&e.Email, &e.Action, &e.Details, &e.Timestamp); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
