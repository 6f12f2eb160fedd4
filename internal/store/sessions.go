package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Session mirrors the 'sessions' table: one row per outstanding refresh
// token. Only the bcrypt hash of the token secret is stored.
type Session struct {
	ID          string
	SubjectID   string
	SubjectKind string // "CUSTOMER" or "ADMIN"
	TokenHash   string
	ExpiresAt   time.Time
}

type SessionStore struct {
	db *sql.DB
}

func NewSessionStore(db *sql.DB) *SessionStore {
	return &SessionStore{db: db}
}

// CreateSession saves a new refresh session.
func (s *SessionStore) CreateSession(ctx context.Context, sess Session) error {
	query := `
		INSERT INTO sessions (id, subject_id, subject_kind, token_hash, expires_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(ctx, query,
		sess.ID, sess.SubjectID, sess.SubjectKind, sess.TokenHash, sess.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// GetSession fetches a session by ID. Returns nil without an error when the
// session does not exist (revoked or never issued).
func (s *SessionStore) GetSession(ctx context.Context, id string) (*Session, error) {
	query := `
		SELECT id, subject_id, subject_kind, token_hash, expires_at
		FROM sessions
		WHERE id = $1
	`
	var sess Session
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&sess.ID, &sess.SubjectID, &sess.SubjectKind, &sess.TokenHash, &sess.ExpiresAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &sess, nil
}

// DeleteSession revokes a session (logout or rotation).
func (s *SessionStore) DeleteSession(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteExpired clears out stale sessions; the storefront runs it hourly.
func (s *SessionStore) DeleteExpired(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at < NOW()`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows, nil
}
