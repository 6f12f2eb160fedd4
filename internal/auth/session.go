package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"kartikay_signage/internal/store"
)

// Subject kinds stored on session rows.
const (
	SubjectCustomer = "CUSTOMER"
	SubjectAdmin    = "ADMIN"
)

// ErrInvalidSession covers every refresh failure: unknown, expired, revoked
// or forged tokens all look the same to the caller.
var ErrInvalidSession = errors.New("invalid or expired session")

// SessionManager issues opaque refresh tokens of the form
// "<session-id>.<secret>". The secret is random and stored bcrypt-hashed, so
// a leaked sessions table cannot be replayed.
type SessionManager struct {
	sessions *store.SessionStore
}

func NewSessionManager(sessions *store.SessionStore) *SessionManager {
	return &SessionManager{sessions: sessions}
}

// Issue creates a refresh session for a signed-in subject and returns the
// one-time-visible token.
func (m *SessionManager) Issue(ctx context.Context, subjectID, subjectKind string) (string, error) {
	sessionID := uuid.New().String()
	secret := uuid.New().String()

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	err = m.sessions.CreateSession(ctx, store.Session{
		ID:          sessionID,
		SubjectID:   subjectID,
		SubjectKind: subjectKind,
		TokenHash:   string(hash),
		ExpiresAt:   time.Now().Add(RefreshTokenTTL),
	})
	if err != nil {
		return "", err
	}

	return sessionID + "." + secret, nil
}

// Redeem verifies a refresh token and returns the session it belongs to.
func (m *SessionManager) Redeem(ctx context.Context, token string) (*store.Session, error) {
	sessionID, secret, ok := strings.Cut(token, ".")
	if !ok || sessionID == "" || secret == "" {
		return nil, ErrInvalidSession
	}

	sess, err := m.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil || time.Now().After(sess.ExpiresAt) {
		return nil, ErrInvalidSession
	}

	if bcrypt.CompareHashAndPassword([]byte(sess.TokenHash), []byte(secret)) != nil {
		return nil, ErrInvalidSession
	}
	return sess, nil
}

// Revoke deletes the session behind a refresh token (logout). Forged tokens
// are ignored.
func (m *SessionManager) Revoke(ctx context.Context, token string) error {
	sess, err := m.Redeem(ctx, token)
	if errors.Is(err, ErrInvalidSession) {
		return nil
	} else if err != nil {
		return err
	}
	return m.sessions.DeleteSession(ctx, sess.ID)
}
