package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenTypeAccess = "ACCESS"

	accessTokenTTL = 15 * time.Minute

	// RefreshTokenTTL bounds both the session row and its DB expiry.
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// Claims carried by an access token: who the actor is and what it may do.
type Claims struct {
	SubjectID string   `json:"sub_id"`
	Role      string   `json:"role"`
	Access    []string `json:"access,omitempty"`
	TokenType string   `json:"token_type"`
	jwt.RegisteredClaims
}

// Manager signs and verifies access tokens with a single HS256 key injected
// at startup.
type Manager struct {
	key []byte
}

func NewManager(secret string) (*Manager, error) {
	if secret == "" {
		return nil, errors.New("jwt signing secret is empty")
	}
	return &Manager{key: []byte(secret)}, nil
}

// IssueAccessToken creates a short-lived access token for authenticated API
// usage. Access scopes are only set for back-office admins.
func (m *Manager) IssueAccessToken(subjectID, role string, access []string) (string, error) {
	claims := &Claims{
		SubjectID: subjectID,
		Role:      role,
		Access:    access,
		TokenType: tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(accessTokenTTL)),
			Issuer:    "kartikay-signage",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.key)
}

// ValidateAccessToken parses and verifies signature, expiry and token type.
func (m *Manager) ValidateAccessToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return m.key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.TokenType != tokenTypeAccess {
		return nil, errors.New("invalid token type: access token required")
	}
	return claims, nil
}
