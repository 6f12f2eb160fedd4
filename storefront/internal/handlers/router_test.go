package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"kartikay_signage/internal/auth"
	"kartikay_signage/internal/store"
)

// stubAuthenticator replaces the Google OAuth flow in handler tests.
type stubAuthenticator struct {
	profile *auth.Profile
	err     error
}

func (s *stubAuthenticator) LoginURL(state string) string {
	return "https://accounts.google.com/o/oauth2/auth?state=" + state
}

func (s *stubAuthenticator) Exchange(ctx context.Context, code string) (*auth.Profile, error) {
	return s.profile, s.err
}

type testEnv struct {
	router *gin.Engine
	mock   sqlmock.Sqlmock
	tokens *auth.Manager
	google *stubAuthenticator
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	tokens, err := auth.NewManager("test-secret")
	require.NoError(t, err)

	env := &testEnv{mock: mock, tokens: tokens, google: &stubAuthenticator{}}
	env.router = NewRouter(
		store.NewProductStore(db),
		store.NewSignStore(db),
		store.NewReviewStore(db),
		store.NewCustomerStore(db),
		tokens,
		auth.NewSessionManager(store.NewSessionStore(db)),
		env.google,
		nil, // no cache in tests, every read hits the mock DB
		nil, // no analytics socket in tests
		7,
	)
	return env
}

func (e *testEnv) bearer(t *testing.T, customerID string) string {
	t.Helper()
	token, err := e.tokens.IssueAccessToken(customerID, auth.SubjectCustomer, nil)
	require.NoError(t, err)
	return "Bearer " + token
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}
