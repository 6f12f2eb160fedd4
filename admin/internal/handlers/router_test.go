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

// stubUploader records the upload instead of talking to S3.
type stubUploader struct {
	key         string
	contentType string
	body        []byte
	err         error
}

func (s *stubUploader) Put(ctx context.Context, key, contentType string, body []byte) (string, error) {
	s.key, s.contentType, s.body = key, contentType, body
	if s.err != nil {
		return "", s.err
	}
	return "https://assets.example.com/" + key, nil
}

type testEnv struct {
	router   *gin.Engine
	mock     sqlmock.Sqlmock
	tokens   *auth.Manager
	google   *stubAuthenticator
	uploader *stubUploader
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	tokens, err := auth.NewManager("test-secret")
	require.NoError(t, err)

	env := &testEnv{
		mock:     mock,
		tokens:   tokens,
		google:   &stubAuthenticator{},
		uploader: &stubUploader{},
	}
	env.router = NewRouter(
		store.NewAdminStore(db),
		store.NewProductStore(db),
		store.NewSignStore(db),
		tokens,
		auth.NewSessionManager(store.NewSessionStore(db)),
		env.google,
		env.uploader,
	)
	return env
}

// bearer issues a valid access token for the given role and scopes.
func (e *testEnv) bearer(t *testing.T, role string, access ...string) string {
	t.Helper()
	token, err := e.tokens.IssueAccessToken("adm-1", role, access)
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
