package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kartikay_signage/internal/store"
)

// pngHeader is enough for content-type sniffing to say image/png.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func uploadRequest(t *testing.T, env *testEnv, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", env.bearer(t, store.RoleAdmin, store.AccessProductUpload))
	return env.do(req)
}

func TestUploadRequiresFile(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/upload", strings.NewReader(""))
	req.Header.Set("Authorization", env.bearer(t, store.RoleAdmin, store.AccessProductUpload))
	w := env.do(req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No file provided")
}

func TestUploadRejectsNonImage(t *testing.T) {
	env := newTestEnv(t)

	w := uploadRequest(t, env, "notes.txt", []byte("just some text"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Only image uploads are allowed")
	assert.Empty(t, env.uploader.key)
}

func TestUploadStoresImage(t *testing.T) {
	env := newTestEnv(t)

	w := uploadRequest(t, env, "logo.png", pngHeader)
	require.Equal(t, http.StatusOK, w.Code)

	assert.True(t, strings.HasPrefix(env.uploader.key, "neon-signs/"), env.uploader.key)
	assert.True(t, strings.HasSuffix(env.uploader.key, "-logo.png"), env.uploader.key)
	assert.Equal(t, "image/png", env.uploader.contentType)
	assert.Equal(t, pngHeader, env.uploader.body)
	assert.Contains(t, w.Body.String(), "https://assets.example.com/neon-signs/")
}

func TestUploadRequiresProductUploadScope(t *testing.T) {
	env := newTestEnv(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "logo.png")
	require.NoError(t, err)
	_, err = fw.Write(pngHeader)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", env.bearer(t, store.RoleAdmin, store.AccessDashboard))
	w := env.do(req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
