package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsdevblog/shortlinks/internal/config"
	"github.com/fsdevblog/shortlinks/internal/controllers"
	"github.com/fsdevblog/shortlinks/internal/controllers/middlewares"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		ServerAddress:       "127.0.0.1:0",
		SessionSecret:       "session-secret",
		SessionTTL:          time.Hour,
		NotesKey:            "notes-key",
		LogLevel:            "error",
		ClickRecordTimeout:  time.Second,
		MaxGenerateAttempts: 10,
		TLSCertFile:         filepath.Join(t.TempDir(), "tls", "cert.pem"),
		TLSKeyFile:          filepath.Join(t.TempDir(), "tls", "key.pem"),
	}
}

func do(t *testing.T, h http.Handler, method, target, body string, cookie *http.Cookie, csrf string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if strings.HasPrefix(body, "{") {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	}
	if csrf != "" {
		req.Header.Set(middlewares.CSRFHeader, csrf)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// ownerScenario проходит путь владельца: сессия, сокращение, переходы, детали, выключение.
func ownerScenario(t *testing.T, h http.Handler) {
	t.Helper()

	w := do(t, h, http.MethodPost, "/api/session", "", nil, "")
	require.Equal(t, http.StatusCreated, w.Code)
	var sess controllers.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sess))
	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == middlewares.SessionCookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)

	w = do(t, h, http.MethodPost, "/api/shorten", `{"url":"https://example.com/page","notes":"private"}`, cookie, sess.CSRFToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created controllers.CreateShortURLResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	for range 3 {
		w = do(t, h, http.MethodGet, "/s/"+created.ShortCode, "", nil, "")
		require.Equal(t, http.StatusTemporaryRedirect, w.Code)
		assert.Equal(t, "https://example.com/page", w.Header().Get("Location"))
	}

	w = do(t, h, http.MethodGet, "/api/user/urls", "", cookie, "")
	require.Equal(t, http.StatusOK, w.Code)
	var owned []controllers.URLSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &owned))
	require.Len(t, owned, 1)
	id := owned[0].ID

	w = do(t, h, http.MethodGet, "/api/user/urls/"+strconv.FormatUint(uint64(id), 10), "", cookie, "")
	require.Equal(t, http.StatusOK, w.Code)
	var detail controllers.URLDetailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, "private", detail.Notes)
	assert.Equal(t, uint64(3), detail.ClickCount)
	assert.Len(t, detail.RecentClicks, 3)

	w = do(t, h, http.MethodGet, "/api/search?q=EXAMPLE.com", "", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "private")

	w = do(t, h, http.MethodPatch, "/api/user/urls/"+strconv.FormatUint(uint64(id), 10), `{"isActive":false}`, cookie, sess.CSRFToken)
	require.Equal(t, http.StatusNoContent, w.Code)
	w = do(t, h, http.MethodGet, "/s/"+created.ShortCode, "", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, h, http.MethodDelete, "/api/user/urls/"+strconv.FormatUint(uint64(id), 10), "", cookie, sess.CSRFToken)
	require.Equal(t, http.StatusNoContent, w.Code)
	w = do(t, h, http.MethodGet, "/api/user/urls/"+strconv.FormatUint(uint64(id), 10), "", cookie, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApp_InMemory(t *testing.T) {
	a, err := New(t.Context(), testConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	ownerScenario(t, a.Handler())
}

func TestApp_SQLite(t *testing.T) {
	conf := testConfig(t)
	conf.SQLitePath = filepath.Join(t.TempDir(), "links.db")

	a, err := New(t.Context(), conf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	ownerScenario(t, a.Handler())
}

func TestApp_UnreachableCacheIsOptional(t *testing.T) {
	conf := testConfig(t)
	conf.RedisAddr = "127.0.0.1:1"

	a, err := New(t.Context(), conf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	w := do(t, a.Handler(), http.MethodPost, "/", "https://example.com", nil, "")
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestApp_Run_Shutdown(t *testing.T) {
	conf := testConfig(t)
	conf.EnableHTTPS = true

	a, err := New(t.Context(), conf)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	require.Eventually(t, func() bool {
		_, statErr := os.Stat(conf.TLSCertFile)
		return statErr == nil
	}, 5*time.Second, 20*time.Millisecond)
	cancel()

	select {
	case runErr := <-done:
		require.NoError(t, runErr)
	case <-time.After(15 * time.Second):
		t.Fatal("server did not stop")
	}
	_, err = os.Stat(conf.TLSKeyFile)
	require.NoError(t, err)
}
