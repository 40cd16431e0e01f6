package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"animal-zoo/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	level  string
	msg    string
	fields map[string]any
}

type captureLogger struct {
	mu      sync.Mutex
	entries []captured
}

func (c *captureLogger) With(map[string]any) logger.Logger { return c }
func (c *captureLogger) Debug(msg string, f map[string]any) { c.add("debug", msg, f) }
func (c *captureLogger) Info(msg string, f map[string]any)  { c.add("info", msg, f) }
func (c *captureLogger) Warn(msg string, f map[string]any)  { c.add("warn", msg, f) }
func (c *captureLogger) Error(msg string, f map[string]any) { c.add("error", msg, f) }

func (c *captureLogger) add(level, msg string, f map[string]any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, captured{level: level, msg: msg, fields: f})
}

func TestRequestLog_LevelsByStatus(t *testing.T) {
	cases := []struct {
		status int
		level  string
	}{
		{http.StatusOK, "debug"},
		{http.StatusNotFound, "warn"},
		{http.StatusInternalServerError, "error"},
	}

	for _, tc := range cases {
		log := &captureLogger{}
		h := chimw.RequestID(RequestLog(log)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tc.status)
		})))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/residents", nil))

		require.Len(t, log.entries, 1)
		e := log.entries[0]
		assert.Equal(t, tc.level, e.level)
		assert.Equal(t, "request", e.msg)
		assert.Equal(t, tc.status, e.fields["status"])
		assert.Equal(t, "/residents", e.fields["path"])
		assert.NotEmpty(t, e.fields["request_id"])
	}
}

func TestRequestLog_ImplicitOK(t *testing.T) {
	log := &captureLogger{}
	h := RequestLog(log)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Len(t, log.entries, 1)
	assert.Equal(t, http.StatusOK, log.entries[0].fields["status"])
	assert.Equal(t, 2, log.entries[0].fields["bytes"])
}
