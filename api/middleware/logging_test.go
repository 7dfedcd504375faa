package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLogger captures log calls for assertions.
type recordingLogger struct {
	mu     sync.Mutex
	fields []map[string]interface{}
}

func (l *recordingLogger) log(fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fields = append(l.fields, fields)
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) { l.log(fields) }
func (l *recordingLogger) Info(msg string, fields map[string]interface{})  { l.log(fields) }
func (l *recordingLogger) Warn(msg string, fields map[string]interface{})  { l.log(fields) }
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) { l.log(fields) }

func TestRequestLoggingMiddleware(t *testing.T) {
	logger := &recordingLogger{}
	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, RequestID(r.Context()))
		w.WriteHeader(http.StatusCreated)
	}))

	req := httptest.NewRequest(http.MethodPost, "/diff", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	require.Len(t, logger.fields, 1)
	entry := logger.fields[0]
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "/diff", entry["path"])
	assert.Equal(t, http.StatusCreated, entry["status"])
	assert.Equal(t, rec.Header().Get("X-Request-ID"), entry["request_id"])
}

func TestRequestLoggingMiddleware_ImplicitOK(t *testing.T) {
	logger := &recordingLogger{}
	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Len(t, logger.fields, 1)
	assert.Equal(t, http.StatusOK, logger.fields[0]["status"])
}

func TestRequestID_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, RequestID(req.Context()))
}
