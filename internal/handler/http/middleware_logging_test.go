package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-code-tutor/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runLogged(t *testing.T, status int, body string) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	h := &Handler{logger: logger.New("test", &buf)}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	})

	req := httptest.NewRequest(http.MethodPost, "/chat?x=1", nil)
	req.Header.Set(traceIDHeader, "trace-1")
	h.withTraceID(h.withLogging(next)).ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry), buf.String())
	return entry
}

func TestWithLogging_RecordsRequest(t *testing.T) {
	entry := runLogged(t, http.StatusTeapot, "hi")

	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "/chat?x=1", entry["uri"])
	assert.Equal(t, http.MethodPost, entry["method"])
	assert.EqualValues(t, http.StatusTeapot, entry["status"])
	assert.EqualValues(t, 2, entry["size"])
	assert.Equal(t, "trace-1", entry["trace_id"])
	assert.Contains(t, entry, "duration")
}

func TestWithLogging_ServerErrorsAtErrorLevel(t *testing.T) {
	entry := runLogged(t, http.StatusBadGateway, "")

	assert.Equal(t, "error", entry["level"])
	assert.EqualValues(t, http.StatusBadGateway, entry["status"])
}
