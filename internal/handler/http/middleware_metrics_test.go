package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-code-tutor/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── Metrics ───────────────────────────────────

func TestWithMetrics_CountsByRoutePattern(t *testing.T) {
	h, m := newTestHandler(t)
	m.info.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0").Times(2)

	serve(h, http.MethodGet, "/api/version", "", nil)
	serve(h, http.MethodGet, "/api/version", "", nil)
	serve(h, http.MethodGet, "/missing", "", nil)

	rr := serve(h, http.MethodGet, "/metrics", "", nil)
	body := rr.Body.String()

	assert.Contains(t, body, `code_tutor_http_requests_total{code="200",method="GET",route="/api/version"} 2`)
	assert.Contains(t, body, `code_tutor_http_requests_total{code="404",method="GET",route="unmatched"} 1`)
	assert.Contains(t, body, "code_tutor_http_requests_in_flight 1")
}

func TestMetricsEndpoint_Exposes(t *testing.T) {
	h, m := newTestHandler(t)
	m.info.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

	serve(h, http.MethodGet, "/api/version", "", nil)
	rr := serve(h, http.MethodGet, "/metrics", "", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "code_tutor_http_requests_total")
	assert.Contains(t, rr.Body.String(), `route="/api/version"`)
	assert.Contains(t, rr.Body.String(), "go_goroutines")
}

// ── CORS ──────────────────────────────────────

// preflightHeaders mirrors a browser preflight: the requested headers are
// lower-cased and comma-joined without spaces.
func preflightHeaders(origin string) map[string]string {
	return map[string]string{
		"Origin":                         origin,
		"Access-Control-Request-Method":  http.MethodPost,
		"Access-Control-Request-Headers": "authorization,content-type",
	}
}

func TestWithCORS_PreflightAnyOrigin(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := serve(h, http.MethodOptions, "/chat", "", preflightHeaders("http://localhost:3000"))

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestWithCORS_RestrictedOrigins(t *testing.T) {
	h, _ := newTestHandlerWithServer(t, config.Server{AllowedOrigins: []string{"http://localhost:3000"}})

	allowed := serve(h, http.MethodOptions, "/chat", "", preflightHeaders("http://localhost:3000"))
	denied := serve(h, http.MethodOptions, "/chat", "", preflightHeaders("http://evil.example"))

	assert.Equal(t, "http://localhost:3000", allowed.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, denied.Header().Get("Access-Control-Allow-Origin"))
}
