package routes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"templeseva/handlers"
	"templeseva/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) (*gin.Engine, *utils.TokenIssuer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	issuer := utils.NewTokenIssuer("routes-secret")
	ok := func(name string) gin.HandlerFunc {
		return func(c *gin.Context) { c.String(http.StatusOK, name) }
	}
	r := gin.New()
	RegisterRoutes(r, &handlers.HandlerBundle{
		TokenIssuer:             issuer,
		MetricsHandler:          http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("metrics")) }),
		AllocateHandler:         ok("allocate"),
		AllocatePriorityHandler: ok("priority"),
		ValidateHandler:         ok("validate"),
	})
	return r, issuer
}

func TestPublicRoutes(t *testing.T) {
	r, _ := newRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, "metrics", w.Body.String())
}

func TestAllocationRoutesRequireToken(t *testing.T) {
	r, issuer := newRouter(t)
	token, err := issuer.GenerateToken("user-1", "", time.Hour)
	require.NoError(t, err)

	for path, name := range map[string]string{
		"/api/allocations":          "allocate",
		"/api/allocations/priority": "priority",
		"/api/allocations/validate": "validate",
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, strings.NewReader("{}")))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)

		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader("{}"))
		req.Header.Set("Authorization", "Bearer "+token)
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, name, w.Body.String())
	}
}

func TestHealthReportsComponents(t *testing.T) {
	gin.SetMode(gin.TestMode)
	up := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("down") }

	healthy := utils.NewHealthMonitor(up, up, time.Minute)
	healthy.Check(context.Background())
	r := gin.New()
	RegisterHealthRoute(r, &handlers.HandlerBundle{Health: healthy})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"mongo":true`)

	degraded := utils.NewHealthMonitor(up, down, time.Minute)
	degraded.Check(context.Background())
	r = gin.New()
	RegisterHealthRoute(r, &handlers.HandlerBundle{Health: degraded})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"redis":false`)
}
