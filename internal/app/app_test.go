package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "app-test-secret"
	cfg.Jobs.DefaultLimit = 20
	cfg.Jobs.MaxLimit = 100
	return cfg
}

func TestSetupRouterServesAPI(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger.InitWithWriter("test", &strings.Builder{})

	db := testutil.NewDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	job := testutil.CreateJob(t, db, uuid.NewString(), testutil.WithTitle("Router Wiring"))

	router := SetupRouter(testConfig(), db, sqlDB)

	get := func(path, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	w := get("/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = get("/api/v1/jobs?search=wiring", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), job.ID)

	token, err := auth.NewTokenService("app-test-secret", time.Hour).
		GenerateToken(auth.Identity{UserID: uuid.NewString(), Role: models.UserRoleJobSeeker})
	require.NoError(t, err)
	w = get("/api/v1/jobs/saved", token)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = get("/api/v1/jobs/saved", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = get("/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "jobboard_http_requests_total")
	assert.Contains(t, w.Body.String(), "jobboard_jobs_search_duration_seconds")

	w = get("/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/jobs/saved")
}

func TestAPIMiddlewareWithoutRedis(t *testing.T) {
	assert.Empty(t, apiMiddleware(testConfig()))

	cfg := testConfig()
	cfg.RateLimit.RedisAddr = "localhost:6379"
	cfg.RateLimit.Requests = 10
	cfg.RateLimit.WindowSeconds = 60
	assert.Len(t, apiMiddleware(cfg), 1)
}
