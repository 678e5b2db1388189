package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestGinMiddlewareUsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GinMiddleware())
	r.GET("/jobs/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", gin.WrapH(Handler()))

	before := testutil.ToFloat64(requestTotal.WithLabelValues(http.MethodGet, "/jobs/:id", "200"))
	for _, id := range []string{"a", "b"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/jobs/"+id, nil))
	}
	after := testutil.ToFloat64(requestTotal.WithLabelValues(http.MethodGet, "/jobs/:id", "200"))
	assert.Equal(t, 2.0, after-before)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.GreaterOrEqual(t, testutil.ToFloat64(requestTotal.WithLabelValues(http.MethodGet, "unmatched", "404")), 1.0)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "jobboard_http_requests_total")
}

func TestSearchCounters(t *testing.T) {
	before := testutil.ToFloat64(searchFailures.WithLabelValues("INVALID_FILTER"))
	SearchFailed("INVALID_FILTER")
	assert.Equal(t, 1.0, testutil.ToFloat64(searchFailures.WithLabelValues("INVALID_FILTER"))-before)

	views := testutil.ToFloat64(jobViews)
	ViewRecorded()
	assert.Equal(t, 1.0, testutil.ToFloat64(jobViews)-views)

	ObserveSearch("", 3, 10*time.Millisecond)
}
