package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(PrometheusMiddleware())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/error", func(c *gin.Context) {
		c.String(http.StatusInternalServerError, "error")
	})

	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{
			name:           "records metrics for successful request",
			path:           "/test",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "records metrics for error request",
			path:           "/error",
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRecordSearch(t *testing.T) {
	RecordSearch(100*time.Microsecond, "success")
	RecordSearch(50*time.Microsecond, "error")

	assert.True(t, true)
}

func TestRecordCacheOperation(t *testing.T) {
	RecordCacheOperation("messages", "get", "hit")
	RecordCacheOperation("messages", "get", "miss")
	RecordCacheOperation("channels", "put", "success")

	assert.True(t, true)
}

func TestUpdateCacheMetrics(t *testing.T) {
	UpdateCacheMetrics("messages", 50, 100)
	UpdateCacheMetrics("messages", 75, 100)

	assert.True(t, true)
}

func TestRecordChangeEvent(t *testing.T) {
	RecordChangeEvent("message", "insert")
	RecordChangeEvent("channel", "delete")

	assert.True(t, true)
}
