package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"moltmail/backend/internal/monitoring"
)

func TestRecoveryHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	metrics := monitoring.NewMetrics()

	router := gin.New()
	router.Use(RecoveryHandler(nil, metrics))
	router.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	t.Run("panic转为500并计入指标", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Internal server error")
		assert.Equal(t, float64(1), testutil.ToFloat64(metrics.PanicsTotal))
	})

	t.Run("再次panic继续累加", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, float64(2), testutil.ToFloat64(metrics.PanicsTotal))
	})
}
