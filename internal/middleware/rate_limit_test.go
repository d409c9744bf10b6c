package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func hit(r *gin.Engine, employeeID string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	if employeeID != "" {
		req.Header.Set("X-Employee", employeeID)
	}
	r.ServeHTTP(w, req)
	return w.Code
}

func newUserLimitedEngine(limit rate.Limit, burst int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// Stand-in for AuthMiddleware: the limiter only cares about employee_id.
	r.Use(func(c *gin.Context) {
		if id := c.GetHeader("X-Employee"); id != "" {
			c.Set("employee_id", id)
		}
	})
	r.Use(RateLimitByUser(limit, burst))
	r.GET("/orders", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRateLimitByUser_LimitsPerEmployee(t *testing.T) {
	r := newUserLimitedEngine(rate.Limit(0.001), 2)

	assert.Equal(t, http.StatusOK, hit(r, "emp-1"))
	assert.Equal(t, http.StatusOK, hit(r, "emp-1"))
	assert.Equal(t, http.StatusTooManyRequests, hit(r, "emp-1"), "burst exhausted")

	assert.Equal(t, http.StatusOK, hit(r, "emp-2"), "another employee has their own bucket")
}

func TestRateLimitByUser_SkipsUnauthenticated(t *testing.T) {
	r := newUserLimitedEngine(rate.Limit(0.001), 1)

	// No employee_id in the context: the limiter must not throttle, the IP
	// limiter covers anonymous traffic.
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hit(r, ""))
	}
}
