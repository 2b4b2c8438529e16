//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"pousada-api/internal/handler/middleware"
	"pousada-api/internal/pkg/config"
)

type RateLimiterTestSuite struct {
	suite.Suite
	limiter *middleware.RateLimiter
	router  *gin.Engine
}

func (s *RateLimiterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.limiter = middleware.NewRateLimiter(config.RateLimitConfig{Requests: 2, Window: time.Minute})
	s.router = gin.New()
	s.router.Use(s.limiter.Middleware())
	s.router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
}

func (s *RateLimiterTestSuite) TearDownTest() {
	s.limiter.Close()
}

func TestRateLimiterSuite(t *testing.T) {
	suite.Run(t, new(RateLimiterTestSuite))
}

func (s *RateLimiterTestSuite) get(ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = ip + ":12345"
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *RateLimiterTestSuite) TestAllowsUpToBurstThenRejects() {
	s.Equal(http.StatusOK, s.get("10.0.0.1").Code)
	s.Equal(http.StatusOK, s.get("10.0.0.1").Code)

	w := s.get("10.0.0.1")
	s.Equal(http.StatusTooManyRequests, w.Code)
	s.Contains(w.Body.String(), "Too many requests")
}

func (s *RateLimiterTestSuite) TestTracksClientsIndependently() {
	s.Equal(http.StatusOK, s.get("10.0.0.1").Code)
	s.Equal(http.StatusOK, s.get("10.0.0.1").Code)
	s.Equal(http.StatusTooManyRequests, s.get("10.0.0.1").Code)

	s.Equal(http.StatusOK, s.get("10.0.0.2").Code)
}

func (s *RateLimiterTestSuite) TestCloseIsIdempotent() {
	s.limiter.Close()
	s.limiter.Close()
}
