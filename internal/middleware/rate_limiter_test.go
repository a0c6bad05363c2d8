package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// RateLimiterTestSuite defines the test suite for the rate limiter middleware
type RateLimiterTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

// TestRateLimiterTestSuite runs the test suite
func TestRateLimiterTestSuite(t *testing.T) {
	suite.Run(t, new(RateLimiterTestSuite))
}

// SetupTest runs before each test
func (s *RateLimiterTestSuite) SetupTest() {
	s.echo = echo.New()
}

func (s *RateLimiterTestSuite) doRequest(handler echo.HandlerFunc, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = ip + ":12345"
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	s.NoError(handler(c))
	return rec
}

func (s *RateLimiterTestSuite) TestAllowsWithinBurst() {
	limiter := NewRateLimiter(1, 3)
	handler := limiter.Middleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		rec := s.doRequest(handler, "10.0.0.1")
		s.Equal(http.StatusOK, rec.Code)
	}
}

func (s *RateLimiterTestSuite) TestRejectsOverBurst() {
	limiter := NewRateLimiter(1, 2)
	handler := limiter.Middleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	s.Equal(http.StatusOK, s.doRequest(handler, "10.0.0.2").Code)
	s.Equal(http.StatusOK, s.doRequest(handler, "10.0.0.2").Code)
	s.Equal(http.StatusTooManyRequests, s.doRequest(handler, "10.0.0.2").Code)
}

func (s *RateLimiterTestSuite) TestLimitsPerClient() {
	limiter := NewRateLimiter(1, 1)
	handler := limiter.Middleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	s.Equal(http.StatusOK, s.doRequest(handler, "10.0.0.3").Code)
	s.Equal(http.StatusTooManyRequests, s.doRequest(handler, "10.0.0.3").Code)

	// A different client has its own bucket.
	s.Equal(http.StatusOK, s.doRequest(handler, "10.0.0.4").Code)
}
