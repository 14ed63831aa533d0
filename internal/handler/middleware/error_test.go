//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"eventure/internal/handler/httperr"
	"eventure/internal/handler/middleware"
	"eventure/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type ErrorHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	captured []*gin.Error
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.captured = nil

	s.router = gin.New()
	s.router.Use(middleware.CustomRecovery())
	s.router.Use(func(c *gin.Context) {
		c.Next()
		s.captured = c.Errors
	})
	s.router.Use(middleware.ErrorHandler())

	s.router.GET("/aborted", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusConflict, errFixture, "Scooter is sold out")
	})
	s.router.GET("/recorded", func(c *gin.Context) {
		_ = c.Error(&gin.Error{
			Err:  errFixture,
			Type: gin.ErrorTypePublic,
			Meta: httperr.Response{Status: http.StatusBadGateway, Error: "Payment initialization failed"},
		})
	})
	s.router.GET("/panics", func(c *gin.Context) {
		panic("listing cache corrupted")
	})
	s.router.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

var errFixture = errors.New("decrement refused at zero")

func (s *ErrorHandlerTestSuite) TestAbortWritesEnvelopeAndRecordsCause() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/aborted", nil, "")

	httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Scooter is sold out")
	s.Require().Len(s.captured, 1)
	s.Require().ErrorIs(s.captured[0].Err, errFixture)
}

func (s *ErrorHandlerTestSuite) TestCollectorWritesUnhandledRecordedError() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/recorded", nil, "")

	httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Payment initialization failed")
}

func (s *ErrorHandlerTestSuite) TestRecoveryWrapsPanicInEnvelope() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/panics", nil, "")

	httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
}

func (s *ErrorHandlerTestSuite) TestSuccessPassesThroughUntouched() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/ok", nil, "")

	s.Equal(http.StatusOK, rec.Code)
	s.Empty(s.captured)
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}
