//go:build unit
// +build unit

package v1

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockLogger struct {
	mock.Mock
}

func (m *mockLogger) Debug(args ...interface{}) { m.Called() }
func (m *mockLogger) Info(args ...interface{})  { m.Called() }
func (m *mockLogger) Warn(args ...interface{})  { m.Called() }
func (m *mockLogger) Error(args ...interface{}) { m.Called() }
func (m *mockLogger) Fatal(args ...interface{}) { m.Called() }
func (m *mockLogger) Panic(args ...interface{}) { m.Called() }

func newLoggedRouter(log *mockLogger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(log))
	r.GET("/health", Health)
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { abortWithDetail(c, http.StatusNotFound, "gone") })
	r.GET("/boom", func(c *gin.Context) { respondError(c, errors.New("boom"), "") })
	return r
}

func serve(r *gin.Engine, url string, header http.Header) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	for k, values := range header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestLogger_LevelsByOutcome(t *testing.T) {
	log := new(mockLogger)
	log.On("Info").Once()
	log.On("Warn").Once()
	log.On("Error").Once()
	r := newLoggedRouter(log)

	serve(r, "/ok", nil)
	serve(r, "/missing", nil)
	serve(r, "/boom", nil)

	log.AssertExpectations(t)
}

func TestRequestLogger_SkipsHealth(t *testing.T) {
	log := new(mockLogger)
	r := newLoggedRouter(log)

	w := serve(r, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	log.AssertNotCalled(t, "Info")
}

func TestRequestLogger_EchoesRequestID(t *testing.T) {
	log := new(mockLogger)
	log.On("Info")
	r := newLoggedRouter(log)

	w := serve(r, "/ok", http.Header{"x-request-id": []string{"req-42"}})

	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
}
