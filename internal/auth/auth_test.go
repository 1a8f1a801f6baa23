package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glossandgo/booking/config"
	"github.com/stretchr/testify/assert"
)

func testService(t *testing.T) *Service {
	t.Helper()
	hash, err := HashPassword("correct horse battery staple")
	assert.NoError(t, err)
	return NewService(config.AdminConfig{
		Email:           "admin@example.com",
		PasswordHash:    hash,
		JWTSecret:       "test-secret",
		TokenTTLMinutes: 60,
	})
}

func TestService_Login_Success(t *testing.T) {
	service := testService(t)

	token, err := service.Login("admin@example.com", "correct horse battery staple")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestService_Login_WrongPassword(t *testing.T) {
	service := testService(t)

	token, err := service.Login("admin@example.com", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestService_Login_WrongEmail(t *testing.T) {
	service := testService(t)

	token, err := service.Login("intruder@example.com", "correct horse battery staple")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestService_Middleware_AcceptsValidToken(t *testing.T) {
	service := testService(t)
	token, err := service.Login("admin@example.com", "correct horse battery staple")
	assert.NoError(t, err)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/admin/bookings", nil)
	c.Request.Header.Set("Authorization", "Bearer "+token)

	service.Middleware()(c)

	assert.False(t, c.IsAborted())
}

func TestService_Middleware_RejectsMissingToken(t *testing.T) {
	service := testService(t)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/admin/bookings", nil)

	service.Middleware()(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestService_Middleware_RejectsForgedToken(t *testing.T) {
	service := testService(t)
	other := NewService(config.AdminConfig{
		Email:           "admin@example.com",
		PasswordHash:    service.passwordHash,
		JWTSecret:       "different-secret",
		TokenTTLMinutes: 60,
	})
	token, err := other.Login("admin@example.com", "correct horse battery staple")
	assert.NoError(t, err)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/admin/bookings", nil)
	c.Request.Header.Set("Authorization", "Bearer "+token)

	service.Middleware()(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
