package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hdmonks/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockAuth struct {
	mock.Mock
}

func (m *mockAuth) Authenticate(ctx context.Context, role models.Role, username, password string) (*models.AuthResponse, error) {
	args := m.Called(ctx, role, username, password)
	r, _ := args.Get(0).(*models.AuthResponse)
	return r, args.Error(1)
}

func (m *mockAuth) Verify(ctx context.Context, role models.Role, token string) (*models.Session, error) {
	args := m.Called(ctx, role, token)
	s, _ := args.Get(0).(*models.Session)
	return s, args.Error(1)
}

func (m *mockAuth) Logout(ctx context.Context, session *models.Session, token string) error {
	return m.Called(ctx, session, token).Error(0)
}

func (m *mockAuth) RegisterPartner(ctx context.Context, req models.PartnerRegistration) (*models.Principal, error) {
	args := m.Called(ctx, req)
	p, _ := args.Get(0).(*models.Principal)
	return p, args.Error(1)
}

func (m *mockAuth) EnsureDefaultAdmin(ctx context.Context, username, email, password string) error {
	return m.Called(ctx, username, email, password).Error(0)
}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequireRole(t *testing.T) {
	a := &mockAuth{}
	a.On("Verify", mock.Anything, models.RoleAdmin, "good").
		Return(&models.Session{PrincipalID: "a1", Role: models.RoleAdmin, ExpiresAt: time.Now().Add(time.Hour)}, nil)
	a.On("Verify", mock.Anything, models.RoleAdmin, "old").Return(nil, models.ErrTokenExpired)
	a.On("Verify", mock.Anything, models.RoleAdmin, "partner-token").Return(nil, models.ErrInvalidToken)

	r := gin.New()
	r.GET("/admin", RequireRole(a, models.RoleAdmin), func(c *gin.Context) {
		s, ok := CurrentSession(c)
		assert.True(t, ok)
		c.String(http.StatusOK, s.PrincipalID)
	})

	cases := []struct {
		header string
		status int
	}{
		{"", http.StatusUnauthorized},
		{"Basic abc", http.StatusUnauthorized},
		{"Bearer old", http.StatusUnauthorized},
		{"Bearer partner-token", http.StatusUnauthorized},
		{"Bearer good", http.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, tc.status, w.Code, tc.header)
	}
	a.AssertExpectations(t)
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(2))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "198.51.100.7:4242"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()))
	r.GET("/", func(c *gin.Context) {
		_, ok := c.Get("logger")
		assert.True(t, ok)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRateLimiterStore_DropsIdleVisitors(t *testing.T) {
	clock := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	store := newRateLimiterStore(10)
	store.now = func() time.Time { return clock }
	store.lastSweep = clock

	store.getLimiter("203.0.113.1")
	store.getLimiter("203.0.113.2")
	require.Len(t, store.visitors, 2)

	clock = clock.Add(2 * time.Minute)
	store.getLimiter("203.0.113.2")

	clock = clock.Add(2 * time.Minute)
	store.getLimiter("203.0.113.3")
	assert.Len(t, store.visitors, 2)
	assert.NotContains(t, store.visitors, "203.0.113.1")
	assert.Contains(t, store.visitors, "203.0.113.2")
}
