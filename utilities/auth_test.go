package utilities

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)

	token, expiresAt, err := tm.Generate("user-1", "Sam")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "Sam", claims.Name)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestTokenValidationFailures(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	token, _, err := tm.Generate("user-1", "Sam")
	require.NoError(t, err)

	_, err = NewTokenManager("other", time.Hour).Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tm.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired := NewTokenManager("secret", time.Minute)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, _, err := expired.Generate("user-1", "Sam")
	require.NoError(t, err)
	_, err = tm.Validate(old)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, _, err = tm.Generate("", "nobody")
	assert.Error(t, err)
}

func newAuthRouter(tm *TokenManager, enabled bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware(tm, enabled))
	handler := func(c *gin.Context) {
		id, name, ok := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "name": name, "ok": ok})
	}
	r.GET("/questions", handler)
	r.GET("/health", handler)
	r.POST("/auth/guest", handler)
	r.GET("/authors", handler)
	r.GET("/healthz-admin", handler)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	token, _, err := tm.Generate("user-42", "")
	require.NoError(t, err)
	r := newAuthRouter(tm, true)

	tests := []struct {
		name   string
		method string
		path   string
		header string
		status int
		body   string
	}{
		{name: "missing header", path: "/questions", status: http.StatusUnauthorized, body: "missing authorization header"},
		{name: "bad token", path: "/questions", header: "Bearer nope", status: http.StatusUnauthorized, body: "invalid or expired token"},
		{name: "valid token", path: "/questions", header: "Bearer " + token, status: http.StatusOK, body: `"id":"user-42"`},
		{name: "public path", path: "/health", status: http.StatusOK, body: `"ok":false`},
		{name: "public subpath", method: http.MethodPost, path: "/auth/guest", status: http.StatusOK, body: `"ok":false`},
		{name: "prefix of a public path", path: "/authors", status: http.StatusUnauthorized, body: "missing authorization header"},
		{name: "longer segment", path: "/healthz-admin", status: http.StatusUnauthorized, body: "missing authorization header"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			req := httptest.NewRequest(method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
		})
	}
}

func TestAuthMiddlewareDisabled(t *testing.T) {
	r := newAuthRouter(NewTokenManager("secret", time.Hour), false)

	req := httptest.NewRequest(http.MethodGet, "/questions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"anonymous"`)
	assert.Contains(t, w.Body.String(), `"name":"Movie Lover"`)
}
