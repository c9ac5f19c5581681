package middleware_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func newAuthRouter(issuer string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", middleware.AuthMiddleware(testSecret, issuer), func(c *gin.Context) {
		userID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, userID)
	})
	return r
}

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.RegisteredClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return signed
}

func get(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	valid := jwt.RegisteredClaims{
		Issuer:    "expense-tracker",
		Subject:   "user-42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	tests := []struct {
		name       string
		issuer     string
		header     func(t *testing.T) string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "valid token",
			issuer:     "expense-tracker",
			header:     func(t *testing.T) string { return "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(testSecret), valid) },
			wantStatus: http.StatusOK,
			wantBody:   "user-42",
		},
		{
			name:   "issuer check disabled",
			issuer: "",
			header: func(t *testing.T) string {
				claims := valid
				claims.Issuer = "anyone"
				return "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(testSecret), claims)
			},
			wantStatus: http.StatusOK,
			wantBody:   "user-42",
		},
		{
			name:       "missing header",
			header:     func(t *testing.T) string { return "" },
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Authorization header required"}`,
		},
		{
			name:       "not a bearer header",
			header:     func(t *testing.T) string { return "Basic abc" },
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Authorization header format must be Bearer {token}"}`,
		},
		{
			name: "expired token",
			header: func(t *testing.T) string {
				claims := valid
				claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
				return "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(testSecret), claims)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Token has expired"}`,
		},
		{
			name:       "wrong secret",
			header:     func(t *testing.T) string { return "Bearer " + sign(t, jwt.SigningMethodHS256, []byte("other"), valid) },
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Invalid token"}`,
		},
		{
			name:       "other HMAC algorithm",
			header:     func(t *testing.T) string { return "Bearer " + sign(t, jwt.SigningMethodHS512, []byte(testSecret), valid) },
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Invalid token"}`,
		},
		{
			name: "missing subject",
			header: func(t *testing.T) string {
				claims := valid
				claims.Subject = ""
				return "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(testSecret), claims)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Invalid token claims"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(newAuthRouter(tt.issuer), tt.header(t))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantBody, w.Body.String())
			} else {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestAuthMiddleware_WrongIssuer(t *testing.T) {
	claims := jwt.RegisteredClaims{Issuer: "someone-else", Subject: "user-42", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}

	w := get(newAuthRouter("expense-tracker"), "Bearer "+sign(t, jwt.SigningMethodHS256, []byte(testSecret), claims))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiterInstance, err := middleware.NewLimiter("2-M")
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.RateLimit(limiterInstance))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
		if i == 0 {
			assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
			assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))
		}
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNewLimiter_InvalidRate(t *testing.T) {
	_, err := middleware.NewLimiter("lots")
	assert.Error(t, err)
}

func TestStructuredLoggingMiddleware_RequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slog.Default()))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-1", w.Header().Get("X-Request-ID"))

	req, _ = http.NewRequest(http.MethodGet, "/ping", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
