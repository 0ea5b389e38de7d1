package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Adarshcode-012/ActivityHub/internal/auth"
	"github.com/Adarshcode-012/ActivityHub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func setupRouter(t *testing.T, tokens *auth.TokenManager) *ginext.Engine {
	t.Helper()

	r := ginext.New("test")
	r.Use(RequestID(), Recovery(newTestLogger(t)), RequestLogger(newTestLogger(t)))

	authed := r.Group("/", Authenticate(tokens))
	authed.GET("/me", func(c *ginext.Context) {
		id, ok := IdentityFrom(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, ginext.H{"userId": id.UserID, "role": id.Role})
	})
	authed.POST("/admin", RequireCapability(domain.CapabilityManageActivities), func(c *ginext.Context) {
		c.Status(http.StatusNoContent)
	})

	r.GET("/panic", func(c *ginext.Context) { panic("boom") })

	return r
}

func issue(t *testing.T, tokens *auth.TokenManager, role domain.Role) string {
	t.Helper()
	token, err := tokens.Issue(&domain.User{ID: "u1", Email: "u1@example.com", Role: role})
	require.NoError(t, err)
	return token
}

func TestAuthenticate(t *testing.T) {
	tokens := auth.NewTokenManager(testSecret, "activity-hub", time.Hour)
	other := auth.NewTokenManager("another-secret-another-secret-00", "activity-hub", time.Hour)
	r := setupRouter(t, tokens)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "empty token", header: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not-a-jwt", wantStatus: http.StatusUnauthorized},
		{name: "foreign signature", header: "Bearer " + issue(t, other, domain.RoleUser), wantStatus: http.StatusUnauthorized},
		{name: "valid", header: "Bearer " + issue(t, tokens, domain.RoleUser), wantStatus: http.StatusOK},
		{name: "lowercase scheme", header: "bearer " + issue(t, tokens, domain.RoleUser), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":"missing or invalid authorization header"}`, w.Body.String())
			} else {
				assert.JSONEq(t, `{"userId":"u1","role":"user"}`, w.Body.String())
			}
		})
	}
}

func TestRequireCapability(t *testing.T) {
	tokens := auth.NewTokenManager(testSecret, "activity-hub", time.Hour)
	r := setupRouter(t, tokens)

	t.Run("user is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+issue(t, tokens, domain.RoleUser))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"error":"admin access required"}`, w.Body.String())
	})

	t.Run("admin passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+issue(t, tokens, domain.RoleAdmin))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("no identity", func(t *testing.T) {
		r := ginext.New("test")
		r.GET("/x", RequireCapability(domain.CapabilityBookActivity), func(c *ginext.Context) {
			c.Status(http.StatusOK)
		})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequestID(t *testing.T) {
	r := setupRouter(t, auth.NewTokenManager(testSecret, "activity-hub", time.Hour))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	r := setupRouter(t, auth.NewTokenManager(testSecret, "activity-hub", time.Hour))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}
