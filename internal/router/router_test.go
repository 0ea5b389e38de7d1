package router

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
)

type stubHandler struct{}

func ok(c *ginext.Context) { c.Status(http.StatusOK) }

func (stubHandler) Login(c *ginext.Context)          { ok(c) }
func (stubHandler) Me(c *ginext.Context)             { ok(c) }
func (stubHandler) ListActivities(c *ginext.Context) { ok(c) }
func (stubHandler) GetActivity(c *ginext.Context)    { ok(c) }
func (stubHandler) CreateActivity(c *ginext.Context) { c.Status(http.StatusCreated) }
func (stubHandler) UpdateActivity(c *ginext.Context) { ok(c) }
func (stubHandler) DeleteActivity(c *ginext.Context) { ok(c) }
func (stubHandler) CreateBooking(c *ginext.Context)  { c.Status(http.StatusCreated) }
func (stubHandler) MyBookings(c *ginext.Context)     { ok(c) }

func TestRouter_Access(t *testing.T) {
	tokens := auth.NewTokenManager("0123456789abcdef0123456789abcdef", "activity-hub", time.Hour)
	r := InitRouter(Options{Mode: "test", Verifier: tokens}, stubHandler{})

	token := func(role domain.Role) string {
		s, err := tokens.Issue(&domain.User{ID: "u1", Email: "u1@example.com", Role: role})
		require.NoError(t, err)
		return "Bearer " + s
	}

	tests := []struct {
		name       string
		method     string
		path       string
		auth       string
		wantStatus int
	}{
		{name: "health", method: http.MethodGet, path: "/health", wantStatus: http.StatusOK},
		{name: "public list", method: http.MethodGet, path: "/api/activities", wantStatus: http.StatusOK},
		{name: "public get", method: http.MethodGet, path: "/api/activities/x", wantStatus: http.StatusOK},
		{name: "login is public", method: http.MethodPost, path: "/api/auth/login", wantStatus: http.StatusOK},
		{name: "me needs token", method: http.MethodGet, path: "/api/auth/me", wantStatus: http.StatusUnauthorized},
		{name: "create needs token", method: http.MethodPost, path: "/api/activities", wantStatus: http.StatusUnauthorized},
		{name: "create forbidden for user", method: http.MethodPost, path: "/api/activities", auth: token(domain.RoleUser), wantStatus: http.StatusForbidden},
		{name: "create allowed for admin", method: http.MethodPost, path: "/api/activities", auth: token(domain.RoleAdmin), wantStatus: http.StatusCreated},
		{name: "update forbidden for user", method: http.MethodPut, path: "/api/activities/x", auth: token(domain.RoleUser), wantStatus: http.StatusForbidden},
		{name: "delete forbidden for user", method: http.MethodDelete, path: "/api/activities/x", auth: token(domain.RoleUser), wantStatus: http.StatusForbidden},
		{name: "delete allowed for admin", method: http.MethodDelete, path: "/api/activities/x", auth: token(domain.RoleAdmin), wantStatus: http.StatusOK},
		{name: "booking needs token", method: http.MethodPost, path: "/api/bookings", wantStatus: http.StatusUnauthorized},
		{name: "booking by user", method: http.MethodPost, path: "/api/bookings", auth: token(domain.RoleUser), wantStatus: http.StatusCreated},
		{name: "booking by admin", method: http.MethodPost, path: "/api/bookings", auth: token(domain.RoleAdmin), wantStatus: http.StatusCreated},
		{name: "my bookings", method: http.MethodGet, path: "/api/bookings/me", auth: token(domain.RoleUser), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRouter_CORS(t *testing.T) {
	tokens := auth.NewTokenManager("0123456789abcdef0123456789abcdef", "activity-hub", time.Hour)
	r := InitRouter(Options{Mode: "test", Verifier: tokens, AllowOrigins: []string{"http://localhost:3000"}}, stubHandler{})

	req := httptest.NewRequest(http.MethodOptions, "/api/bookings", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization,Content-Type")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
