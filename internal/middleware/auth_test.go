package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/EliandyDumortier/Cycling-App/internal/authz"
	"github.com/EliandyDumortier/Cycling-App/internal/models"
	"github.com/EliandyDumortier/Cycling-App/internal/service"
)

// =============================================================================
// Mock AuthService
// =============================================================================

type mockAuthService struct {
	resolveIdentityFunc func(ctx context.Context, token string) (*models.User, error)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*service.LoginResponse, error) {
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) VerifyCredentials(ctx context.Context, email, password string) (*models.User, error) {
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) ResolveIdentity(ctx context.Context, token string) (*models.User, error) {
	if m.resolveIdentityFunc != nil {
		return m.resolveIdentityFunc(ctx, token)
	}
	return nil, errors.New("not implemented")
}

// =============================================================================
// Test Helpers
// =============================================================================

func performRequest(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func protectedRouter(auth service.AuthService, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	chain := append([]gin.HandlerFunc{RequireAuth(auth)}, extra...)
	chain = append(chain, func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"email": user.Email})
	})
	router.GET("/protected", chain...)
	return router
}

// =============================================================================
// RequireAuth Tests
// =============================================================================

func TestRequireAuth(t *testing.T) {
	user := &models.User{ID: 1, Email: "jean@example.com", Role: models.RoleCoach}
	auth := &mockAuthService{
		resolveIdentityFunc: func(ctx context.Context, token string) (*models.User, error) {
			switch token {
			case "good":
				return user, nil
			case "expired":
				return nil, service.ErrTokenExpired
			case "vanished":
				return nil, service.ErrUserNotFound
			default:
				return nil, service.ErrInvalidToken
			}
		},
	}
	router := protectedRouter(auth)

	tests := []struct {
		name          string
		authorization string
		wantStatus    int
	}{
		{name: "valid bearer token", authorization: "Bearer good", wantStatus: http.StatusOK},
		{name: "lowercase scheme accepted", authorization: "bearer good", wantStatus: http.StatusOK},
		{name: "missing header", authorization: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", authorization: "Basic good", wantStatus: http.StatusUnauthorized},
		{name: "scheme only", authorization: "Bearer", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", authorization: "Bearer junk", wantStatus: http.StatusUnauthorized},
		{name: "expired token", authorization: "Bearer expired", wantStatus: http.StatusUnauthorized},
		{name: "vanished account", authorization: "Bearer vanished", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(router, tt.authorization)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRequireAuth_StoreFailure(t *testing.T) {
	auth := &mockAuthService{
		resolveIdentityFunc: func(ctx context.Context, token string) (*models.User, error) {
			return nil, errors.New("connection refused")
		},
	}
	router := protectedRouter(auth)

	// An unreachable store is a server error, never an auth decision.
	w := performRequest(router, "Bearer anything")
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

// =============================================================================
// OptionalAuth Tests
// =============================================================================

func TestOptionalAuth(t *testing.T) {
	user := &models.User{ID: 1, Email: "jean@example.com", Role: models.RoleCoach}
	auth := &mockAuthService{
		resolveIdentityFunc: func(ctx context.Context, token string) (*models.User, error) {
			if token == "good" {
				return user, nil
			}
			return nil, service.ErrInvalidToken
		},
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", OptionalAuth(auth), func(c *gin.Context) {
		if resolved, ok := CurrentUser(c); ok {
			c.JSON(http.StatusOK, gin.H{"email": resolved.Email})
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": nil})
	})

	t.Run("no token continues anonymously", func(t *testing.T) {
		w := performRequest(router, "")
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
	})

	t.Run("valid token resolves", func(t *testing.T) {
		w := performRequest(router, "Bearer good")
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
	})

	t.Run("invalid token still rejected", func(t *testing.T) {
		w := performRequest(router, "Bearer junk")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401; invalid credentials must not degrade to anonymous", w.Code)
		}
	})
}

// =============================================================================
// RequireOperation Tests
// =============================================================================

func TestRequireOperation(t *testing.T) {
	tests := []struct {
		name       string
		role       models.Role
		wantStatus int
	}{
		{name: "coach allowed", role: models.RoleCoach, wantStatus: http.StatusOK},
		{name: "admin not on coach-only list", role: models.RoleAdmin, wantStatus: http.StatusForbidden},
		{name: "athlete denied", role: models.RoleAthlete, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &models.User{ID: 1, Email: "x@example.com", Role: tt.role}
			auth := &mockAuthService{
				resolveIdentityFunc: func(ctx context.Context, token string) (*models.User, error) {
					return user, nil
				},
			}
			router := protectedRouter(auth, RequireOperation(authz.OpPerformanceCreate))

			w := performRequest(router, "Bearer good")
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRequireOperation_NoResolvedUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	// Misconfigured chain: the guard mounted without RequireAuth.
	router.GET("/protected", RequireOperation(authz.OpAthleteList), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := performRequest(router, "Bearer good")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
