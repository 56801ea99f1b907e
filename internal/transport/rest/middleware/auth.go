package middleware

import (
	"context"
	"net/http"
	"strings"

	"kisanmitra/internal/model"
	"kisanmitra/internal/service"
	"kisanmitra/internal/transport/rest/response"
)

type contextKey string

const (
	FarmerIDKey  contextKey = "farmerId"
	AdminIDKey   contextKey = "adminId"
	AdminRoleKey contextKey = "adminRole"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	authSvc *service.AuthService
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authSvc *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authSvc: authSvc}
}

// RequireFarmer validates a farmer JWT from the Authorization header
func (m *AuthMiddleware) RequireFarmer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			response.Error(w, r, http.StatusUnauthorized, response.CodeUnauthorized, "missing authorization header")
			return
		}

		claims, err := m.authSvc.ValidateFarmerToken(token)
		if err != nil {
			response.Error(w, r, http.StatusUnauthorized, response.CodeUnauthorized, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), FarmerIDKey, claims.FarmerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin validates an admin or counselor JWT from the Authorization
// header or, for WebSocket upgrades, the token query param.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			token = r.URL.Query().Get("token")
		}
		if token == "" {
			response.Error(w, r, http.StatusUnauthorized, response.CodeUnauthorized, "missing authorization")
			return
		}

		claims, err := m.authSvc.ValidateAdminToken(token)
		if err != nil {
			response.Error(w, r, http.StatusUnauthorized, response.CodeUnauthorized, "invalid or expired token")
			return
		}

		ctx := r.Context()
		ctx = context.WithValue(ctx, AdminIDKey, claims.AdminID)
		ctx = context.WithValue(ctx, AdminRoleKey, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetFarmerID extracts the farmer ID from context
func GetFarmerID(ctx context.Context) string {
	if v := ctx.Value(FarmerIDKey); v != nil {
		return v.(string)
	}
	return ""
}

// GetAdminID extracts the admin ID from context
func GetAdminID(ctx context.Context) string {
	if v := ctx.Value(AdminIDKey); v != nil {
		return v.(string)
	}
	return ""
}

// GetAdminRole extracts the admin role from context
func GetAdminRole(ctx context.Context) model.AdminRole {
	if v := ctx.Value(AdminRoleKey); v != nil {
		return v.(model.AdminRole)
	}
	return ""
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
