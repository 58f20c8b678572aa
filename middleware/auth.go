package middleware

import (
	"context"
	"net/http"
	"strings"

	"bloodaid/models"
	"bloodaid/store"
	"bloodaid/utils"
)

// Key type for context
type contextKey string

const UserContextKey = contextKey("user")

// Access is the capability a route requires.
type Access int

const (
	// Public routes run without any credential.
	Public Access = iota
	// Authenticated routes require a valid bearer token.
	Authenticated
	// Admin routes additionally require the caller's stored role to be
	// "admin".
	Admin
)

// RoleFinder resolves the stored role for a verified email.
type RoleFinder interface {
	FindRoleByEmail(ctx context.Context, email string) (string, error)
}

// Guard evaluates route access levels. One Guard serves every route; the
// required level comes from the route table.
type Guard struct {
	Verifier utils.TokenVerifier
	Roles    RoleFinder
}

// Protect wraps next with the checks the given access level requires.
func (g *Guard) Protect(access Access, next http.Handler) http.Handler {
	switch access {
	case Authenticated:
		return g.authenticate(next)
	case Admin:
		return g.authenticate(g.requireAdmin(next))
	default:
		return next
	}
}

// authenticate verifies the bearer token and attaches the verified identity
// to the request context. No store access happens before the token is valid.
func (g *Guard) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			utils.RespondError(w, http.StatusUnauthorized, "Authorization header missing")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.RespondError(w, http.StatusUnauthorized, "Invalid Authorization header format")
			return
		}

		claims, err := g.Verifier.Verify(parts[1])
		if err != nil {
			utils.RespondError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAdmin checks the stored role of the verified caller on every
// request; admin decisions are never cached.
func (g *Guard) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			utils.RespondError(w, http.StatusUnauthorized, "Could not parse user from context")
			return
		}

		role, err := g.Roles.FindRoleByEmail(r.Context(), claims.Email)
		if err == store.ErrNotFound {
			utils.RespondError(w, http.StatusForbidden, "Forbidden: Admins only")
			return
		}
		if err != nil {
			utils.RespondError(w, http.StatusInternalServerError, "Database error")
			return
		}
		if role != models.RoleAdmin {
			utils.RespondError(w, http.StatusForbidden, "Forbidden: Admins only")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ClaimsFromContext extracts the verified identity attached by the Guard.
func ClaimsFromContext(ctx context.Context) (*utils.Claims, bool) {
	claims, ok := ctx.Value(UserContextKey).(*utils.Claims)
	return claims, ok
}
