package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/domain/user"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/http/response"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/identity"
)

type contextKey string

const contextIdentityKey contextKey = "identity"

type AuthMiddleware struct {
	verifier identity.Verifier
}

func NewAuthMiddleware(verifier identity.Verifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Error(w, common.NewError(common.CodeUnauthorized, "missing authorization header", nil))
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Error(w, common.NewError(common.CodeUnauthorized, "invalid authorization header", nil))
			return
		}
		ident, err := m.verifier.VerifyToken(r.Context(), parts[1])
		if err != nil {
			response.Error(w, err)
			return
		}
		if !ident.EmailVerified {
			response.Error(w, common.NewError(common.CodeForbidden, "email not verified", nil))
			return
		}
		ctx := context.WithValue(r.Context(), contextIdentityKey, ident)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func IdentityFromContext(ctx context.Context) (*identity.Identity, bool) {
	ident, ok := ctx.Value(contextIdentityKey).(*identity.Identity)
	return ident, ok
}

func RequireRole(roles ...user.Role) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ident, ok := IdentityFromContext(r.Context())
			if !ok {
				response.Error(w, common.NewError(common.CodeUnauthorized, "not authenticated", nil))
				return
			}
			for _, role := range roles {
				if ident.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			response.Error(w, common.NewError(common.CodeForbidden, "insufficient role", nil))
		})
	}
}
