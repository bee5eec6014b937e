package httpapi

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/contactvault/internal/server/models"
)

type ctxKey string

const identityKey ctxKey = "identity"

// IdentityFromContext retrieves the authenticated user from the request
// context. Returns nil if no identity is attached.
func IdentityFromContext(ctx context.Context) *models.User {
	user, ok := ctx.Value(identityKey).(*models.User)
	if !ok {
		return nil
	}
	return user
}

func setIdentity(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, identityKey, user)
}

// Protect wraps a handler to require authentication. The Authorization
// header value is the token verbatim: no "Bearer " prefix, no parsing. An
// absent, empty, or unknown token yields 401; on success the matched user
// record is attached to the request context for downstream handlers.
func (s *HTTPServer) Protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")

		user, err := s.users.ResolveToken(r.Context(), token)
		if err != nil {
			writeDomainError(w, err, "")
			return
		}

		ctx := setIdentity(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
