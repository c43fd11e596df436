package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/hireorbit/backend/internal/model"
	"github.com/hireorbit/backend/internal/repository"
)

// contextKey is an unexported type for context keys in this package, so no
// other package can read or shadow the authenticated user value.
type contextKey string

const userKey contextKey = "user"

// RequireAuth gates a route behind bearer-token authentication.
//
// Per request it walks extract → validate → resolve, short-circuiting to a
// 401 at the first failure:
//
//  1. Read the Authorization header; it must be "Bearer <token>".
//  2. Validate the token (signature, algorithm, issuer, expiry).
//  3. Resolve the token's subject (an email) to an account.
//
// On success the resolved *model.User is stored in the request context and
// retrievable with UserFromContext. A bad token never propagates further
// than this middleware — it is always translated to a rejection response.
func RequireAuth(tokens *TokenService, users repository.UserRepository, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, ok := bearerToken(r)
			if !ok {
				unauthorized(w, "Not authenticated")
				return
			}

			subject, err := tokens.Validate(tokenStr)
			if err != nil {
				logger.Debug("rejected token", slog.String("error", err.Error()))
				unauthorized(w, "Invalid credentials")
				return
			}

			user, err := users.FindUserByEmail(r.Context(), subject)
			if err != nil {
				// Covers both a subject that no longer resolves and a
				// storage failure; neither yields an authenticated request.
				logger.Debug("token subject did not resolve",
					slog.String("subject", subject),
					slog.String("error", err.Error()),
				)
				unauthorized(w, "User not found")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext retrieves the authenticated account from the request
// context. Returns (nil, false) if the request did not pass RequireAuth.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userKey).(*model.User)
	return user, ok && user != nil
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The scheme comparison is case-insensitive per RFC 9110.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"detail":"` + detail + `"}`))
}
