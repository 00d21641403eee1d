package middleware

import (
	"net/http"
	"strings"

	"github.com/graceline/byom-backend/api/responses"
	pkgauth "github.com/graceline/byom-backend/pkg/auth"
	"github.com/graceline/byom-backend/pkg/config"
	pkgerrors "github.com/graceline/byom-backend/pkg/errors"
	"github.com/graceline/byom-backend/pkg/logger"
)

// Auth validates a bearer token and seeds the request context with the
// token subject. Cart sync and saved designs require it.
func Auth(cfg config.JWTConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgauth.ParseAccessToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}
			if claims.Subject == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing token subject"))
				return
			}

			ctx := WithUserID(r.Context(), claims.Subject)
			if logg != nil {
				ctx = logg.WithField(ctx, "user_id", claims.Subject)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth parses a bearer token when one is presented but lets
// anonymous requests through. The asset catalog uses it to merge a
// caller's custom uploads into the shared list.
func OptionalAuth(cfg config.JWTConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := pkgauth.ParseAccessToken(cfg, token)
			if err != nil || claims.Subject == "" {
				// a bad token on an optional route degrades to anonymous
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithUserID(r.Context(), claims.Subject)
			if logg != nil {
				ctx = logg.WithField(ctx, "user_id", claims.Subject)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(raw), "bearer ") {
		return strings.TrimSpace(raw[7:])
	}
	return raw
}
