package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/nasafacts/community-service/internal/config"
	"github.com/nasafacts/community-service/internal/model"
)

const bearerPrefix = "Bearer "

// AuthInterceptorHTTP resolves the optional bearer token. Requests without one pass
// through anonymously; a token that does not verify is rejected.
func AuthInterceptorHTTP(next http.Handler, verifier AccessVerifier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(w, r)
			return
		}

		if !strings.HasPrefix(header, bearerPrefix) {
			writeUnauthorized(w, "malformed authorization header")
			return
		}

		claims, err := verifier.ValidateAccessToken(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
		if err != nil {
			writeUnauthorized(w, model.ErrAuth.Error())
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			writeUnauthorized(w, model.ErrAuth.Error())
			return
		}

		identity := model.Identity{
			UserID:    userID,
			Email:     claims.Email,
			Providers: claims.Providers,
			Name:      claims.Name,
			UserName:  claims.UserName,
			AvatarURL: claims.AvatarURL,
		}

		ctx := context.WithValue(r.Context(), config.KeyUUID, userID.String())
		ctx = context.WithValue(ctx, config.KeyIdentity, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func LoggerHTTP(next http.Handler, logger logger_lib.LoggerInterface) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), config.KeyLogger, logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RecoverHTTP turns a handler panic into a 500 and logs it.
func RecoverHTTP(next http.Handler, logger logger_lib.LoggerInterface) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.Error(fmt.Sprintf("panic serving %s %s: %v", r.Method, r.URL.Path, rec))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal error"})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
