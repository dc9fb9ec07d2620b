package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/workforcehq/workforce-backend-go/internal/handler/http/response"
)

// AuthRequired verifies the bearer token and rejects anything that is not a
// valid access token.
func AuthRequired(tokenAuth *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.Error(w, http.StatusUnauthorized, "invalid or missing token")
				return
			}

			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.Error(w, http.StatusUnauthorized, "invalid token type")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
