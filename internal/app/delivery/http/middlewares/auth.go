package middlewares

import (
	"context"
	"net/http"
	"strings"

	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"

	"github.com/golang-jwt/jwt/v4"
)

// Auth enforces the bearer-token precondition: no token, no upstream call.
// The verified token and its subject are placed on the context for the
// upstream clients to forward.
func (m *Middlewares) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(constvars.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, constvars.BearerTokenPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		tokenString := strings.TrimPrefix(header, constvars.BearerTokenPrefix)

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(m.InternalConfig.JWT.Secret), nil
		})
		if err != nil || !token.Valid {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		userID, _ := claims["user_id"].(string)
		if userID == "" {
			userID, _ = claims["sub"].(string)
		}

		ctx := context.WithValue(r.Context(), constvars.ContextBearerTokenKey, tokenString)
		ctx = context.WithValue(ctx, constvars.ContextUserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
