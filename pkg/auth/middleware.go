package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/asifrahman/medibook/pkg/utils"
)

type ContextKey string

const CapabilityKey ContextKey = "capability"

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		jwtService := &JWTService{}
		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		cap := NewCapability(claims.UserID, claims.UserType, claims.HospitalID)
		ctx := context.WithValue(r.Context(), CapabilityKey, cap)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CapabilityFromContext returns the capability stored by AuthMiddleware.
func CapabilityFromContext(ctx context.Context) (Capability, bool) {
	cap, ok := ctx.Value(CapabilityKey).(Capability)
	return cap, ok
}
