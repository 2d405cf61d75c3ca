package middleware

import (
	"net/http"

	"github.com/oggyb/portfolio-inbox/internal/auth"
	"github.com/oggyb/portfolio-inbox/internal/response"
	"go.uber.org/zap"
)

// AdminGate rejects requests that do not carry the admin secret.
func AdminGate(gate *auth.Gate, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			secret := auth.Credential(r)
			if secret == "" {
				response.RespondError(w, http.StatusUnauthorized, "Admin credentials required")
				return
			}
			if !gate.Authorize(secret) {
				log.Warn("admin authorization failed", zap.String("ip", ClientIP(r)), zap.String("path", r.URL.Path))
				response.RespondError(w, http.StatusUnauthorized, "Invalid admin credentials")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
