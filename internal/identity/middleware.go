package identity

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/osse101/Lockbox_Go/internal/domain"
	"github.com/osse101/Lockbox_Go/internal/logger"
)

// RequireCaller rejects requests without a valid bearer token and stores the
// token subject as the caller for downstream handlers.
func RequireCaller(v *Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearer(r.Header.Get(HeaderAuthorization))
			if token == "" {
				writeUnauthorized(w)
				return
			}

			caller, err := v.Verify(token)
			if err != nil {
				logger.FromContext(r.Context()).Warn(LogMsgTokenRejected, "path", r.URL.Path, "error", err)
				writeUnauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller)))
		})
	}
}

func extractBearer(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, BearerScheme) {
		return ""
	}
	return strings.TrimSpace(token)
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", BearerScheme)
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": domain.ErrMsgUnauthenticated})
}
