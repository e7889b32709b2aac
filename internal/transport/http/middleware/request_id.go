package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	appctx "github.com/placeshare/places-service/internal/pkg/context"
)

// RequestID tags every request: an inbound id is kept, otherwise a fresh
// one is minted. The id rides the context for logs and error bodies and
// is echoed on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(appctx.HeaderRequestID))
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(appctx.HeaderRequestID, id)
		next.ServeHTTP(w, r.WithContext(appctx.WithRequestID(r.Context(), id)))
	})
}
