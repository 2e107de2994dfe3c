package middleware

import (
	"net/http"

	"github.com/duka-labs/inventory-catalog/pkg/correlationid"
)

// CorrelationID reads the correlation ID header, generating one when absent,
// and makes it available via context and the response headers.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(correlationid.Header)
			if id == "" {
				id = correlationid.New()
			}

			w.Header().Set(correlationid.Header, id)
			next.ServeHTTP(w, r.WithContext(correlationid.NewContext(r.Context(), id)))
		})
	}
}
