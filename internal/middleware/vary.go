package middleware

import "net/http"

// Vary returns middleware that appends the given request header names to the
// Vary header on all responses. This API negotiates the response format from
// Accept (JSON or CBOR), so caches must key on it; the CORS middleware adds
// "Origin" on its own.
func Vary(headers ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, h := range headers {
				w.Header().Add("Vary", h)
			}
			next.ServeHTTP(w, r)
		})
	}
}
