package server

import (
	"net/http"
)

func (s *Server) securityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		// Strict-Transport-Security: max-age=2 years
		h.Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		// the sun position tool may ask for the visitor's location, nothing else may
		h.Set("Permissions-Policy", "geolocation=(self), camera=(), microphone=(), payment=()")

		next.ServeHTTP(w, r)
	})
}
