package middleware

import (
	"net/http"
	"strings"
)

// permissionsPolicy disables the powerful browser features the placeholder
// page has no use for. Revisit when real pages start needing any of these.
const permissionsPolicy = "camera=(), geolocation=(), microphone=(), payment=(), usb=()"

// Security returns middleware that sets security headers on all responses,
// following OWASP recommendations. The same set is applied to the HTML page
// and the API routes; only paths in skipPaths (e.g. "/api-docs", whose
// bundled viewer needs to frame itself) are excluded.
func Security(skipPaths ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, p := range skipPaths {
				if strings.HasPrefix(r.URL.Path, p) {
					next.ServeHTTP(w, r)
					return
				}
			}
			h := w.Header()
			h.Set("Cache-Control", "no-store")
			h.Set("Content-Security-Policy", "frame-ancestors 'none'")
			h.Set("Cross-Origin-Opener-Policy", "same-origin")
			h.Set("Cross-Origin-Resource-Policy", "same-origin")
			h.Set("Permissions-Policy", permissionsPolicy)
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			next.ServeHTTP(w, r)
		})
	}
}
