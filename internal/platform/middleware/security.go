package middleware

import (
	"net/http"
	"strings"
)

// securityHeaders are the OWASP REST headers set on every API response.
var securityHeaders = [...][2]string{
	{"Cache-Control", "no-store"},
	{"Content-Security-Policy", "frame-ancestors 'none'"},
	{"Cross-Origin-Opener-Policy", "same-origin"},
	{"Cross-Origin-Resource-Policy", "same-origin"},
	{"Permissions-Policy", "accelerometer=(), camera=(), geolocation=(), gyroscope=(), magnetometer=(), microphone=(), payment=(), usb=()"},
	{"Referrer-Policy", "strict-origin-when-cross-origin"},
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
}

// Security returns middleware that sets securityHeaders on every response
// except those under one of docsRoutes.
//
// A docs route covers itself and anything below it separated by '/', '.' or
// '-', so "/openapi" covers "/openapi.json" and "/openapi-3.0.yaml" but not
// "/openapiv2". The interactive reference page loads scripts and styles that
// the headers above would block.
func Security(docsRoutes ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !underAny(r.URL.Path, docsRoutes) {
				h := w.Header()
				for _, kv := range securityHeaders {
					h.Set(kv[0], kv[1])
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func underAny(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if p == "" || !strings.HasPrefix(path, p) {
			continue
		}
		if len(path) == len(p) {
			return true
		}
		switch path[len(p)] {
		case '/', '.', '-':
			return true
		}
	}
	return false
}
