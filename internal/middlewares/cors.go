package middlewares

import (
	"net/http"
	"strings"
)

// CorsMiddleware answers preflight requests and echoes the configured origin.
// A comma separated list is accepted; "*" allows any origin.
func CorsMiddleware(allowed string) func(http.Handler) http.Handler {
	origins := strings.Split(allowed, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if origin := r.Header.Get("Origin"); origin != "" {
				if allowOrigin := match(origins, origin); allowOrigin != "" {
					h := w.Header()
					h.Set("Access-Control-Allow-Origin", allowOrigin)
					h.Add("Vary", "Origin")
					h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
					h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-LLM-API-Key")
					h.Set("Access-Control-Expose-Headers", "Content-Disposition")
					if allowOrigin != "*" {
						h.Set("Access-Control-Allow-Credentials", "true")
					}
				}
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func match(origins []string, origin string) string {
	for _, o := range origins {
		if o == "*" {
			return "*"
		}
		if strings.EqualFold(o, origin) {
			return origin
		}
	}
	return ""
}
