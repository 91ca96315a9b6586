package middleware

import (
	"net/http"
	"time"

	"github.com/kbukum/sttproxy/logger"
)

var probePaths = map[string]bool{
	"/health": true,
	"/alive":  true,
	"/ready":  true,
}

// IsProbePath reports whether path is a health probe endpoint. Probes are
// neither logged nor traced.
func IsProbePath(path string) bool {
	return probePaths[path]
}

// RequestLogger logs method, path, status and duration for every request
// except probe endpoints. 5xx logs at error, 4xx at warn, the rest at info.
func RequestLogger(log *logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if IsProbePath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			sw := newStatusWriter(w)
			next.ServeHTTP(sw, r)

			fields := map[string]interface{}{
				"method":               r.Method,
				"path":                 r.URL.Path,
				logger.FieldStatusCode: sw.status,
				logger.FieldDuration:   time.Since(start).Milliseconds(),
				logger.FieldBytes:      sw.bytes,
			}

			l := log.WithContext(r.Context())
			switch {
			case sw.status >= 500:
				l.Error("Request completed", fields)
			case sw.status >= 400:
				l.Warn("Request completed", fields)
			default:
				l.Info("Request completed", fields)
			}
		})
	}
}
