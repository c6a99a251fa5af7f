package middleware

import (
	"net/http"
	"time"

	"shelter/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLog deja en el contexto un logger con el request id de chi y
// escribe una línea al terminar cada request.
func RequestLog(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqLog := log.With(map[string]any{"request_id": chimw.GetReqID(r.Context())})

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(logger.WithContext(r.Context(), reqLog)))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
			}
			if status >= http.StatusInternalServerError {
				reqLog.Error("request", fields)
				return
			}
			reqLog.Info("request", fields)
		})
	}
}
