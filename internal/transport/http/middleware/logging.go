package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/you-humble/techrepair/platform/logger"
)

// Route labels for requests chi did not match. Raw paths never become labels.
const (
	RoutePreflight = "preflight"
	RouteUnmatched = "unmatched"
)

type RequestObserver interface {
	ObserveRequest(method, route string, code int, took time.Duration)
}

// Logging writes one line per request and reports it to obs.
// The request id set by chi's RequestID middleware is attached to every log call made while serving it.
func Logging(obs RequestObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx := r.Context()
			if reqID := chimw.GetReqID(ctx); reqID != "" {
				ctx = logger.WithContextFields(ctx, logger.String("request_id", reqID))
				r = r.WithContext(ctx)
			}

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			took := time.Since(start)

			route := routeLabel(r)

			if obs != nil {
				obs.ObserveRequest(r.Method, route, status, took)
			}

			logger.Info(ctx, "http request",
				logger.String("method", r.Method),
				logger.String("path", r.URL.Path),
				logger.String("route", route),
				logger.Int("status", status),
				logger.Int("bytes", ww.BytesWritten()),
				logger.Duration("took", took),
			)
		})
	}
}

func routeLabel(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	if r.Method == http.MethodOptions {
		return RoutePreflight
	}

	return RouteUnmatched
}
