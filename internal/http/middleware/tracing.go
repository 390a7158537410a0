package middleware

import (
	"net/http"

	"go.opencensus.io/plugin/ochttp"
	"go.opencensus.io/trace"
)

// TracingMiddleware adds OpenCensus tracing to HTTP requests
func TracingMiddleware(next http.Handler) http.Handler {
	annotated := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// ochttp has opened the request span at this point
		if span := trace.FromContext(r.Context()); span != nil {
			span.AddAttributes(
				trace.StringAttribute("http.host", r.Host),
				trace.StringAttribute("http.user_agent", r.UserAgent()),
				trace.StringAttribute("http.method", r.Method),
				trace.StringAttribute("http.path", r.URL.Path),
			)

			if owner := r.URL.Query().Get("userId"); owner != "" {
				span.AddAttributes(trace.StringAttribute("coachdesk.user_id", owner))
			}

			if requestID := r.Header.Get("X-Request-ID"); requestID != "" {
				span.AddAttributes(trace.StringAttribute("http.request_id", requestID))
			}
		}

		next.ServeHTTP(&traceResponseWriter{ResponseWriter: w, r: r}, r)
	})

	return &ochttp.Handler{
		Handler: annotated,
		FormatSpanName: func(r *http.Request) string {
			return r.Method + " " + r.URL.Path
		},
		IsPublicEndpoint: true,
	}
}

// traceResponseWriter records the response status on the request span
type traceResponseWriter struct {
	http.ResponseWriter
	r          *http.Request
	statusCode int
}

func (trw *traceResponseWriter) WriteHeader(code int) {
	trw.statusCode = code

	if span := trace.FromContext(trw.r.Context()); span != nil {
		span.AddAttributes(trace.Int64Attribute("http.status_code", int64(code)))

		if code >= 400 {
			span.SetStatus(trace.Status{
				Code:    trace.StatusCodeUnknown,
				Message: http.StatusText(code),
			})
		}
	}

	trw.ResponseWriter.WriteHeader(code)
}

var _ http.ResponseWriter = (*traceResponseWriter)(nil)
