// Package middleware provides HTTP middleware for the Level Up API.
//
// # Available Middleware
//
//   - Recovery: turns panics into a 500 Problem Details response
//   - RequestID: assigns or propagates X-Request-ID
//   - Logger: one slog line per request
//   - CORS: origin allow-list and preflight handling
//   - Compress: gzip response bodies
//   - Tracing: OpenTelemetry server span per request
//
// Middleware is composed with Chain, outermost first:
//
//	h := middleware.Chain(mux,
//	    middleware.Recovery,
//	    middleware.RequestID,
//	    middleware.Logger,
//	    middleware.CORS(origins),
//	    middleware.Compress,
//	    middleware.Tracing(otel.GetTracerProvider(), otel.GetTextMapPropagator()),
//	)
//
// Handlers read the request id with GetRequestID(r.Context()).
package middleware
