package testutil

import (
	"context"
	"net/http"
	"time"

	"marlin/pkg/requestcontext"
)

// WithRequestID tags the request context the way the request-id middleware would.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), requestID))
}

// FixedContext returns a background context pinned to the given time, for
// registry-year and timestamp assertions.
func FixedContext(now time.Time) context.Context {
	return requestcontext.WithTime(context.Background(), now)
}
