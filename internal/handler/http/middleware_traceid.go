package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDHeader carries the request trace id. An inbound value is echoed
// back; otherwise a fresh uuid is generated. The id tags every log line of
// the request and becomes the correlation id of any problem document the
// request produces.
const traceIDHeader = "X-Trace-ID"

// traceIDCtxKey keys the trace id in the request context.
type traceIDCtxKey struct{}

func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		ctx := context.WithValue(r.Context(), traceIDCtxKey{}, traceID)
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

// traceIDFromRequest returns the trace id stored by withTraceID, or an empty
// string when the middleware did not run.
func traceIDFromRequest(r *http.Request) string {
	traceID, _ := r.Context().Value(traceIDCtxKey{}).(string)
	return traceID
}
