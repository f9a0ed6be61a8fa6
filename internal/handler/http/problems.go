package http

import (
	"errors"
	"net/http"

	"github.com/dsemenov/go-shield/internal/logger"
	"github.com/dsemenov/go-shield/internal/problem"
	"github.com/dsemenov/go-shield/internal/secrets"
	"github.com/dsemenov/go-shield/internal/service"
	"github.com/dsemenov/go-shield/internal/store"
)

// writeProblem renders an RFC 7807 problem response and logs the original
// detail server-side under the same correlation id. The correlation id is the
// request trace id, so a client-reported problem can be matched to every log
// line of the request that produced it. The logged detail passes through the
// secrets redactor; the client-visible detail is masked when the handler runs
// in production mode.
func (h *Handler) writeProblem(w http.ResponseWriter, r *http.Request, status int, title, detail string, fieldErrors []problem.FieldError) {
	p := problem.Build(status, title, detail, problem.Options{
		Errors:        fieldErrors,
		CorrelationID: traceIDFromRequest(r),
		MaskDetail:    h.maskErrorDetails,
	})

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.
		Str("correlation_id", p.CorrelationID).
		Int("status", status).
		Str("title", title).
		Msg(secrets.Redact(detail))

	if err := p.Write(w, r); err != nil {
		log.Err(err).Msg("writing problem response failed")
	}
}

// writeItemProblem maps an item-service error to its problem response.
func (h *Handler) writeItemProblem(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		h.writeProblem(w, r, http.StatusUnprocessableEntity, "Validation Error", validationErr.Error(), fieldErrors(validationErr))
	case errors.Is(err, store.ErrItemNotFound):
		h.writeProblem(w, r, http.StatusNotFound, "Not Found", "item not found", nil)
	case errors.Is(err, service.ErrPermissionDenied):
		h.writeProblem(w, r, http.StatusForbidden, "Permission Error", "not enough permissions to access this item", nil)
	default:
		h.writeProblem(w, r, http.StatusInternalServerError, "Internal Server Error", err.Error(), nil)
	}
}

// fieldErrors converts service-level violations to the problem document
// field error shape.
func fieldErrors(err *service.ValidationError) []problem.FieldError {
	out := make([]problem.FieldError, 0, len(err.Violations))
	for _, v := range err.Violations {
		out = append(out, problem.FieldError{Field: v.Field, Message: v.Message})
	}
	return out
}
