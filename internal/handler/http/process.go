package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/dsemenov/go-shield/internal/guard"
	"github.com/dsemenov/go-shield/internal/logger"
	"github.com/dsemenov/go-shield/internal/problem"
	"github.com/dsemenov/go-shield/internal/utils"
	"github.com/dsemenov/go-shield/models"
	"github.com/google/uuid"
)

// Bounds for the client-controlled processing delay, in seconds.
const (
	minProcessDelay = 0
	maxProcessDelay = 30
)

// process runs a demo operation whose duration the client controls through
// the "delay" query parameter. The operation is bounded by the configured
// processing timeout; exceeding it yields a 408 problem response while the
// connection stays usable.
func (h *Handler) process(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	delay, ok := h.delayFromRequest(w, r)
	if !ok {
		return
	}

	result, completed, message := guard.RunBounded(ctx, h.processTimeout, func(opCtx context.Context) (models.ProcessResult, error) {
		select {
		case <-time.After(time.Duration(delay * float64(time.Second))):
			return models.ProcessResult{Processed: true, DelaySeconds: delay}, nil
		case <-opCtx.Done():
			return models.ProcessResult{}, opCtx.Err()
		}
	})
	if !completed {
		if message == guard.TimeoutMessage {
			h.writeProblem(w, r, http.StatusRequestTimeout, "Timeout Error", message, nil)
			return
		}
		h.writeProblem(w, r, http.StatusInternalServerError, "Internal Server Error", message, nil)
		return
	}

	if _, err := utils.WriteJSON(w, models.ProcessResponse{
		Result:        result,
		CorrelationID: uuid.NewString(),
	}, http.StatusOK); err != nil {
		log.Err(err).Msg("writing process response failed")
	}
}

// delayFromRequest parses and bounds the "delay" query parameter.
func (h *Handler) delayFromRequest(w http.ResponseWriter, r *http.Request) (float64, bool) {
	raw := r.URL.Query().Get("delay")
	if raw == "" {
		return 0, true
	}

	delay, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		h.writeProblem(w, r, http.StatusUnprocessableEntity, "Validation Error", "delay must be a number",
			[]problem.FieldError{{Field: "delay", Message: "must be a number"}})
		return 0, false
	}

	if delay < minProcessDelay || delay > maxProcessDelay {
		h.writeProblem(w, r, http.StatusUnprocessableEntity, "Validation Error", "delay must be between 0 and 30 seconds",
			[]problem.FieldError{{Field: "delay", Message: "must be between 0 and 30 seconds"}})
		return 0, false
	}

	return delay, true
}
