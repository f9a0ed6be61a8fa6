package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dsemenov/go-shield/internal/logger"
	"github.com/dsemenov/go-shield/internal/problem"
	"github.com/dsemenov/go-shield/internal/utils"
	"github.com/dsemenov/go-shield/models"
	"github.com/go-chi/chi/v5"
)

// Listing defaults applied when the query parameters are absent.
const (
	defaultListLimit  = 20
	defaultListOffset = 0
)

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		h.writeProblem(w, r, http.StatusUnauthorized, "Authentication Error", "invalid authentication credentials", nil)
		return
	}

	var request models.ItemCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		h.writeProblem(w, r, http.StatusBadRequest, "Invalid Request", "invalid JSON was passed", nil)
		return
	}

	created, err := h.services.ItemService.CreateItem(ctx, principal, request)
	if err != nil {
		h.writeItemProblem(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, created, http.StatusCreated); err != nil {
		log.Err(err).Msg("writing item response failed")
	}
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		h.writeProblem(w, r, http.StatusUnauthorized, "Authentication Error", "invalid authentication credentials", nil)
		return
	}

	id, ok := h.itemIDFromRequest(w, r)
	if !ok {
		return
	}

	item, err := h.services.ItemService.GetItem(ctx, principal, id)
	if err != nil {
		h.writeItemProblem(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, item, http.StatusOK); err != nil {
		log.Err(err).Msg("writing item response failed")
	}
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		h.writeProblem(w, r, http.StatusUnauthorized, "Authentication Error", "invalid authentication credentials", nil)
		return
	}

	limit, ok := h.queryInt(w, r, "limit", defaultListLimit)
	if !ok {
		return
	}
	offset, ok := h.queryInt(w, r, "offset", defaultListOffset)
	if !ok {
		return
	}

	items, err := h.services.ItemService.ListItems(ctx, principal, limit, offset)
	if err != nil {
		h.writeItemProblem(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, items, http.StatusOK); err != nil {
		log.Err(err).Msg("writing item listing failed")
	}
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		h.writeProblem(w, r, http.StatusUnauthorized, "Authentication Error", "invalid authentication credentials", nil)
		return
	}

	id, ok := h.itemIDFromRequest(w, r)
	if !ok {
		return
	}

	var request models.ItemUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		h.writeProblem(w, r, http.StatusBadRequest, "Invalid Request", "invalid JSON was passed", nil)
		return
	}

	updated, err := h.services.ItemService.UpdateItem(ctx, principal, id, request)
	if err != nil {
		h.writeItemProblem(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, updated, http.StatusOK); err != nil {
		log.Err(err).Msg("writing item response failed")
	}
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		h.writeProblem(w, r, http.StatusUnauthorized, "Authentication Error", "invalid authentication credentials", nil)
		return
	}

	id, ok := h.itemIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.ItemService.DeleteItem(ctx, principal, id); err != nil {
		h.writeItemProblem(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// itemIDFromRequest parses the {id} route parameter. A non-numeric value is
// a validation problem, not a routing miss.
func (h *Handler) itemIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.writeProblem(w, r, http.StatusUnprocessableEntity, "Validation Error", "item id must be an integer",
			[]problem.FieldError{{Field: "id", Message: "must be an integer"}})
		return 0, false
	}

	return id, true
}

// queryInt parses an optional integer query parameter, falling back to the
// given default when the parameter is absent.
func (h *Handler) queryInt(w http.ResponseWriter, r *http.Request, name string, fallback int64) (int64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, true
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.writeProblem(w, r, http.StatusUnprocessableEntity, "Validation Error", name+" must be an integer",
			[]problem.FieldError{{Field: name, Message: "must be an integer"}})
		return 0, false
	}

	return value, true
}
