package http

import (
	"net/http"

	"github.com/dsemenov/go-shield/internal/logger"
	"github.com/dsemenov/go-shield/internal/utils"
)

// health reports service liveness. Unauthenticated so load balancers can
// probe it.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body := map[string]string{"status": "ok"}
	if h.version != "" {
		body["version"] = h.version
	}

	if _, err := utils.WriteJSON(w, body, http.StatusOK); err != nil {
		log.Err(err).Msg("writing health response failed")
	}
}
