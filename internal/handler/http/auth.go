package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dsemenov/go-shield/internal/logger"
	"github.com/dsemenov/go-shield/internal/service"
	"github.com/dsemenov/go-shield/internal/store"
	"github.com/dsemenov/go-shield/internal/utils"
	"github.com/dsemenov/go-shield/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		h.writeProblem(w, r, http.StatusBadRequest, "Invalid Request", "invalid JSON was passed", nil)
		return
	}

	token, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.writeProblem(w, r, http.StatusUnprocessableEntity, "Validation Error", validationErr.Error(), fieldErrors(validationErr))
			return
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			h.writeProblem(w, r, http.StatusConflict, "Registration Error", "username already exists", nil)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			h.writeProblem(w, r, http.StatusConflict, "Registration Error", "email already exists", nil)
			return
		default:
			h.writeProblem(w, r, http.StatusInternalServerError, "Internal Server Error", err.Error(), nil)
			return
		}
	}

	log.Info().Int64("id", token.UserID).Msg("user registered")

	if _, err = utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   "bearer",
	}, http.StatusCreated); err != nil {
		log.Err(err).Msg("writing registration response failed")
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		h.writeProblem(w, r, http.StatusBadRequest, "Invalid Request", "invalid JSON was passed", nil)
		return
	}

	token, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.writeProblem(w, r, http.StatusUnauthorized, "Authentication Error", "Incorrect username or password", nil)
			return
		}
		h.writeProblem(w, r, http.StatusInternalServerError, "Internal Server Error", err.Error(), nil)
		return
	}

	log.Info().Int64("id", token.UserID).Msg("user logged in")

	if _, err = utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   "bearer",
	}, http.StatusOK); err != nil {
		log.Err(err).Msg("writing login response failed")
	}
}

// logout acknowledges the client's intent to discard its token. Tokens are
// stateless, so there is nothing to revoke server-side; clients drop the
// token and it ages out at its expiry.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if principal, ok := utils.GetPrincipalFromContext(r.Context()); ok {
		log.Info().Int64("id", principal.UserID).Msg("user logged out")
	}

	if _, err := utils.WriteJSON(w, map[string]string{"message": "Successfully logged out"}, http.StatusOK); err != nil {
		log.Err(err).Msg("writing logout response failed")
	}
}
