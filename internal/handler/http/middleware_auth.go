// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, tracing and problem-response rendering
// are all handled at this layer before requests are forwarded to the
// service layer.
package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/dsemenov/go-shield/internal/logger"
	"github.com/dsemenov/go-shield/internal/service"
	"github.com/dsemenov/go-shield/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token
// via [utils.ParseBearerToken], validates it through the auth service, and on
// success stores the verified principal in the request context under
// [utils.PrincipalCtxKey] before delegating to the next handler.
//
// Every rejection is a 401 problem response. The detail is kept generic so a
// caller cannot distinguish a malformed header from an expired or mis-signed
// token. The one exception is a cryptographically valid token whose subject
// no longer exists; that case reports "user not found".
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			h.writeProblem(w, r, http.StatusUnauthorized, "Authentication Error", "invalid authentication credentials", nil)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Warn().Err(err).Send()
			h.writeProblem(w, r, http.StatusUnauthorized, "Authentication Error", "invalid authentication credentials", nil)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.VerifyToken(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Msg("token verification failed")
			detail := "invalid authentication credentials"
			if errors.Is(err, service.ErrUserNotFound) {
				detail = "user not found"
			}
			h.writeProblem(w, r, http.StatusUnauthorized, "Authentication Error", detail, nil)
			return
		}

		// Store the verified principal in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.PrincipalCtxKey, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
