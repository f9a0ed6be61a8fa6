package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Sentinel errors returned for the corresponding HTTP status classes.
// Match them with errors.Is; the full problem document is available through
// errors.As with [*APIError].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrRequestTimeout      = errors.New("request timeout")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrValidation          = errors.New("validation failed")
	ErrInternalServerError = errors.New("internal server error")
)

// FieldError pins a validation message to the request field that caused it.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Problem is the RFC 7807 problem document the server returns on errors.
type Problem struct {
	Type          string       `json:"type"`
	Title         string       `json:"title"`
	Status        int          `json:"status"`
	Detail        string       `json:"detail"`
	Instance      string       `json:"instance"`
	CorrelationID string       `json:"correlation_id"`
	Errors        []FieldError `json:"errors,omitempty"`
}

// APIError is a non-2xx server response. It wraps the status sentinel so
// errors.Is works, and carries the decoded problem document when the server
// sent one.
type APIError struct {
	StatusCode int
	Problem    Problem
}

func (e *APIError) Error() string {
	detail := e.Problem.Detail
	if detail == "" {
		detail = http.StatusText(e.StatusCode)
	}
	if e.Problem.CorrelationID != "" {
		return fmt.Sprintf("http %d: %s (correlation id %s)", e.StatusCode, detail, e.Problem.CorrelationID)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, detail)
}

func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusRequestTimeout:
		return ErrRequestTimeout
	case http.StatusRequestEntityTooLarge:
		return ErrPayloadTooLarge
	case http.StatusUnprocessableEntity:
		return ErrValidation
	case http.StatusInternalServerError:
		return ErrInternalServerError
	default:
		return nil
	}
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode()}

	contentType := resp.Header().Get("Content-Type")
	if strings.HasPrefix(contentType, "application/problem+json") {
		// decode failures leave an empty problem; the status code still maps
		_ = json.Unmarshal(resp.Body(), &apiErr.Problem)
	}
	if apiErr.Problem.Detail == "" {
		apiErr.Problem.Detail = strings.TrimSpace(string(resp.Body()))
	}

	return apiErr
}
