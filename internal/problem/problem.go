// Package problem renders every rejection crossing the trust boundary as an
// RFC 7807 problem document: a structured, correlation-tagged error body
// served as application/problem+json.
//
// The correlation id threads a client-visible error to its server log entry.
// In production mode the human detail is replaced by a fixed generic phrase
// per status class; the original detail is only ever written to the log, and
// only after passing through the secrets redactor.
package problem

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ContentType is the media type problem documents are served with.
const ContentType = "application/problem+json"

// FieldError pins a validation message to the request field that caused it.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Problem is an RFC 7807 problem details document.
type Problem struct {
	Type          string       `json:"type"`
	Title         string       `json:"title"`
	Status        int          `json:"status"`
	Detail        string       `json:"detail"`
	Instance      string       `json:"instance"`
	CorrelationID string       `json:"correlation_id"`
	Errors        []FieldError `json:"errors,omitempty"`
}

// Options carries the optional inputs of [Build].
type Options struct {
	// TypeURI overrides the default status-class type URI.
	TypeURI string

	// Errors is the field-level error list attached to validation problems.
	Errors []FieldError

	// CorrelationID ties the document to a log entry; generated when empty.
	CorrelationID string

	// MaskDetail replaces the detail with a fixed generic phrase keyed by
	// status class. Set in production so internals never reach a client.
	MaskDetail bool
}

// Build assembles a problem document for the given status, title and detail.
//
// A fresh correlation id is generated when none is supplied, so any two
// distinct error responses carry distinct ids. When masking is requested the
// caller remains responsible for logging the original detail (redacted)
// server-side; Build discards it.
func Build(status int, title, detail string, opts Options) Problem {
	correlationID := opts.CorrelationID
	if correlationID == "" {
		correlationID = uuid.NewString()
	}

	if opts.MaskDetail {
		detail = maskedDetail(status)
	}

	typeURI := opts.TypeURI
	if typeURI == "" {
		typeURI = fmt.Sprintf("https://api.example.com/problems/%dxx", status/100)
	}

	return Problem{
		Type:          typeURI,
		Title:         title,
		Status:        status,
		Detail:        detail,
		CorrelationID: correlationID,
		Errors:        opts.Errors,
	}
}

// maskedDetail maps a status code to the fixed generic phrase shown to
// clients in production mode.
func maskedDetail(status int) string {
	switch status {
	case http.StatusUnprocessableEntity:
		return "Validation failed. Check request parameters."
	case http.StatusNotFound:
		return "Resource not found."
	case http.StatusInternalServerError:
		return "Internal server error."
	default:
		return "An error occurred."
	}
}

// Write serializes the problem document to w with the problem-specific
// content type. The instance member is populated from the request URL when
// not already set.
func (p Problem) Write(w http.ResponseWriter, r *http.Request) error {
	if p.Instance == "" && r != nil {
		p.Instance = r.URL.String()
	}

	body, err := json.Marshal(p)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return fmt.Errorf("error marshaling problem document: %w", err)
	}

	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(p.Status)

	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("error writing problem document: %w", err)
	}
	return nil
}
