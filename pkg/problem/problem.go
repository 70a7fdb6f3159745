// Package problem implements RFC 9457 problem+json documents. The
// development backend writes them; the HTTP invoker decodes them back
// into errors, so a backend failure carries its original title and
// detail across the wire.
package problem

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	ContentType = "application/problem+json"
	BaseURI     = "https://wellness-tracker.dev/problems"
)

// Problem represents an RFC 9457 problem+json document.
type Problem struct {
	Type   string       `json:"type"`
	Title  string       `json:"title"`
	Status int          `json:"status"`
	Detail string       `json:"detail,omitempty"`
	Errors []FieldError `json:"errors,omitempty"`
}

// FieldError represents a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// New creates a new Problem
func New(status int, problemType, title, detail string) *Problem {
	return &Problem{
		Type:   BaseURI + "/" + problemType,
		Title:  title,
		Status: status,
		Detail: detail,
	}
}

// WithErrors adds field errors to the problem
func (p *Problem) WithErrors(errors []FieldError) *Problem {
	p.Errors = errors
	return p
}

// Error makes a decoded Problem usable as a client-side error value.
func (p *Problem) Error() string {
	if p.Detail != "" {
		return fmt.Sprintf("%s (%d): %s", p.Title, p.Status, p.Detail)
	}
	return fmt.Sprintf("%s (%d)", p.Title, p.Status)
}

// Write writes the problem to the response
func (p *Problem) Write(w http.ResponseWriter) {
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(p.Status)
	json.NewEncoder(w).Encode(p)
}

// Decode reads a problem document from a response body. When the body
// is not a parseable problem, a generic one for the status is returned
// so callers always get a usable error.
func Decode(body io.Reader, status int) *Problem {
	var p Problem
	if err := json.NewDecoder(body).Decode(&p); err != nil || p.Status == 0 {
		return New(status, "unknown", http.StatusText(status), "")
	}
	return &p
}

// Common problem constructors

func NotFound(detail string) *Problem {
	return New(http.StatusNotFound, "not-found", "Not Found", detail)
}

func BadRequest(detail string) *Problem {
	return New(http.StatusBadRequest, "bad-request", "Bad Request", detail)
}

func ValidationError(detail string, errors []FieldError) *Problem {
	return New(http.StatusUnprocessableEntity, "validation-error", "Validation Error", detail).WithErrors(errors)
}

func InternalError(detail string) *Problem {
	return New(http.StatusInternalServerError, "internal-error", "Internal Server Error", detail)
}
