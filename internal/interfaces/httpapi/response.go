package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/nsflhq/nsfl-api/internal/usecase"
)

// listEnvelope is the paginated list shape the frontend consumes.
type listEnvelope struct {
	Docs          any  `json:"docs"`
	TotalDocs     int  `json:"totalDocs"`
	Limit         int  `json:"limit"`
	TotalPages    int  `json:"totalPages"`
	Page          int  `json:"page"`
	PagingCounter int  `json:"pagingCounter"`
	HasPrevPage   bool `json:"hasPrevPage"`
	HasNextPage   bool `json:"hasNextPage"`
	PrevPage      *int `json:"prevPage"`
	NextPage      *int `json:"nextPage"`
}

type docEnvelope struct {
	Doc     any    `json:"doc,omitempty"`
	Message string `json:"message,omitempty"`
}

type errorEnvelope struct {
	Errors []errorItem `json:"errors"`
}

type errorItem struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// fieldError carries per-field validation failures to the error writer
// while still matching ErrInvalidInput for status mapping.
type fieldError struct {
	items []errorItem
}

func (e *fieldError) Error() string {
	parts := make([]string, 0, len(e.items))
	for _, item := range e.items {
		if item.Field != "" {
			parts = append(parts, item.Field+": "+item.Message)
			continue
		}
		parts = append(parts, item.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *fieldError) Unwrap() error { return usecase.ErrInvalidInput }

func newFieldError(verr validator.ValidationErrors) *fieldError {
	items := make([]errorItem, 0, len(verr))
	for _, fe := range verr {
		items = append(items, errorItem{
			Field:   fe.Field(),
			Message: "failed on the '" + fe.Tag() + "' rule",
		})
	}
	return &fieldError{items: items}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeList(ctx context.Context, w http.ResponseWriter, envelope listEnvelope) {
	ctx, span := startSpan(ctx, "httpapi.writeList")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, envelope)
}

func writeDoc(ctx context.Context, w http.ResponseWriter, status int, doc any, message string) {
	ctx, span := startSpan(ctx, "httpapi.writeDoc")
	defer span.End()

	writeJSON(ctx, w, status, docEnvelope{Doc: doc, Message: message})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	status := errorStatus(ctx, err)

	var ferr *fieldError
	if errors.As(err, &ferr) {
		writeJSON(ctx, w, status, errorEnvelope{Errors: ferr.items})
		return
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		// Internal detail stays in the logs.
		message = "internal server error"
	}

	writeJSON(ctx, w, status, errorEnvelope{
		Errors: []errorItem{{Message: message}},
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	ctx, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	writeJSON(ctx, w, http.StatusInternalServerError, errorEnvelope{
		Errors: []errorItem{{Message: "internal server error"}},
	})
}

func errorStatus(ctx context.Context, err error) int {
	ctx, span := startSpan(ctx, "httpapi.errorStatus")
	defer span.End()

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, usecase.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, usecase.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
