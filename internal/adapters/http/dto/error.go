package dto

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/todolist-service/internal/domain"
	"github.com/jsamuelsen11/todolist-service/internal/platform/logging"
)

// Error envelope messages.
const (
	MsgValidationFailed = "Validation failed"
	MsgInternalError    = "Internal server error"
)

// WriteErrorResponse maps err onto an error envelope:
//
//	*domain.ValidationError  → 400 "Validation failed", one entry per field
//	*domain.RuleError        → 400 with the rule message
//	anything else            → 500 "Internal server error"
//
// Infrastructure details are logged, never returned.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	status, body := errorEnvelope(err)
	if status >= http.StatusInternalServerError {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "request failed with internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
	WriteJSON(w, r, status, body)
}

// WriteNotFound writes a 404 envelope carrying the error message.
func WriteNotFound(w http.ResponseWriter, r *http.Request, err error) {
	WriteJSON(w, r, http.StatusNotFound, Fail(err.Error()))
}

func errorEnvelope(err error) (int, Envelope[any]) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, Fail(MsgValidationFailed, fieldErrors(verr)...)
	}

	var rerr *domain.RuleError
	if errors.As(err, &rerr) {
		return http.StatusBadRequest, Fail(rerr.Message)
	}

	return http.StatusInternalServerError, Fail(MsgInternalError)
}

// fieldErrors renders "field: message" entries in field order.
func fieldErrors(verr *domain.ValidationError) []string {
	out := make([]string, 0, len(verr.Fields))
	for _, field := range verr.SortedFields() {
		out = append(out, field+": "+verr.Fields[field])
	}
	return out
}
