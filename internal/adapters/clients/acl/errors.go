// Package acl implements the outbound client of the todo list REST API. It
// translates response envelopes back into domain views and domain errors,
// so callers such as the todoctl CLI work with the same error taxonomy as
// the service itself.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	acltodo "github.com/jsamuelsen11/todolist-service/internal/adapters/clients/acl/todo"
	"github.com/jsamuelsen11/todolist-service/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// msgValidationFailed marks a 400 envelope that carries field errors.
const msgValidationFailed = "Validation failed"

// TranslateHTTPError maps an error envelope to a domain error:
//
//   - 404 becomes a *domain.RuleError of kind domain.ErrItemNotFound.
//   - 400 "Validation failed" becomes a *domain.ValidationError rebuilt from
//     the "field: message" entries.
//   - Any other 400 becomes a *domain.RuleError carrying the server message.
//   - 5xx wraps domain.ErrUnavailable.
func TranslateHTTPError(resp *http.Response) error {
	env := parseEnvelope(resp)

	message := env.Message
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return &domain.RuleError{Kind: domain.ErrItemNotFound, Message: message}

	case resp.StatusCode == http.StatusBadRequest:
		if message == msgValidationFailed && len(env.Errors) > 0 {
			return toValidationError(env.Errors)
		}
		return &domain.RuleError{Kind: domain.ErrBusinessRule, Message: message}

	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s (status %d): %w", message, resp.StatusCode, domain.ErrUnavailable)

	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, message)
	}
}

// parseEnvelope reads the error envelope. A body that is not an envelope
// yields the zero value.
func parseEnvelope(resp *http.Response) acltodo.EnvelopeDTO {
	if resp.Body == nil {
		return acltodo.EnvelopeDTO{}
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		return acltodo.EnvelopeDTO{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return acltodo.EnvelopeDTO{}
	}

	var env acltodo.EnvelopeDTO
	if err := json.Unmarshal(body, &env); err != nil {
		return acltodo.EnvelopeDTO{}
	}
	return env
}

// toValidationError splits "field: message" entries. An entry without a
// separator is filed under "body".
func toValidationError(entries []string) *domain.ValidationError {
	fields := make(map[string]string, len(entries))
	for _, e := range entries {
		field, msg, ok := strings.Cut(e, ": ")
		if !ok {
			field, msg = "body", e
		}
		fields[field] = msg
	}
	return &domain.ValidationError{Fields: fields}
}
