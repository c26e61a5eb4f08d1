package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	acltodo "github.com/jsamuelsen11/todolist-service/internal/adapters/clients/acl/todo"
	"github.com/jsamuelsen11/todolist-service/internal/platform/httpclient"
)

// Requester runs one API call: it builds the request, sends it through the
// httpclient.Client, translates error statuses and unwraps the envelope's
// data field.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// Do sends method path with reqBody encoded as JSON when it is non-nil.
// A status other than wantStatus goes through TranslateHTTPError. On success
// the envelope's data is decoded into respData when it is non-nil.
func (r *Requester) Do(ctx context.Context, method, path string, wantStatus int, reqBody, respData any) error {
	body := io.Reader(http.NoBody)
	if reqBody != nil {
		encoded, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshaling %s body for %s: %w", method, path, err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := r.client.NewRequest(ctx, method, path, body)
	if err != nil {
		return fmt.Errorf("creating %s request for %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return r.execute(req, wantStatus, respData)
}

func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body", slog.Any("error", err))
	}
}

func (r *Requester) execute(req *http.Request, wantStatus int, respData any) error {
	ctx := req.Context()

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		// Retries exhausted on a retryable status still return the response.
		if resp != nil {
			defer r.closeBody(ctx, resp)
			if resp.StatusCode != wantStatus {
				return TranslateHTTPError(resp)
			}
		}
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Any("error", err),
		)
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer r.closeBody(ctx, resp)

	if resp.StatusCode != wantStatus {
		r.logger.DebugContext(ctx, "unexpected status",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", wantStatus),
		)
		return TranslateHTTPError(resp)
	}

	if respData == nil {
		return nil
	}

	var env acltodo.EnvelopeDTO
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
	}
	if err := json.Unmarshal(env.Data, respData); err != nil {
		return fmt.Errorf("decoding data from %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}
