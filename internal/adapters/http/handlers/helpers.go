package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todolist-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todolist-service/internal/domain"
)

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// parseID extracts an int64 path parameter from the chi URL params.
func parseID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &domain.ValidationError{
			Fields: map[string]string{param: "must be a valid integer"},
		}
	}
	return id, nil
}

// decodeBody checks the request body against schema and decodes it into dst.
// The body is limited to maxJSONBodyBytes. On failure it writes a 400
// envelope and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, schema *dto.Schema, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := schema.Decode(r.Body, dst); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

func writeOK[T any](w http.ResponseWriter, r *http.Request, status int, data T, message string) {
	dto.WriteJSON(w, r, status, dto.OK(data, message))
}
