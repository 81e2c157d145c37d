package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-appointments/internal/adapters/inbound/http/gen"
)

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err gen.ErrorResp) {
	statusCode := http.StatusInternalServerError
	switch err.Error.Code {
	case gen.BADREQUEST:
		statusCode = http.StatusBadRequest
	case gen.NOTFOUND:
		statusCode = http.StatusNotFound
	case gen.ASSISTANTFAILURE:
		statusCode = http.StatusBadGateway
	case gen.TIMEOUT:
		statusCode = http.StatusGatewayTimeout
	}
	respondJSON(w, statusCode, err)
}

func badRequest(format string, args ...any) gen.ErrorResp {
	errResp := gen.ErrorResp{}
	errResp.Error.Code = gen.BADREQUEST
	errResp.Error.Message = fmt.Sprintf(format, args...)
	return errResp
}

// invalidParam answers parameter binding failures of the generated router.
func invalidParam(w http.ResponseWriter, r *http.Request, err error) {
	respondError(w, badRequest("%v", err))
}

// decodeJSONBody decodes an optional JSON body into dst. An empty body leaves
// dst untouched.
func decodeJSONBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// coalesce returns the first non-nil value. Body fields take precedence over
// query parameters.
func coalesce(values ...*string) *string {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}
