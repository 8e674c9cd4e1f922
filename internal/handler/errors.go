package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/pkordes/travel-tracker/internal/domain"
	"github.com/pkordes/travel-tracker/internal/handler/gen"
)

func errorBody(code, message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: code, Message: message}}
}

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the human-readable message (e.g. "trip not found")
// because the handler is the layer that knows what was being looked up.
func notFoundBody(message string) gen.ErrorResponse {
	return errorBody("not_found", message)
}

// validationBody returns an ErrorResponse for a domain validation failure.
// The message is extracted from the wrapped domain.ErrValidation error.
func validationBody(err error) gen.ErrorResponse {
	return errorBody("validation_error", unwrapMessage(err))
}

// requestBody returns an ErrorResponse for a bad request rejected before
// reaching the service layer (e.g. missing or malformed body).
func requestBody(message string) gen.ErrorResponse {
	return errorBody("validation_error", message)
}

// unwrapMessage extracts the human-readable part from a wrapped validation error.
// e.g. "service.TripService.Create: validation error: title is required" -> "title is required"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	marker := domain.ErrValidation.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}

func writeError(w http.ResponseWriter, status int, body gen.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// requestErrorHandler answers requests the generated layer rejects before a
// handler runs: malformed path or query parameters and unusable JSON bodies.
func requestErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	var badParam *gen.InvalidParamFormatError
	switch {
	case errors.As(err, &tooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, errorBody("payload_too_large", "request body too large"))
	case errors.As(err, &badParam):
		writeError(w, http.StatusUnprocessableEntity, requestBody(paramMessage(badParam.ParamName)))
	case errors.Is(err, io.EOF):
		writeError(w, http.StatusUnprocessableEntity, requestBody("request body is required"))
	default:
		writeError(w, http.StatusUnprocessableEntity, requestBody("malformed JSON body"))
	}
}

func paramMessage(name string) string {
	switch name {
	case "selected", "from", "to":
		return name + " must be YYYY-MM-DD"
	}
	return "invalid " + name
}

// responseErrorHandler turns an error returned by a handler into a bare 500.
// Details stay in the log written by recordFailures.
func responseErrorHandler(w http.ResponseWriter, _ *http.Request, _ error) {
	writeError(w, http.StatusInternalServerError, errorBody("internal_error", "internal server error"))
}

// recordFailures is a strict middleware. Handlers return an error only for
// failures they do not map to a response (store errors, mostly), so every
// one is logged and counted against the operation.
func (s *Server) recordFailures(f gen.StrictHandlerFunc, operationID string) gen.StrictHandlerFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request, request any) (any, error) {
		resp, err := f(ctx, w, r, request)
		if err != nil {
			s.metrics.StoreErrors.WithLabelValues(operationID).Inc()
			s.logger.Error().Err(err).
				Str("op", operationID).
				Str("path", r.URL.Path).
				Msg("request failed")
		}
		return resp, err
	}
}
