// Package httputil writes the JSON result envelope shared by every endpoint.
//
// Every response has the shape {"succeeded": bool, "message": string|null, "data": any}.
// Failures additionally carry the machine-readable error code under "error".
package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	dErrors "marlin/pkg/domain-errors"
)

const (
	maxBodyBytes = 1 << 20

	// GenericFailureMessage is shown for infrastructure failures; details stay in logs.
	GenericFailureMessage = "an internal error occurred, please try again later"
)

// Envelope is the result wrapper returned by every operation.
type Envelope struct {
	Succeeded bool    `json:"succeeded"`
	Message   *string `json:"message"`
	Data      any     `json:"data,omitempty"`
	Error     string  `json:"error,omitempty"`
}

// Validatable is implemented by request bodies that check their own shape after decoding.
type Validatable interface {
	Validate() error
}

// WriteJSON encodes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteSuccess writes a 200 envelope. An empty message is rendered as null.
func WriteSuccess(w http.ResponseWriter, message string, data any) {
	env := Envelope{Succeeded: true, Data: data}
	if message != "" {
		env.Message = &message
	}
	WriteJSON(w, http.StatusOK, env)
}

// WriteError maps a coded error to a failure envelope. Infrastructure failures
// get a generic message so storage details never reach clients.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	message := GenericFailureMessage
	if code.IsClientError() {
		if de, ok := dErrors.As(err); ok {
			message = de.Message
		}
	}
	WriteJSON(w, StatusFor(code), Envelope{
		Succeeded: false,
		Message:   &message,
		Error:     string(code),
	})
}

// StatusFor returns the HTTP status for an error code. Not-found and
// business-rule rejections share 400 with validation failures.
func StatusFor(code dErrors.Code) int {
	if code.IsClientError() {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// DecodeAndPrepare decodes a JSON body into T and runs its Validate method when
// present. On failure the error envelope is already written and ok is false.
func DecodeAndPrepare[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (*T, bool) {
	var req T
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		logger.WarnContext(ctx, "failed to decode request body",
			"request_id", requestID,
			"error", err,
		)
		msg := "request body must be valid JSON"
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			msg = "request body is too large"
		}
		WriteError(w, dErrors.Wrap(err, dErrors.CodeValidation, msg))
		return nil, false
	}

	if v, ok := any(&req).(Validatable); ok {
		if err := v.Validate(); err != nil {
			logger.WarnContext(ctx, "invalid request",
				"request_id", requestID,
				"error", err,
			)
			WriteError(w, err)
			return nil, false
		}
	}
	return &req, true
}
