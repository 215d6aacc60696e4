package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrEmptyBody is returned by [DecodeJSON] when the request carried no body.
var ErrEmptyBody = errors.New("empty request body")

// ErrorResponse is the body written by [WriteError].
type ErrorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"traceId,omitempty"`
}

// WriteJSON serializes data to JSON and writes it with statusCode.
//
// If marshaling fails, it responds with 500 Internal Server Error and
// returns a wrapped error.
//
//	WriteJSON(w, models.SyncStatus{State: "idle"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes msg as an [ErrorResponse]. The trace id is copied from
// the request context when present.
func WriteError(w http.ResponseWriter, r *http.Request, msg string, statusCode int) {
	resp := ErrorResponse{Error: msg}
	if r != nil {
		resp.TraceID, _ = GetTraceIDFromContext(r.Context())
	}
	_, _ = WriteJSON(w, resp, statusCode)
}

// DecodeJSON decodes a single JSON value from body into v. Numbers are kept
// as [json.Number] so that item ids and free-form fields round-trip
// unchanged.
func DecodeJSON(body io.Reader, v any) error {
	if body == nil {
		return ErrEmptyBody
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("read request body: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyBody
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	if dec.More() {
		return errors.New("decode request body: trailing data")
	}
	return nil
}
