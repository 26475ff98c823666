// Package render holds JSON request/response helpers shared by HTTP handlers.
package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// ErrEmptyBody is returned when a request carries no usable JSON document.
var ErrEmptyBody = errors.New("request body is empty or not valid JSON")

// JSON writes payload with the given status.
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// DecodeBody decodes the request body into dst. A missing body, malformed
// JSON, or a literal null yields ErrEmptyBody.
func DecodeBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return ErrEmptyBody
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return ErrEmptyBody
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return ErrEmptyBody
	}
	return nil
}

// DecodeObject is DecodeBody for endpoints where an object with no members
// carries nothing to act on; `{}` also yields ErrEmptyBody.
func DecodeObject(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return ErrEmptyBody
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return ErrEmptyBody
	}
	if compact.String() == "{}" {
		return ErrEmptyBody
	}
	r.Body = io.NopCloser(bytes.NewReader(raw))
	return DecodeBody(r, dst)
}
