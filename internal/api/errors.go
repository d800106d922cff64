package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nerrad567/gray-logic-homegraph/internal/enumerate"
	"github.com/nerrad567/gray-logic-homegraph/internal/wire"
)

// Error is the response envelope for every failure.
type Error struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes.
const (
	ErrCodeBadRequest     = "bad_request"
	ErrCodeNotFound       = "not_found"
	ErrCodeNotImplemented = "not_implemented"
	ErrCodeUnauthorized   = "unauthorised"
	ErrCodeUnavailable    = "unavailable"
	ErrCodeInternal       = "internal_error"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", wire.ContentTypeJSON)
	w.WriteHeader(status)
	if v != nil {
		//nolint:errcheck // Best-effort write to response; connection may be closed
		json.NewEncoder(w).Encode(v)
	}
}

// writeEncoded writes v with the negotiated codec.
func writeEncoded(w http.ResponseWriter, codec wire.Codec, status int, v any) {
	data, err := codec.Marshal(v)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, Error{
			Status:  http.StatusInternalServerError,
			Code:    ErrCodeInternal,
			Message: "encoding response failed",
		})
		return
	}
	w.Header().Set("Content-Type", codec.ContentType())
	w.WriteHeader(status)
	w.Write(data) //nolint:errcheck // Best-effort write to response
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, Error{Status: status, Code: code, Message: message})
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, ErrCodeBadRequest, message)
}

func writeNotFound(w http.ResponseWriter, message string) {
	writeError(w, http.StatusNotFound, ErrCodeNotFound, message)
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="homegraph"`)
	writeError(w, http.StatusUnauthorized, ErrCodeUnauthorized, message)
}

func writeInternalError(w http.ResponseWriter, message string) {
	writeError(w, http.StatusInternalServerError, ErrCodeInternal, message)
}

// statusFor maps the enumeration error vocabulary onto HTTP.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, enumerate.ErrNotFound):
		return http.StatusNotFound, ErrCodeNotFound
	case errors.Is(err, enumerate.ErrNotImplemented):
		return http.StatusNotImplemented, ErrCodeNotImplemented
	case errors.Is(err, enumerate.ErrInvalidArgument):
		return http.StatusBadRequest, ErrCodeBadRequest
	}
	return http.StatusInternalServerError, ErrCodeInternal
}

// writeServiceError writes err in the negotiated codec. Internal errors
// are not echoed to the caller.
func writeServiceError(w http.ResponseWriter, codec wire.Codec, err error) {
	status, code := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}
	writeEncoded(w, codec, status, Error{Status: status, Code: code, Message: message})
}
