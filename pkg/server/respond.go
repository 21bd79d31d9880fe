package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/matzehuels/adjcode/pkg/errors"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Code      errors.Code `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"request_id,omitempty"`
}

// StatusFor maps an error to its HTTP status.
func StatusFor(err error) int {
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}

	switch errors.GetCode(err) {
	case errors.ErrCodeParse,
		errors.ErrCodeVertexOrder,
		errors.ErrCodeInvalidVertex,
		errors.ErrCodeAsymmetric,
		errors.ErrCodeWidthOverflow,
		errors.ErrCodeBadHeader,
		errors.ErrCodeTruncated,
		errors.ErrCodeInvalidInput:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidConfig:
		return http.StatusBadRequest
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.failWith(w, r, StatusFor(err), err)
}

func (s *Server) failWith(w http.ResponseWriter, r *http.Request, status int, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err, "request_id", RequestIDFrom(r.Context()))
	}
	writeJSON(w, status, ErrorResponse{
		Code:      code,
		Message:   err.Error(),
		RequestID: RequestIDFrom(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeBytes(w http.ResponseWriter, contentType string, hit bool, data []byte) {
	w.Header().Set("Content-Type", contentType)
	if hit {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
