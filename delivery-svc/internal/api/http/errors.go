package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"foodndeliv/delivery-svc/internal/domain"
)

const internalErrorMessage = "An unexpected internal error occurred. Please try again later."

type errorResponse struct {
	Timestamp   int64             `json:"timestamp"`
	Status      int               `json:"status"`
	Error       string            `json:"error"`
	Message     string            `json:"message"`
	Path        string            `json:"path"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

// writeError is the single place errors become HTTP responses.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := errorResponse{
		Timestamp: time.Now().UnixMilli(),
		Path:      r.URL.Path,
		Message:   err.Error(),
	}

	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		resp.Status = http.StatusBadRequest
		resp.Error = "Validation Failed"
		resp.Message = "Input validation failed for one or more fields."
		resp.FieldErrors = validationErr.Fields
	case errors.Is(err, domain.ErrInvalidArgument):
		resp.Status = http.StatusBadRequest
		resp.Error = "Invalid Argument"
	case errors.Is(err, domain.ErrNotFound):
		resp.Status = http.StatusNotFound
		resp.Error = "Resource Not Found"
	case errors.Is(err, domain.ErrConflict):
		resp.Status = http.StatusConflict
		resp.Error = "Conflict"
	default:
		resp.Status = http.StatusInternalServerError
		resp.Error = "Internal Server Error"
		resp.Message = internalErrorMessage
	}

	if resp.Status >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.String("path", resp.Path), zap.Error(err))
	} else {
		h.logger.Warn("request rejected",
			zap.String("path", resp.Path), zap.Int("status", resp.Status), zap.String("reason", err.Error()))
	}

	writeJSON(w, resp.Status, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
