package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/you-humble/techrepair/internal/model"
	"github.com/you-humble/techrepair/platform/logger"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type itemResponse[T any] struct {
	Status string `json:"status"`
	Item   T      `json:"item"`
}

type listResponse[T any] struct {
	Items     []T    `json:"items"`
	Total     int    `json:"total"`
	Timestamp string `json:"timestamp"`
}

func newListResponse[T any](items []T) listResponse[T] {
	if items == nil {
		items = []T{}
	}
	return listResponse[T]{
		Items:     items,
		Total:     len(items),
		Timestamp: model.FormatTime(time.Now()),
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		logger.Error(r.Context(), "write json response", logger.ErrorF(err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := mapErrorToStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed", logger.ErrorF(err))
	}
	writeJSON(w, r, status, errorResponse{Error: err.Error()})
}

// decodeBody rejects empty and malformed bodies before anything reaches a service.
func decodeBody(r *http.Request, dst any) error {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: read body: %v", model.ErrInvalidPayload, err)
	}
	if len(data) == 0 {
		return fmt.Errorf("%w: no data", model.ErrInvalidPayload)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidPayload, err)
	}
	return nil
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidPayload),
		errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest // 400
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict // 409
	default:
		return http.StatusInternalServerError // 500
	}
}
