package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/you-humble/techrepair/internal/model"
)

type SettingsService interface {
	Get(ctx context.Context) model.Settings
	Update(ctx context.Context, patch model.Settings) model.Settings
}

type settingsResponse struct {
	Status   string         `json:"status"`
	Settings model.Settings `json:"settings"`
}

type settingsHandler struct {
	svc SettingsService
}

func NewSettingsHandler(service SettingsService) *settingsHandler {
	return &settingsHandler{svc: service}
}

func (h *settingsHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Get)
	r.Put("/", h.Update)
	return r
}

func (h *settingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.svc.Get(r.Context()))
}

// Update accepts a JSON object only; arrays and scalars are rejected.
func (h *settingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.Settings
	if err := decodeBody(r, &patch); err != nil {
		writeError(w, r, err)
		return
	}
	if patch == nil {
		writeError(w, r, fmt.Errorf("%w: settings must be an object", model.ErrInvalidPayload))
		return
	}

	writeJSON(w, r, http.StatusOK, settingsResponse{
		Status:   "success",
		Settings: h.svc.Update(r.Context(), patch),
	})
}
