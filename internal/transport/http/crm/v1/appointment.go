package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/you-humble/techrepair/internal/model"
)

type AppointmentService interface {
	Create(ctx context.Context, params model.CreateAppointmentParams) (model.Appointment, error)
	Update(ctx context.Context, id string, patch model.AppointmentPatch) (model.Appointment, error)
	Delete(ctx context.Context, id string) error
	AppointmentByID(ctx context.Context, id string) (model.Appointment, error)
	List(ctx context.Context) []model.Appointment
}

type appointmentHandler struct {
	svc AppointmentService
}

func NewAppointmentHandler(service AppointmentService) *appointmentHandler {
	return &appointmentHandler{svc: service}
}

func (h *appointmentHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}

func (h *appointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, newListResponse(h.svc.List(r.Context())))
}

func (h *appointmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	appt, err := h.svc.AppointmentByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, appt)
}

func (h *appointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var params model.CreateAppointmentParams
	if err := decodeBody(r, &params); err != nil {
		writeError(w, r, err)
		return
	}

	appt, err := h.svc.Create(r.Context(), params)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, itemResponse[model.Appointment]{Status: "success", Item: appt})
}

func (h *appointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.AppointmentPatch
	if err := decodeBody(r, &patch); err != nil {
		writeError(w, r, err)
		return
	}

	appt, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, itemResponse[model.Appointment]{Status: "success", Item: appt})
}

func (h *appointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, statusResponse{Status: "success"})
}
