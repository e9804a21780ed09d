package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/you-humble/techrepair/internal/model"
)

const (
	repairsPage    = 1
	repairsPerPage = 50
)

type RepairService interface {
	Create(ctx context.Context, params model.CreateRepairParams) (model.Repair, error)
	Update(ctx context.Context, id string, patch model.RepairPatch) (model.Repair, error)
	UpdateStatus(ctx context.Context, id string, status model.RepairStatus) (model.Repair, error)
	Delete(ctx context.Context, id string) error
	RepairByID(ctx context.Context, id string) (model.Repair, error)
	List(ctx context.Context) []model.Repair
}

type repairListResponse struct {
	listResponse[model.Repair]
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

type createRepairResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	RepairID string `json:"repair_id"`
}

type statusRequest struct {
	Status *model.RepairStatus `json:"status"`
}

type repairHandler struct {
	svc RepairService
}

func NewRepairHandler(service RepairService) *repairHandler {
	return &repairHandler{svc: service}
}

func (h *repairHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Put("/{id}/status", h.UpdateStatus)
	return r
}

func (h *repairHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, repairListResponse{
		listResponse: newListResponse(h.svc.List(r.Context())),
		Page:         repairsPage,
		PerPage:      repairsPerPage,
	})
}

func (h *repairHandler) Get(w http.ResponseWriter, r *http.Request) {
	rep, err := h.svc.RepairByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, rep)
}

func (h *repairHandler) Create(w http.ResponseWriter, r *http.Request) {
	var params model.CreateRepairParams
	if err := decodeBody(r, &params); err != nil {
		writeError(w, r, err)
		return
	}

	rep, err := h.svc.Create(r.Context(), params)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, createRepairResponse{
		Status:   "success",
		Message:  "repair created",
		RepairID: rep.ID,
	})
}

func (h *repairHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.RepairPatch
	if err := decodeBody(r, &patch); err != nil {
		writeError(w, r, err)
		return
	}

	rep, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, itemResponse[model.Repair]{Status: "success", Item: rep})
}

func (h *repairHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Status == nil {
		writeError(w, r, fmt.Errorf("%w: status is required", model.ErrValidation))
		return
	}

	rep, err := h.svc.UpdateStatus(r.Context(), chi.URLParam(r, "id"), *req.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, statusResponse{
		Status:  "success",
		Message: fmt.Sprintf("status changed to '%s'", rep.Status),
	})
}

func (h *repairHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, statusResponse{Status: "success", Message: "repair deleted"})
}

type StatsService interface {
	Stats(ctx context.Context) model.Stats
}

type statsResponse struct {
	TotalRepairs     int    `json:"total_repairs"`
	NewRepairs       int    `json:"new_repairs"`
	InProgress       int    `json:"in_progress"`
	CompletedRepairs int    `json:"completed_repairs"`
	UrgentRepairs    int    `json:"urgent_repairs"`
	TodayRepairs     int    `json:"today_repairs"`
	Timestamp        string `json:"timestamp"`
}

// NewStatsHandler serves the dashboard counters.
func NewStatsHandler(svc StatsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := svc.Stats(r.Context())
		writeJSON(w, r, http.StatusOK, statsResponse{
			TotalRepairs:     s.Total,
			NewRepairs:       s.ByStatus.New,
			InProgress:       s.ByStatus.InProgress,
			CompletedRepairs: s.ByStatus.Completed,
			UrgentRepairs:    s.Urgent,
			TodayRepairs:     s.Today,
			Timestamp:        s.Timestamp,
		})
	}
}
