package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/you-humble/techrepair/internal/model"
)

type CustomerService interface {
	Create(ctx context.Context, params model.CreateCustomerParams) (model.Customer, error)
	Update(ctx context.Context, id string, patch model.CustomerPatch) (model.Customer, error)
	Delete(ctx context.Context, id string) error
	CustomerByID(ctx context.Context, id string) (model.CustomerDetails, error)
	List(ctx context.Context) []model.Customer
}

type customerHandler struct {
	svc CustomerService
}

func NewCustomerHandler(service CustomerService) *customerHandler {
	return &customerHandler{svc: service}
}

func (h *customerHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}

func (h *customerHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, newListResponse(h.svc.List(r.Context())))
}

func (h *customerHandler) Get(w http.ResponseWriter, r *http.Request) {
	details, err := h.svc.CustomerByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, details)
}

func (h *customerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var params model.CreateCustomerParams
	if err := decodeBody(r, &params); err != nil {
		writeError(w, r, err)
		return
	}

	cust, err := h.svc.Create(r.Context(), params)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, itemResponse[model.Customer]{Status: "success", Item: cust})
}

func (h *customerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.CustomerPatch
	if err := decodeBody(r, &patch); err != nil {
		writeError(w, r, err)
		return
	}

	cust, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, itemResponse[model.Customer]{Status: "success", Item: cust})
}

func (h *customerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, statusResponse{Status: "success"})
}
