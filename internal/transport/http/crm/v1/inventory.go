package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/you-humble/techrepair/internal/model"
)

type InventoryService interface {
	Create(ctx context.Context, params model.CreateInventoryItemParams) (model.InventoryItem, error)
	Update(ctx context.Context, id string, patch model.InventoryPatch) (model.InventoryItem, error)
	Delete(ctx context.Context, id string) error
	ItemByID(ctx context.Context, id string) (model.InventoryItem, error)
	List(ctx context.Context, filter model.InventoryFilter) []model.InventoryItem
}

type inventoryHandler struct {
	svc InventoryService
}

func NewInventoryHandler(service InventoryService) *inventoryHandler {
	return &inventoryHandler{svc: service}
}

func (h *inventoryHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}

func (h *inventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	lowStock, _ := strconv.ParseBool(r.URL.Query().Get("low_stock"))

	items := h.svc.List(r.Context(), model.InventoryFilter{LowStockOnly: lowStock})
	writeJSON(w, r, http.StatusOK, newListResponse(items))
}

func (h *inventoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.ItemByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, item)
}

func (h *inventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var params model.CreateInventoryItemParams
	if err := decodeBody(r, &params); err != nil {
		writeError(w, r, err)
		return
	}

	item, err := h.svc.Create(r.Context(), params)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, itemResponse[model.InventoryItem]{Status: "success", Item: item})
}

func (h *inventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.InventoryPatch
	if err := decodeBody(r, &patch); err != nil {
		writeError(w, r, err)
		return
	}

	item, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, itemResponse[model.InventoryItem]{Status: "success", Item: item})
}

func (h *inventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, statusResponse{Status: "success"})
}
