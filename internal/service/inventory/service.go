package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/you-humble/techrepair/internal/model"
	"github.com/you-humble/techrepair/platform/logger"
)

type InventoryRepository interface {
	List(ctx context.Context) []model.InventoryItem
	Get(ctx context.Context, id string) (model.InventoryItem, error)
	Insert(ctx context.Context, rec model.InventoryItem) error
	Update(ctx context.Context, id string, mutate func(*model.InventoryItem) error) (model.InventoryItem, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo InventoryRepository
	now  func() time.Time
}

func NewInventoryService(repository InventoryRepository, now func() time.Time) *service {
	if now == nil {
		now = time.Now
	}
	return &service{repo: repository, now: now}
}

func (svc *service) Create(ctx context.Context, params model.CreateInventoryItemParams) (model.InventoryItem, error) {
	const op string = "inventory.service.Create"
	log := logger.With(
		logger.String("sku", params.SKU),
		logger.Int("qty", params.Qty),
	)

	if params.Qty < 0 || params.MinQty < 0 {
		log.Warn(ctx, "negative quantity")
		return model.InventoryItem{}, fmt.Errorf("%s: %w: quantity must not be negative", op, model.ErrValidation)
	}

	ts := model.FormatTime(svc.now())
	item := model.InventoryItem{
		ID:        uuid.NewString(),
		Name:      params.Name,
		SKU:       params.SKU,
		Qty:       params.Qty,
		MinQty:    params.MinQty,
		Location:  params.Location,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	if err := svc.repo.Insert(ctx, item); err != nil {
		log.Error(ctx, "repository insert inventory item", logger.ErrorF(err))
		return model.InventoryItem{}, fmt.Errorf("%s: %w", op, err)
	}

	return item, nil
}

func (svc *service) Update(ctx context.Context, id string, patch model.InventoryPatch) (model.InventoryItem, error) {
	const op string = "inventory.service.Update"

	ts := model.FormatTime(svc.now())
	item, err := svc.repo.Update(ctx, id, func(i *model.InventoryItem) error {
		patch.Apply(i)
		if i.Qty < 0 || i.MinQty < 0 {
			return fmt.Errorf("%w: quantity must not be negative", model.ErrValidation)
		}
		i.UpdatedAt = ts
		return nil
	})
	if err != nil {
		return model.InventoryItem{}, fmt.Errorf("%s: %w", op, err)
	}

	if item.LowStock() {
		logger.Warn(ctx, "inventory item is low on stock",
			logger.String("item_id", item.ID),
			logger.String("sku", item.SKU),
			logger.Int("qty", item.Qty),
			logger.Int("min_qty", item.MinQty),
		)
	}

	return item, nil
}

func (svc *service) Delete(ctx context.Context, id string) error {
	const op string = "inventory.service.Delete"

	if err := svc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (svc *service) ItemByID(ctx context.Context, id string) (model.InventoryItem, error) {
	const op string = "inventory.service.ItemByID"

	item, err := svc.repo.Get(ctx, id)
	if err != nil {
		return model.InventoryItem{}, fmt.Errorf("%s: %w", op, err)
	}

	return item, nil
}

func (svc *service) List(ctx context.Context, filter model.InventoryFilter) []model.InventoryItem {
	items := svc.repo.List(ctx)
	if !filter.LowStockOnly {
		return items
	}

	return lo.Filter(items, func(i model.InventoryItem, _ int) bool {
		return i.LowStock()
	})
}
