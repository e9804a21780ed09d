package model

type InventoryItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	SKU      string `json:"sku"`
	Qty      int    `json:"qty"`
	MinQty   int    `json:"min_qty"`
	Location string `json:"location"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (i InventoryItem) GetID() string { return i.ID }

// LowStock reports whether the quantity on hand dropped below the reorder threshold.
func (i InventoryItem) LowStock() bool { return i.Qty < i.MinQty }

type CreateInventoryItemParams struct {
	Name     string `json:"name"`
	SKU      string `json:"sku"`
	Qty      int    `json:"qty"`
	MinQty   int    `json:"min_qty"`
	Location string `json:"location"`
}

type InventoryPatch struct {
	Name     *string `json:"name"`
	SKU      *string `json:"sku"`
	Qty      *int    `json:"qty"`
	MinQty   *int    `json:"min_qty"`
	Location *string `json:"location"`
}

func (p InventoryPatch) Apply(i *InventoryItem) {
	setIfPresent(&i.Name, p.Name)
	setIfPresent(&i.SKU, p.SKU)
	setIfPresent(&i.Qty, p.Qty)
	setIfPresent(&i.MinQty, p.MinQty)
	setIfPresent(&i.Location, p.Location)
}

type InventoryFilter struct {
	LowStockOnly bool
}
