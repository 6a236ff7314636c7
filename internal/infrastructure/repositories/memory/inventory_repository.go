package memory

import (
	"github.com/shopspring/decimal"

	"github.com/kestrelworks/mrpplan/internal/domain/entities"
	"github.com/kestrelworks/mrpplan/internal/domain/repositories"
)

// InventoryRepository is an in-memory store of aggregated on-hand
// quantities, one per item.
type InventoryRepository struct {
	onHand map[entities.ItemID]entities.Quantity
}

// NewInventoryRepository creates an empty in-memory inventory
// repository.
func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{onHand: make(map[entities.ItemID]entities.Quantity)}
}

var _ repositories.InventoryRepository = (*InventoryRepository)(nil)

// LoadSnapshots replaces the repository contents, summing duplicate
// entries for the same item (multi-location netting already collapsed
// upstream, but a caller may still hand us two rows for one item).
func (r *InventoryRepository) LoadSnapshots(snapshots []entities.InventorySnapshot) error {
	r.onHand = make(map[entities.ItemID]entities.Quantity)
	for _, s := range snapshots {
		r.onHand[s.ItemID] = r.onHand[s.ItemID].Add(s.OnHandQty)
	}
	return nil
}

// OnHand returns the aggregated on-hand quantity for an item, or zero
// if the item has no recorded inventory.
func (r *InventoryRepository) OnHand(id entities.ItemID) entities.Quantity {
	if q, ok := r.onHand[id]; ok {
		return q
	}
	return decimal.Zero
}
