package repositories

import "github.com/kestrelworks/mrpplan/internal/domain/entities"

// InventoryRepository provides access to aggregated on-hand quantities.
// Multi-location netting already happened upstream.
type InventoryRepository interface {
	OnHand(id entities.ItemID) entities.Quantity
	LoadSnapshots(snapshots []entities.InventorySnapshot) error
}
