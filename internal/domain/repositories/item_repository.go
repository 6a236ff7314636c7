package repositories

import "github.com/kestrelworks/mrpplan/internal/domain/entities"

// ItemRepository provides access to item master data.
type ItemRepository interface {
	GetItem(id entities.ItemID) (*entities.Item, bool)
	GetItemByNo(no string) (*entities.Item, bool)
	AllItems() []*entities.Item
	LoadItems(items []*entities.Item) error
}
