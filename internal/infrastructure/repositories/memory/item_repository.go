package memory

import (
	"fmt"

	"github.com/kestrelworks/mrpplan/internal/domain/entities"
	"github.com/kestrelworks/mrpplan/internal/domain/repositories"
)

// ItemRepository is an in-memory item master keyed by both ItemID and
// item code (No_).
type ItemRepository struct {
	byID    map[entities.ItemID]*entities.Item
	byNo    map[string]*entities.Item
	ordered []*entities.Item
}

// NewItemRepository creates an empty in-memory item repository.
func NewItemRepository() *ItemRepository {
	return &ItemRepository{
		byID: make(map[entities.ItemID]*entities.Item),
		byNo: make(map[string]*entities.Item),
	}
}

var _ repositories.ItemRepository = (*ItemRepository)(nil)

// LoadItems replaces the repository contents with items, rejecting a
// duplicate ItemID: the item master must be unique.
func (r *ItemRepository) LoadItems(items []*entities.Item) error {
	r.byID = make(map[entities.ItemID]*entities.Item, len(items))
	r.byNo = make(map[string]*entities.Item, len(items))
	r.ordered = r.ordered[:0]
	for _, item := range items {
		if _, exists := r.byID[item.ID]; exists {
			return fmt.Errorf("duplicate item id: %d", item.ID)
		}
		r.AddItem(item)
	}
	return nil
}

// AddItem adds a single item, overwriting any prior entry with the same
// ID.
func (r *ItemRepository) AddItem(item *entities.Item) {
	r.byID[item.ID] = item
	r.byNo[item.No_] = item
	r.ordered = append(r.ordered, item)
}

// GetItem returns item master data by ID.
func (r *ItemRepository) GetItem(id entities.ItemID) (*entities.Item, bool) {
	item, ok := r.byID[id]
	return item, ok
}

// GetItemByNo returns item master data by item code.
func (r *ItemRepository) GetItemByNo(no string) (*entities.Item, bool) {
	item, ok := r.byNo[no]
	return item, ok
}

// AllItems returns every loaded item, in load order.
func (r *ItemRepository) AllItems() []*entities.Item {
	return r.ordered
}
