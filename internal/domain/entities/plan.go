package entities

import "github.com/shopspring/decimal"

// ItemPlan holds the six time-phased series for one item over a
// Horizon, day-indexed (see Horizon.Index). All six series have the
// same length, equal to Horizon.Days().
//
// Invariants:
//   - ProjectedOnHand[d] >= 0 for all d.
//   - PlannedRelease is only ever written at indices within the
//     horizon (past-due releases are clamped to index 0).
//   - sum(PlannedReceipt) == sum(PlannedRelease).
type ItemPlan struct {
	ItemID ItemID

	GrossRequirements []Quantity
	ScheduledReceipts []Quantity
	ProjectedOnHand   []Quantity
	NetRequirements   []Quantity
	PlannedReceipts   []Quantity
	PlannedReleases   []Quantity

	// ClampedPastRelease marks, per day index, how much of
	// PlannedReleases[d] was deposited there only because its true
	// release day fell before the horizon. The action extractor
	// consults this before applying the `today` split so clamped
	// quantities always surface as expedites.
	ClampedPastRelease []Quantity
}

// NewItemPlan allocates a zeroed plan with all six series (plus the
// clamp-tracking series) sized to days.
func NewItemPlan(itemID ItemID, days int) *ItemPlan {
	mk := func() []Quantity {
		s := make([]Quantity, days)
		for i := range s {
			s[i] = decimal.Zero
		}
		return s
	}
	return &ItemPlan{
		ItemID:             itemID,
		GrossRequirements:  mk(),
		ScheduledReceipts:  mk(),
		ProjectedOnHand:    mk(),
		NetRequirements:    mk(),
		PlannedReceipts:    mk(),
		PlannedReleases:    mk(),
		ClampedPastRelease: mk(),
	}
}

// EndingInventory returns the last day's projected on-hand, i.e. the
// plan's ending inventory summary value.
func (p *ItemPlan) EndingInventory() Quantity {
	if len(p.ProjectedOnHand) == 0 {
		return decimal.Zero
	}
	return p.ProjectedOnHand[len(p.ProjectedOnHand)-1]
}
