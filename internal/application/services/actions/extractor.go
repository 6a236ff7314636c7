// Package actions implements the action extractor: it reads the
// completed per-item plans and turns every planned release for a
// Purchase-policy item into either an Expedite (already late) or a
// future Purchase row, aggregating the latter by (item, placement
// date).
package actions

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kestrelworks/mrpplan/internal/application/services/propagate"
	"github.com/kestrelworks/mrpplan/internal/domain/entities"
	"github.com/kestrelworks/mrpplan/internal/domain/repositories"
)

// Result holds the two action tables the extractor produces, each sorted for
// deterministic output.
type Result struct {
	Expedites []entities.Expedite
	Purchases []entities.PlannedPurchase
}

// Extract walks every Purchase-policy item's planned releases. A
// release whose day fell before the horizon and was clamped into day
// zero (entities.ItemPlan.ClampedPastRelease) always surfaces as an
// Expedite, independent of how it compares to asOf. Every other
// release on or after asOf becomes a future Purchase; anything still
// earlier is also an Expedite.
func Extract(
	prop propagate.Result,
	items repositories.ItemRepository,
	h entities.Horizon,
	asOf time.Time,
) Result {
	asOf = entities.Truncate(asOf)
	var result Result

	// purchaseKey aggregates future purchase rows by (item, placement
	// date).
	type purchaseKey struct {
		itemID entities.ItemID
		day    int
	}
	aggregated := make(map[purchaseKey]entities.Quantity)
	order := make([]purchaseKey, 0)

	for itemID, plan := range prop.Plans {
		item, ok := items.GetItem(itemID)
		if !ok || item.Policy != entities.Purchase {
			continue
		}
		leadTime := prop.LeadTimes[itemID]

		for d, qty := range plan.PlannedReleases {
			if !entities.IsPositive(qty) {
				continue
			}
			releaseDate := h.DateAt(d)

			// The clamped portion of a release bucket was only deposited
			// here because its true release day preceded the horizon; it
			// is late by construction and never a future purchase. The
			// remainder still goes through the asOf split.
			expediteQty := plan.ClampedPastRelease[d]
			remainder := qty.Sub(expediteQty)
			if entities.IsPositive(remainder) && releaseDate.Before(asOf) {
				expediteQty = expediteQty.Add(remainder)
				remainder = decimal.Zero
			}

			if entities.IsPositive(expediteQty) {
				result.Expedites = append(result.Expedites, entities.Expedite{
					ItemID:       itemID,
					ItemNo_:      item.No_,
					RequiredDate: releaseDate.AddDate(0, 0, leadTime),
					ExpediteQty:  expediteQty,
				})
			}
			if !entities.IsPositive(remainder) {
				continue
			}

			key := purchaseKey{itemID: itemID, day: d}
			if _, seen := aggregated[key]; !seen {
				order = append(order, key)
			}
			aggregated[key] = aggregated[key].Add(remainder)
		}
	}

	for _, key := range order {
		item, _ := items.GetItem(key.itemID)
		placementDate := h.DateAt(key.day)
		result.Purchases = append(result.Purchases, entities.PlannedPurchase{
			ItemID:              key.itemID,
			ItemNo_:             item.No_,
			PlacementDate:       placementDate,
			ExpectedReceiptDate: placementDate.AddDate(0, 0, prop.LeadTimes[key.itemID]),
			Qty:                 aggregated[key],
		})
	}

	sort.Slice(result.Expedites, func(i, j int) bool {
		if !result.Expedites[i].RequiredDate.Equal(result.Expedites[j].RequiredDate) {
			return result.Expedites[i].RequiredDate.Before(result.Expedites[j].RequiredDate)
		}
		return result.Expedites[i].ItemID < result.Expedites[j].ItemID
	})
	sort.Slice(result.Purchases, func(i, j int) bool {
		if !result.Purchases[i].PlacementDate.Equal(result.Purchases[j].PlacementDate) {
			return result.Purchases[i].PlacementDate.Before(result.Purchases[j].PlacementDate)
		}
		return result.Purchases[i].ItemID < result.Purchases[j].ItemID
	})

	return result
}
