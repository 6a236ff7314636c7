// Package propagate implements the requirements propagator: the
// level-order sweep that turns a set of independent per-item plans
// into a true multi-level MRP run. Items are planned one BOM
// level at a time, shallowest first, and every planned release a
// parent produces is exploded into additional gross requirements on
// its children before those children are planned.
package propagate

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/kestrelworks/mrpplan/internal/application/services/itemplan"
	"github.com/kestrelworks/mrpplan/internal/application/services/levels"
	"github.com/kestrelworks/mrpplan/internal/domain/entities"
	"github.com/kestrelworks/mrpplan/internal/domain/repositories"
)

// maxSaneLeadTimeDays bounds a per-item lead time before it is treated
// as degenerate and replaced by entities.DefaultLeadTimeDays. This is
// deliberately tighter than the horizon's whole-run clamp: one bad item
// shouldn't blow up a single plan.
const maxSaneLeadTimeDays = 365

// Result is the outcome of sweeping every reachable item in level
// order: one ItemPlan per item, plus any diagnostics raised along the
// way.
type Result struct {
	Plans       map[entities.ItemID]*entities.ItemPlan
	LeadTimes   map[entities.ItemID]int
	Diagnostics []entities.Diagnostic
}

// Propagate sweeps levels.Result's levels in ascending order, planning
// every item at a level with itemplan.Plan and then pushing each
// planned release down to its children's gross requirements, scaled by
// qty-per, before the next level is planned. grossReqInit and schedRecv
// come from the aggregator; neither is mutated, Propagate works on its
// own copy of grossReqInit.
func Propagate(
	levelResult levels.Result,
	grossReqInit map[entities.ItemID][]entities.Quantity,
	schedRecv map[entities.ItemID][]entities.Quantity,
	items repositories.ItemRepository,
	inventory repositories.InventoryRepository,
	bom repositories.BOMRepository,
	h entities.Horizon,
) (Result, error) {
	days := h.Days()
	grossReq := cloneSeries(grossReqInit)

	byLevel := make(map[int][]entities.ItemID)
	for id, l := range levelResult.Level {
		byLevel[l] = append(byLevel[l], id)
	}
	for _, ids := range byLevel {
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	}

	result := Result{
		Plans:     make(map[entities.ItemID]*entities.ItemPlan, len(levelResult.Level)),
		LeadTimes: make(map[entities.ItemID]int, len(levelResult.Level)),
	}

	for l := 0; l <= levelResult.MaxLevel; l++ {
		for _, itemID := range byLevel[l] {
			item, ok := items.GetItem(itemID)
			if !ok {
				id := itemID
				result.Diagnostics = append(result.Diagnostics, entities.NewDiagnostic(
					entities.UnknownItem,
					fmt.Sprintf("item %d has a BOM level but is absent from the item master", itemID),
					&id,
				))
				continue
			}

			leadTime := item.LeadTimeDays
			if leadTime < 0 || leadTime > maxSaneLeadTimeDays {
				id := itemID
				result.Diagnostics = append(result.Diagnostics, entities.NewDiagnostic(
					entities.DegenerateLeadTime,
					fmt.Sprintf("item %s has an unusable lead time (%d days); substituting default of %d", item.No_, leadTime, entities.DefaultLeadTimeDays),
					&id,
				))
				leadTime = entities.DefaultLeadTimeDays
			}

			plan, err := itemplan.Plan(itemID, grossReq[itemID], schedRecv[itemID], inventory.OnHand(itemID), leadTime, h)
			if err != nil {
				return Result{}, err
			}
			result.Plans[itemID] = plan
			result.LeadTimes[itemID] = leadTime

			for _, edge := range bom.Children(itemID) {
				if _, ok := items.GetItem(edge.ChildID); !ok {
					id := edge.ChildID
					result.Diagnostics = append(result.Diagnostics, entities.NewDiagnostic(
						entities.UnknownItem,
						fmt.Sprintf("BOM child %d of item %s is absent from the item master; its demand was dropped", edge.ChildID, item.No_),
						&id,
					))
					continue
				}
				childSeries := ensure(grossReq, edge.ChildID, days)
				for d := 0; d < days; d++ {
					release := plan.PlannedReleases[d]
					if entities.IsPositive(release) {
						childSeries[d] = childSeries[d].Add(release.Mul(edge.QtyPer))
					}
				}
			}
		}
	}

	return result, nil
}

func cloneSeries(src map[entities.ItemID][]entities.Quantity) map[entities.ItemID][]entities.Quantity {
	dst := make(map[entities.ItemID][]entities.Quantity, len(src))
	for id, series := range src {
		cp := make([]entities.Quantity, len(series))
		copy(cp, series)
		dst[id] = cp
	}
	return dst
}

func ensure(m map[entities.ItemID][]entities.Quantity, id entities.ItemID, days int) []entities.Quantity {
	if s, ok := m[id]; ok {
		return s
	}
	s := make([]entities.Quantity, days)
	for i := range s {
		s[i] = decimal.Zero
	}
	m[id] = s
	return s
}
