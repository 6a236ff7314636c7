// Package horizon implements the horizon planner: it derives the
// single contiguous planning window every item is planned over from
// the span of demand/supply dates and the longest lead time in the
// item master.
package horizon

import (
	"time"

	"github.com/kestrelworks/mrpplan/internal/domain/entities"
)

// maxLeadTimeClampDays is the sentinel above which a max lead time is
// treated as a data error for horizon purposes and replaced by
// defaultLeadTimeDays, independent of the per-item substitution the
// requirements propagator performs later.
const maxLeadTimeClampDays = 1000

// defaultLeadTimeDays is the horizon's fallback max lead time; it has
// the same value as entities.DefaultLeadTimeDays, which the
// requirements propagator substitutes for unusable per-item lead times.
const defaultLeadTimeDays = 5

// Plan computes the planning Horizon from the union of sales-order and
// open-purchase dates, padded 30 days before the earliest date and
// (maxLeadTime + 30) days after the latest.
func Plan(items []*entities.Item, demandDates, supplyDates []time.Time) (entities.Horizon, error) {
	var minDate, maxDate time.Time
	found := false

	consider := func(d time.Time) {
		d = entities.Truncate(d)
		if !found {
			minDate, maxDate = d, d
			found = true
			return
		}
		if d.Before(minDate) {
			minDate = d
		}
		if d.After(maxDate) {
			maxDate = d
		}
	}
	for _, d := range demandDates {
		consider(d)
	}
	for _, d := range supplyDates {
		consider(d)
	}

	if !found {
		return entities.Horizon{}, &entities.InputShapeError{Reason: "cannot compute planning horizon: no demand or supply dates"}
	}

	maxLeadTime := 0
	for _, item := range items {
		if item.LeadTimeDays > maxLeadTime {
			maxLeadTime = item.LeadTimeDays
		}
	}
	if maxLeadTime < 0 || maxLeadTime > maxLeadTimeClampDays {
		maxLeadTime = defaultLeadTimeDays
	}

	return entities.Horizon{
		Start: minDate.AddDate(0, 0, -30),
		End:   maxDate.AddDate(0, 0, maxLeadTime+30),
	}, nil
}
