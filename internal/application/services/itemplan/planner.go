// Package itemplan implements the per-item MRP planner: lot-for-lot
// netting with a lead-time-shifted release date, one item at a time,
// over the full planning horizon.
package itemplan

import (
	"github.com/shopspring/decimal"

	"github.com/kestrelworks/mrpplan/internal/domain/entities"
)

// Plan computes the six time-phased series for one item: gross
// requirements, scheduled receipts, projected on-hand, net
// requirements, planned receipts, and planned releases. grossReq and
// schedRecv may be nil (treated as all-zero); both, when present, must
// be sized to h.Days().
func Plan(
	itemID entities.ItemID,
	grossReq []entities.Quantity,
	schedRecv []entities.Quantity,
	onHand entities.Quantity,
	leadTimeDays int,
	h entities.Horizon,
) (*entities.ItemPlan, error) {
	days := h.Days()
	plan := entities.NewItemPlan(itemID, days)

	gross := zeroFilled(grossReq, days)
	recv := zeroFilled(schedRecv, days)
	copy(plan.GrossRequirements, gross)
	copy(plan.ScheduledReceipts, recv)

	projectedPrev := onHand

	for d := 0; d < days; d++ {
		available := projectedPrev.Add(recv[d])
		shortfall := gross[d].Sub(available)

		if entities.IsPositive(shortfall) {
			netReq := shortfall
			plan.NetRequirements[d] = netReq
			plan.PlannedReceipts[d] = netReq

			releaseDay := d - leadTimeDays
			if releaseDay < 0 {
				plan.PlannedReleases[0] = plan.PlannedReleases[0].Add(netReq)
				plan.ClampedPastRelease[0] = plan.ClampedPastRelease[0].Add(netReq)
			} else {
				plan.PlannedReleases[releaseDay] = plan.PlannedReleases[releaseDay].Add(netReq)
			}

			projectedPrev = decimal.Zero
		} else {
			plan.NetRequirements[d] = decimal.Zero
			plan.PlannedReceipts[d] = decimal.Zero
			projectedPrev = entities.ClampNonNegative(available.Sub(gross[d]))
		}

		if projectedPrev.Sign() < 0 {
			return nil, &entities.ArithmeticInvariantError{
				ItemID: itemID,
				Reason: "projected on-hand went negative",
			}
		}

		plan.ProjectedOnHand[d] = projectedPrev
	}

	return plan, nil
}

func zeroFilled(series []entities.Quantity, days int) []entities.Quantity {
	if series != nil {
		return series
	}
	s := make([]entities.Quantity, days)
	for i := range s {
		s[i] = decimal.Zero
	}
	return s
}
