package orchestration

import (
	"time"

	"github.com/kestrelworks/mrpplan/internal/domain/entities"
	"github.com/kestrelworks/mrpplan/internal/domain/repositories"
)

// filterByCustomer keeps only the sales-order lines whose Customer is
// in the caller-supplied selection.
func filterByCustomer(lines []entities.SalesOrderLine, customers []string) []entities.SalesOrderLine {
	wanted := make(map[string]bool, len(customers))
	for _, c := range customers {
		wanted[c] = true
	}
	filtered := make([]entities.SalesOrderLine, 0, len(lines))
	for _, line := range lines {
		if wanted[line.Customer] {
			filtered = append(filtered, line)
		}
	}
	return filtered
}

// distinctItemIDs returns the distinct items referenced by lines, in
// first-seen order. These are the top-level demanded items the
// explosion and level assignment root at.
func distinctItemIDs(lines []entities.SalesOrderLine) []entities.ItemID {
	seen := make(map[entities.ItemID]bool, len(lines))
	ids := make([]entities.ItemID, 0, len(lines))
	for _, line := range lines {
		if !seen[line.ItemID] {
			seen[line.ItemID] = true
			ids = append(ids, line.ItemID)
		}
	}
	return ids
}

// knownItemIDs keeps only the ids present in the item master.
func knownItemIDs(ids []entities.ItemID, items repositories.ItemRepository) []entities.ItemID {
	known := make([]entities.ItemID, 0, len(ids))
	for _, id := range ids {
		if _, ok := items.GetItem(id); ok {
			known = append(known, id)
		}
	}
	return known
}

func demandDates(lines []entities.SalesOrderLine) []time.Time {
	dates := make([]time.Time, len(lines))
	for i, line := range lines {
		dates[i] = line.Date
	}
	return dates
}

func purchaseDates(purchases []entities.OpenPurchase) []time.Time {
	dates := make([]time.Time, len(purchases))
	for i, p := range purchases {
		dates[i] = p.ExpectedReceiptDate
	}
	return dates
}

// earliestDate returns the earliest of dates, truncated to a calendar
// day, or the zero time if dates is empty.
func earliestDate(dates []time.Time) time.Time {
	var earliest time.Time
	found := false
	for _, d := range dates {
		d = entities.Truncate(d)
		if !found || d.Before(earliest) {
			earliest = d
			found = true
		}
	}
	return earliest
}
