package aggregate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kestrelworks/mrpplan/internal/domain/entities"
	"github.com/kestrelworks/mrpplan/internal/infrastructure/repositories/memory"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return entities.Truncate(d)
}

func newHorizon(start, end string) entities.Horizon {
	return entities.Horizon{Start: date(start), End: date(end)}
}

func TestAggregate_BucketsDemandAndSupply(t *testing.T) {
	items := memory.NewItemRepository()
	if err := items.LoadItems([]*entities.Item{{ID: 1, No_: "A"}}); err != nil {
		t.Fatalf("LoadItems: %v", err)
	}
	h := newHorizon("2023-01-01", "2023-01-31")

	orders := []entities.SalesOrderLine{
		{ItemID: 1, Date: date("2023-01-10"), Qty: decimal.NewFromInt(4)},
		{ItemID: 1, Date: date("2023-01-10"), Qty: decimal.NewFromInt(6)},
	}
	purchases := []entities.OpenPurchase{
		{ItemID: 1, ExpectedReceiptDate: date("2023-01-09"), Qty: decimal.NewFromInt(10)},
	}

	result := Aggregate(orders, purchases, items, h)

	if len(result.Diagnostics) != 0 {
		t.Fatalf("expected no diagnostics, got %v", result.Diagnostics)
	}
	idx := h.Index(date("2023-01-10"))
	if !result.GrossReqInit[1][idx].Equal(decimal.NewFromInt(10)) {
		t.Fatalf("expected pooled gross req 10, got %s", result.GrossReqInit[1][idx])
	}
	pIdx := h.Index(date("2023-01-09"))
	if !result.SchedRecv[1][pIdx].Equal(decimal.NewFromInt(10)) {
		t.Fatalf("expected sched recv 10, got %s", result.SchedRecv[1][pIdx])
	}
}

func TestAggregate_SkipsUnknownItemWithDiagnostic(t *testing.T) {
	items := memory.NewItemRepository()
	if err := items.LoadItems([]*entities.Item{{ID: 1, No_: "A"}}); err != nil {
		t.Fatalf("LoadItems: %v", err)
	}
	h := newHorizon("2023-01-01", "2023-01-31")

	orders := []entities.SalesOrderLine{
		{ItemID: 99, Date: date("2023-01-10"), Qty: decimal.NewFromInt(4)},
	}

	result := Aggregate(orders, nil, items, h)
	if len(result.Diagnostics) != 1 || result.Diagnostics[0].Kind != entities.UnknownItem {
		t.Fatalf("expected one UnknownItem diagnostic, got %v", result.Diagnostics)
	}
	if _, ok := result.GrossReqInit[99]; ok {
		t.Fatalf("unknown item should not contribute a series")
	}
}

func TestAggregate_SkipsOutOfHorizonWithDiagnostic(t *testing.T) {
	items := memory.NewItemRepository()
	if err := items.LoadItems([]*entities.Item{{ID: 1, No_: "A"}}); err != nil {
		t.Fatalf("LoadItems: %v", err)
	}
	h := newHorizon("2023-01-01", "2023-01-31")

	orders := []entities.SalesOrderLine{
		{ItemID: 1, Date: date("2024-06-01"), Qty: decimal.NewFromInt(4)},
	}

	result := Aggregate(orders, nil, items, h)
	if len(result.Diagnostics) != 1 || result.Diagnostics[0].Kind != entities.OutOfHorizon {
		t.Fatalf("expected one OutOfHorizon diagnostic, got %v", result.Diagnostics)
	}
}
