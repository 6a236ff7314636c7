package propagate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kestrelworks/mrpplan/internal/application/services/levels"
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

func qty(v int64) entities.Quantity { return decimal.NewFromInt(v) }

func series(h entities.Horizon, entries map[string]int64) []entities.Quantity {
	s := make([]entities.Quantity, h.Days())
	for i := range s {
		s[i] = decimal.Zero
	}
	for d, v := range entries {
		s[h.Index(date(d))] = decimal.NewFromInt(v)
	}
	return s
}

// A(lead 3) -> B(lead 2, qty 2) -> C(lead 1, qty 3),
// on_hand C=5, sales A: qty 10 on 2023-01-10.
//
// Expected: A net=10 on 01-10, release 10 on 01-07; B gross=20 on 01-07,
// release 20 on 01-05; C gross=60 on 01-05, net=55, release 55 on 01-04.
// Ending C = 0.
func TestPropagate_TwoLevelShortage(t *testing.T) {
	h := entities.Horizon{Start: date("2022-12-01"), End: date("2023-02-01")}

	items := memory.NewItemRepository()
	if err := items.LoadItems([]*entities.Item{
		{ID: 1, No_: "A", Policy: entities.Output, LeadTimeDays: 3},
		{ID: 2, No_: "B", Policy: entities.Output, LeadTimeDays: 2},
		{ID: 3, No_: "C", Policy: entities.Purchase, LeadTimeDays: 1},
	}); err != nil {
		t.Fatalf("LoadItems: %v", err)
	}

	bom := memory.NewBOMRepository()
	if err := bom.LoadEdges([]entities.BOMEdge{
		{ParentID: 1, ChildID: 2, QtyPer: qty(2)},
		{ParentID: 2, ChildID: 3, QtyPer: qty(3)},
	}); err != nil {
		t.Fatalf("LoadEdges: %v", err)
	}

	inventory := memory.NewInventoryRepository()
	if err := inventory.LoadSnapshots([]entities.InventorySnapshot{{ItemID: 3, OnHandQty: qty(5)}}); err != nil {
		t.Fatalf("LoadSnapshots: %v", err)
	}

	levelResult := levels.Assign([]entities.ItemID{1}, bom)
	grossReq := map[entities.ItemID][]entities.Quantity{
		1: series(h, map[string]int64{"2023-01-10": 10}),
	}

	result, err := Propagate(levelResult, grossReq, nil, items, inventory, bom, h)
	if err != nil {
		t.Fatalf("Propagate: %v", err)
	}

	planA := result.Plans[1]
	idxA := h.Index(date("2023-01-10"))
	if !planA.NetRequirements[idxA].Equal(qty(10)) {
		t.Fatalf("A net req = %s, want 10", planA.NetRequirements[idxA])
	}
	if !planA.PlannedReleases[h.Index(date("2023-01-07"))].Equal(qty(10)) {
		t.Fatalf("A release on 01-07 = %s, want 10", planA.PlannedReleases[h.Index(date("2023-01-07"))])
	}

	planB := result.Plans[2]
	if !planB.GrossRequirements[h.Index(date("2023-01-07"))].Equal(qty(20)) {
		t.Fatalf("B gross req on 01-07 = %s, want 20", planB.GrossRequirements[h.Index(date("2023-01-07"))])
	}
	if !planB.PlannedReleases[h.Index(date("2023-01-05"))].Equal(qty(20)) {
		t.Fatalf("B release on 01-05 = %s, want 20", planB.PlannedReleases[h.Index(date("2023-01-05"))])
	}

	planC := result.Plans[3]
	if !planC.GrossRequirements[h.Index(date("2023-01-05"))].Equal(qty(60)) {
		t.Fatalf("C gross req on 01-05 = %s, want 60", planC.GrossRequirements[h.Index(date("2023-01-05"))])
	}
	if !planC.NetRequirements[h.Index(date("2023-01-05"))].Equal(qty(55)) {
		t.Fatalf("C net req on 01-05 = %s, want 55", planC.NetRequirements[h.Index(date("2023-01-05"))])
	}
	if !planC.PlannedReleases[h.Index(date("2023-01-04"))].Equal(qty(55)) {
		t.Fatalf("C release on 01-04 = %s, want 55", planC.PlannedReleases[h.Index(date("2023-01-04"))])
	}
	if !planC.EndingInventory().IsZero() {
		t.Fatalf("C ending inventory = %s, want 0", planC.EndingInventory())
	}
}

// Property: for every BOM edge (p -> c, qty_per) with c having only
// parent p, sum(gross_req[c]) == sum(planned_release[p]) * qty_per.
func TestPropagate_PropagationEqualityWithSingleParent(t *testing.T) {
	h := entities.Horizon{Start: date("2022-12-01"), End: date("2023-02-01")}

	items := memory.NewItemRepository()
	if err := items.LoadItems([]*entities.Item{
		{ID: 1, No_: "P", Policy: entities.Output, LeadTimeDays: 2},
		{ID: 2, No_: "C", Policy: entities.Purchase, LeadTimeDays: 1},
	}); err != nil {
		t.Fatalf("LoadItems: %v", err)
	}
	bom := memory.NewBOMRepository()
	if err := bom.LoadEdges([]entities.BOMEdge{{ParentID: 1, ChildID: 2, QtyPer: qty(4)}}); err != nil {
		t.Fatalf("LoadEdges: %v", err)
	}
	inventory := memory.NewInventoryRepository()

	levelResult := levels.Assign([]entities.ItemID{1}, bom)
	grossReq := map[entities.ItemID][]entities.Quantity{
		1: series(h, map[string]int64{"2023-01-10": 5, "2023-01-20": 3}),
	}

	result, err := Propagate(levelResult, grossReq, nil, items, inventory, bom, h)
	if err != nil {
		t.Fatalf("Propagate: %v", err)
	}

	sumParentRelease := decimal.Zero
	for _, v := range result.Plans[1].PlannedReleases {
		sumParentRelease = sumParentRelease.Add(v)
	}
	sumChildGross := decimal.Zero
	for _, v := range result.Plans[2].GrossRequirements {
		sumChildGross = sumChildGross.Add(v)
	}
	want := sumParentRelease.Mul(qty(4))
	if !sumChildGross.Equal(want) {
		t.Fatalf("child gross total = %s, want %s (parent release %s * qty_per 4)", sumChildGross, want, sumParentRelease)
	}
}

func TestPropagate_SubstitutesDegenerateLeadTime(t *testing.T) {
	h := entities.Horizon{Start: date("2022-12-01"), End: date("2023-02-01")}

	items := memory.NewItemRepository()
	if err := items.LoadItems([]*entities.Item{
		{ID: 1, No_: "X", Policy: entities.Purchase, LeadTimeDays: 9000},
	}); err != nil {
		t.Fatalf("LoadItems: %v", err)
	}
	bom := memory.NewBOMRepository()
	inventory := memory.NewInventoryRepository()

	levelResult := levels.Assign([]entities.ItemID{1}, bom)
	grossReq := map[entities.ItemID][]entities.Quantity{
		1: series(h, map[string]int64{"2023-01-10": 10}),
	}

	result, err := Propagate(levelResult, grossReq, nil, items, inventory, bom, h)
	if err != nil {
		t.Fatalf("Propagate: %v", err)
	}

	if got := result.LeadTimes[1]; got != entities.DefaultLeadTimeDays {
		t.Fatalf("substituted lead time = %d, want %d", got, entities.DefaultLeadTimeDays)
	}
	relIdx := h.Index(date("2023-01-10")) - entities.DefaultLeadTimeDays
	if !result.Plans[1].PlannedReleases[relIdx].Equal(qty(10)) {
		t.Fatalf("release with substituted lead time = %s, want 10", result.Plans[1].PlannedReleases[relIdx])
	}

	foundDiagnostic := false
	for _, d := range result.Diagnostics {
		if d.Kind == entities.DegenerateLeadTime {
			foundDiagnostic = true
		}
	}
	if !foundDiagnostic {
		t.Fatal("expected a DegenerateLeadTime diagnostic")
	}
}
