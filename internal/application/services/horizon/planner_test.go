package horizon

import (
	"testing"
	"time"

	"github.com/kestrelworks/mrpplan/internal/domain/entities"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return entities.Truncate(d)
}

func TestPlan_PadsAroundDemandAndSupply(t *testing.T) {
	items := []*entities.Item{
		{ID: 1, No_: "A", LeadTimeDays: 3},
		{ID: 2, No_: "B", LeadTimeDays: 10},
	}
	h, err := Plan(items, []time.Time{date("2023-01-10")}, []time.Time{date("2023-01-05")})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	wantStart := date("2023-01-05").AddDate(0, 0, -30)
	wantEnd := date("2023-01-10").AddDate(0, 0, 10+30)
	if !h.Start.Equal(wantStart) {
		t.Fatalf("start = %s, want %s", h.Start, wantStart)
	}
	if !h.End.Equal(wantEnd) {
		t.Fatalf("end = %s, want %s", h.End, wantEnd)
	}
}

func TestPlan_ClampsLeadTimeSentinelAbove1000(t *testing.T) {
	items := []*entities.Item{{ID: 1, No_: "A", LeadTimeDays: 5000}}
	h, err := Plan(items, []time.Time{date("2023-01-10")}, nil)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	wantEnd := date("2023-01-10").AddDate(0, 0, defaultLeadTimeDays+30)
	if !h.End.Equal(wantEnd) {
		t.Fatalf("end = %s, want %s (expected sentinel clamp to %d)", h.End, wantEnd, defaultLeadTimeDays)
	}
}

func TestPlan_ErrorsWhenNoDates(t *testing.T) {
	if _, err := Plan(nil, nil, nil); err == nil {
		t.Fatal("expected error for empty demand/supply dates")
	}
}
