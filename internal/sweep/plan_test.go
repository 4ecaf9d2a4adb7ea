package sweep

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/bayneri/eventmargin/internal/profit"
)

var liveMusic = profit.Inputs{
	Guests:        75,
	TicketPrice:   5,
	ExtraSpend:    15,
	LostSalesCost: 80,
	StaffWages:    250,
	MaterialsCost: 100,
	RentalCost:    150,
}

func TestBuildDefaultRange(t *testing.T) {
	plan, err := Build(liveMusic, Options{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if plan.Rows[0].Guests != 0 {
		t.Fatalf("expected sweep to start at 0, got %v", plan.Rows[0].Guests)
	}
	last := plan.Rows[len(plan.Rows)-1]
	if last.Guests != 150 {
		t.Fatalf("expected sweep to end at 150, got %v", last.Guests)
	}
	if len(plan.Rows) != 11 {
		t.Fatalf("expected 11 rows, got %d", len(plan.Rows))
	}

	var marked []float64
	var current []float64
	for _, row := range plan.Rows {
		if row.BreakEven {
			marked = append(marked, row.Guests)
		}
		if row.CurrentSize {
			current = append(current, row.Guests)
		}
	}
	if len(marked) != 1 || marked[0] != 30 {
		t.Fatalf("expected break-even marker at 30, got %v", marked)
	}
	if len(current) != 1 || current[0] != 75 {
		t.Fatalf("expected current marker at 75, got %v", current)
	}
}

func TestBuildExplicitRange(t *testing.T) {
	plan, err := Build(liveMusic, Options{From: 25, To: 35, Step: 1})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(plan.Rows) != 11 {
		t.Fatalf("expected 11 rows, got %d", len(plan.Rows))
	}
	for _, row := range plan.Rows {
		if row.BreakEven && row.Guests != 29 {
			t.Fatalf("expected break-even at 29, got %v", row.Guests)
		}
	}
}

func TestBuildRejectsBadRanges(t *testing.T) {
	cases := []struct {
		name string
		opts Options
	}{
		{"inverted", Options{From: 50, To: 10}},
		{"negative-step", Options{From: 0, To: 10, Step: -1}},
		{"too-many-rows", Options{From: 0, To: 10000, Step: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Build(liveMusic, tc.opts); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestRenderUnreachable(t *testing.T) {
	plan, err := Build(profit.Inputs{Guests: 20, StaffWages: 100}, Options{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	var buf bytes.Buffer
	Render(&buf, plan, func(v float64) string { return fmt.Sprintf("$%.2f", v) })
	out := buf.String()
	if !strings.Contains(out, "Break-even: unreachable") {
		t.Fatalf("expected unreachable header:\n%s", out)
	}
	if strings.Contains(out, "<- break-even") {
		t.Fatalf("unexpected break-even marker:\n%s", out)
	}
	if !strings.Contains(out, "<- current") {
		t.Fatalf("expected current marker:\n%s", out)
	}
}

func TestBuildMarksComputedBreakEven(t *testing.T) {
	in := profit.Inputs{Guests: 20, TicketPrice: 2.92, ExtraSpend: 15.27, StaffWages: 215.34, RentalCost: 203.03}
	plan, err := Build(in, Options{From: 20, To: 26, Step: 1})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	guests, _ := plan.BreakEven.Value()
	for _, row := range plan.Rows {
		if row.BreakEven && row.Guests != float64(guests) {
			t.Fatalf("marker at %v but break-even is %d", row.Guests, guests)
		}
	}
	if guests != 23 {
		t.Fatalf("expected break-even at 23, got %d", guests)
	}
}
