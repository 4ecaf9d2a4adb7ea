package advice

import (
	"strings"
	"testing"

	"github.com/bayneri/eventmargin/internal/profit"
)

func reachable(guests int64) profit.BreakEven {
	return profit.BreakEven{Guests: guests, Reachable: true}
}

func TestSelect(t *testing.T) {
	cases := []struct {
		name      string
		guests    float64
		netProfit float64
		margin    float64
		breakEven profit.BreakEven
		want      Kind
	}{
		{"thin-margin", 50, 50, 10, reachable(40), KindRaisePrice},
		{"thin-margin-wins-over-staffing", 150, 50, 5, reachable(140), KindRaisePrice},
		{"shortfall", 20, -200, -50, reachable(29), KindGuestShortage},
		{"loss-above-break-even", 30, -10, -2, reachable(29), KindCutCosts},
		{"loss-unreachable", 40, -180, 0, profit.Unreachable(), KindCutCosts},
		{"healthy", 75, 920, 61.3, reachable(29), KindHealthyMargin},
		{"healthy-needs-profit-floor", 10, 100, 50, reachable(2), KindAdjustInputs},
		{"staffing", 120, 90, 20, reachable(100), KindStaffing},
		{"break-even", 0, 0, 0, reachable(0), KindAdjustInputs},
		{"moderate-margin", 60, 250, 20, reachable(48), KindAdjustInputs},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Select(tc.guests, tc.netProfit, tc.margin, tc.breakEven)
			if got.Kind != tc.want {
				t.Fatalf("expected %s, got %s (%q)", tc.want, got.Kind, got.Message)
			}
			if got.Message == "" {
				t.Fatalf("expected a message")
			}
		})
	}
}

func TestSelectShortfallCount(t *testing.T) {
	got := Select(20, -180, -45, reachable(29))
	if !strings.Contains(got.Message, "9 guests short") {
		t.Fatalf("unexpected message %q", got.Message)
	}

	got = Select(28.5, -10, -2, reachable(29))
	if !strings.Contains(got.Message, "1 guest short") {
		t.Fatalf("unexpected message %q", got.Message)
	}
}

func TestForResultUsesUnclampedMargin(t *testing.T) {
	in := profit.Inputs{Guests: 10, TicketPrice: 10, StaffWages: 500}
	r := profit.Compute(in)
	if r.NetMarginPercent >= -100 {
		t.Fatalf("expected margin below -100, got %v", r.NetMarginPercent)
	}
	if got := ForResult(in, r); got.Kind != KindGuestShortage {
		t.Fatalf("expected guest shortfall, got %s", got.Kind)
	}
}
