package scenario

import (
	"testing"

	"github.com/bayneri/eventmargin/internal/profit"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		input string
		want  float64
	}{
		{"12", 12},
		{" 7.5 ", 7.5},
		{".5", 0.5},
		{"3.", 3},
		{"-4", -4},
		{"1e2", 100},
		{"12abc", 12},
		{"€12", 0},
		{"", 0},
		{"abc", 0},
		{"1e999", 0},
	}

	for _, tc := range cases {
		if got := ParseAmount(tc.input); got != tc.want {
			t.Fatalf("ParseAmount(%q)=%v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParseOverrides(t *testing.T) {
	got, err := ParseOverrides("guests=80, ticketPrice=6.5,rentalCost=")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 || got["guests"] != 80 || got["ticketPrice"] != 6.5 || got["rentalCost"] != 0 {
		t.Fatalf("unexpected overrides %v", got)
	}

	for _, bad := range []string{"guests", "=4", "seats=4"} {
		if _, err := ParseOverrides(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestApply(t *testing.T) {
	base := profit.Inputs{Guests: 75, TicketPrice: 5}
	got := Apply(base, map[string]float64{"guests": 90, "staffWages": 200})
	want := profit.Inputs{Guests: 90, TicketPrice: 5, StaffWages: 200}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if base.Guests != 75 {
		t.Fatalf("base mutated")
	}
}
