package preset

import (
	"strings"
	"testing"

	"github.com/bayneri/eventmargin/internal/profit"
)

func TestLookup(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"live-music", "live-music"},
		{"Live Music", "live-music"},
		{"  TRIVIA ", "trivia"},
		{"open_mic", "open-mic"},
		{"Other", "other"},
	}

	for _, tc := range cases {
		got, err := Lookup(tc.name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", tc.name, err)
		}
		if got.Slug != tc.want {
			t.Fatalf("Lookup(%q)=%q, want %q", tc.name, got.Slug, tc.want)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("karaoke")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "live-music") {
		t.Fatalf("expected error to list presets, got %q", err)
	}
}

func TestAllSorted(t *testing.T) {
	all := All()
	if len(all) != len(catalog) {
		t.Fatalf("expected %d presets, got %d", len(catalog), len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Slug >= all[i].Slug {
			t.Fatalf("presets not sorted: %q before %q", all[i-1].Slug, all[i].Slug)
		}
	}
}

func TestPresetFixtures(t *testing.T) {
	live, err := Lookup("live-music")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	r := profit.Compute(live.Inputs)
	if r.NetProfit != 920 || r.BreakEven.Guests != 29 {
		t.Fatalf("unexpected live-music result %+v", r)
	}

	trivia, err := Lookup("trivia")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	r = profit.Compute(trivia.Inputs)
	if r.NetProfit != 1200 || r.BreakEven.Guests != 34 {
		t.Fatalf("unexpected trivia result %+v", r)
	}

	for _, p := range All() {
		if p.Inputs != profit.Normalize(p.Inputs) {
			t.Fatalf("preset %s has out-of-range inputs", p.Slug)
		}
	}
}
