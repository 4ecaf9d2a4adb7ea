package preset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bayneri/eventmargin/internal/profit"
)

type Preset struct {
	Slug        string
	Name        string
	Description string
	Inputs      profit.Inputs
}

var catalog = map[string]Preset{
	"live-music": {
		Slug:        "live-music",
		Name:        "Live Music",
		Description: "Ticketed band night with a bar; the room is closed to regular trade.",
		Inputs: profit.Inputs{
			Guests:        75,
			TicketPrice:   5,
			ExtraSpend:    15,
			LostSalesCost: 80,
			StaffWages:    250,
			MaterialsCost: 100,
			RentalCost:    150,
		},
	},
	"trivia": {
		Slug:        "trivia",
		Name:        "Trivia",
		Description: "Free-entry quiz night; revenue comes from food and drink.",
		Inputs: profit.Inputs{
			Guests:        100,
			TicketPrice:   0,
			ExtraSpend:    18,
			LostSalesCost: 100,
			StaffWages:    300,
			MaterialsCost: 150,
			RentalCost:    50,
		},
	},
	"workshop": {
		Slug:        "workshop",
		Name:        "Workshop",
		Description: "Small paid class with materials supplied per seat.",
		Inputs: profit.Inputs{
			Guests:        20,
			TicketPrice:   35,
			ExtraSpend:    6,
			LostSalesCost: 40,
			StaffWages:    120,
			MaterialsCost: 220,
			RentalCost:    100,
		},
	},
	"open-mic": {
		Slug:        "open-mic",
		Name:        "Open Mic",
		Description: "Low-cost open stage with a suggested door donation.",
		Inputs: profit.Inputs{
			Guests:        40,
			TicketPrice:   2,
			ExtraSpend:    9,
			LostSalesCost: 30,
			StaffWages:    90,
			MaterialsCost: 20,
			RentalCost:    0,
		},
	},
	"other": {
		Slug:        "other",
		Name:        "Other",
		Description: "Blank starting point for a custom event.",
	},
}

// Lookup accepts a slug or a display name such as "Live Music".
func Lookup(name string) (Preset, error) {
	if p, ok := catalog[Slug(name)]; ok {
		return p, nil
	}
	return Preset{}, fmt.Errorf("preset must be one of %v", Slugs())
}

func All() []Preset {
	var out []Preset
	for _, p := range catalog {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Slug < out[j].Slug
	})
	return out
}

func Slugs() []string {
	var keys []string
	for k := range catalog {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func Slug(name string) string {
	fields := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r == ' ' || r == '_' || r == '-' || r == '\t'
	})
	return strings.Join(fields, "-")
}
