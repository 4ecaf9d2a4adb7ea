package scenario

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/bayneri/eventmargin/internal/profit"
)

var amountRe = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

var overrideFields = map[string]func(*profit.Inputs) *float64{
	"guests":        func(p *profit.Inputs) *float64 { return &p.Guests },
	"ticketPrice":   func(p *profit.Inputs) *float64 { return &p.TicketPrice },
	"extraSpend":    func(p *profit.Inputs) *float64 { return &p.ExtraSpend },
	"lostSalesCost": func(p *profit.Inputs) *float64 { return &p.LostSalesCost },
	"staffWages":    func(p *profit.Inputs) *float64 { return &p.StaffWages },
	"materialsCost": func(p *profit.Inputs) *float64 { return &p.MaterialsCost },
	"rentalCost":    func(p *profit.Inputs) *float64 { return &p.RentalCost },
}

// ParseOverrides reads key=value pairs such as "guests=80,ticketPrice=6".
// Values follow form semantics: anything unparseable counts as 0.
func ParseOverrides(input string) (map[string]float64, error) {
	overrides := map[string]float64{}
	if strings.TrimSpace(input) == "" {
		return overrides, nil
	}
	pairs := strings.Split(input, ",")
	for _, pair := range pairs {
		parts := strings.SplitN(strings.TrimSpace(pair), "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, fmt.Errorf("invalid override %q", pair)
		}
		key := strings.TrimSpace(parts[0])
		if _, ok := overrideFields[key]; !ok {
			return nil, fmt.Errorf("unknown input %q (want one of %v)", key, FieldNames())
		}
		overrides[key] = ParseAmount(parts[1])
	}
	return overrides, nil
}

func Apply(in profit.Inputs, overrides map[string]float64) profit.Inputs {
	for key, value := range overrides {
		if target, ok := overrideFields[key]; ok {
			*target(&in) = value
		}
	}
	return in
}

// ParseAmount reads the leading decimal number of input and ignores the
// rest. Empty or non-numeric input yields 0.
func ParseAmount(input string) float64 {
	match := amountRe.FindString(strings.TrimSpace(input))
	if match == "" {
		return 0
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return value
}

func FieldNames() []string {
	var names []string
	for k := range overrideFields {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
