package report

import (
	"fmt"
	"math"
	"strconv"

	"github.com/bayneri/eventmargin/internal/advice"
	"github.com/bayneri/eventmargin/internal/profit"
)

const SchemaVersion = "1.0"

const DefaultCurrency = "€"

type Meta struct {
	Name   string
	Vibe   string
	Preset string
	Labels map[string]string
}

type Summary struct {
	SchemaVersion string              `json:"schemaVersion"`
	Scenario      string              `json:"scenario"`
	Vibe          string              `json:"vibe,omitempty"`
	Preset        string              `json:"preset,omitempty"`
	Labels        map[string]string   `json:"labels,omitempty"`
	Currency      string              `json:"currency"`
	Inputs        profit.Inputs       `json:"inputs"`
	Result        profit.Result       `json:"result"`
	Gauge         profit.GaugeReading `json:"gauge"`
	Tip           advice.Tip          `json:"tip"`
	Headline      string              `json:"headline"`
	BreakEvenText string              `json:"breakEvenText"`
}

func Build(meta Meta, in profit.Inputs, currency string) Summary {
	if currency == "" {
		currency = DefaultCurrency
	}
	in = profit.Normalize(in)
	result := profit.Compute(in)
	return Summary{
		SchemaVersion: SchemaVersion,
		Scenario:      meta.Name,
		Vibe:          meta.Vibe,
		Preset:        meta.Preset,
		Labels:        meta.Labels,
		Currency:      currency,
		Inputs:        in,
		Result:        result,
		Gauge:         profit.Gauge(result),
		Tip:           advice.ForResult(in, result),
		Headline:      Headline(result.NetProfit, currency),
		BreakEvenText: BreakEvenText(result.BreakEven, result.TotalFixedCosts, currency),
	}
}

func Headline(netProfit float64, currency string) string {
	switch {
	case netProfit > 0:
		return fmt.Sprintf("Great! You are projected to make a profit of %s.", Money(currency, netProfit))
	case netProfit < 0:
		return fmt.Sprintf("Warning! You are projected to make a loss of %s.", Money(currency, math.Abs(netProfit)))
	default:
		return "Break even! Your event is projected to neither profit nor lose."
	}
}

func BreakEvenText(be profit.BreakEven, fixedCosts float64, currency string) string {
	guests, ok := be.Value()
	switch {
	case !ok:
		return fmt.Sprintf("Break-even is unreachable: guests bring in no revenue, so %s of fixed costs can never be covered.", Money(currency, fixedCosts))
	case guests == 0:
		return fmt.Sprintf("You need 0 guests to break even (costs are %s).", Money(currency, fixedCosts))
	case guests == 1:
		return "You need 1 guest to start covering costs."
	default:
		return fmt.Sprintf("You need %d guests to break even.", guests)
	}
}

// Money formats an amount with two decimals, e.g. -€12.50.
func Money(currency string, value float64) string {
	amount := fmt.Sprintf("%.2f", math.Abs(value))
	if value < 0 && amount != "0.00" {
		return "-" + currency + amount
	}
	return currency + amount
}

func formatGuests(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func formatBreakEven(be profit.BreakEven) string {
	guests, ok := be.Value()
	if !ok {
		return "unreachable"
	}
	return strconv.FormatInt(guests, 10)
}
