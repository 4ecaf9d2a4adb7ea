package report

import (
	"fmt"
	"io"
	"os"
	"strings"
)

func WriteMarkdownSummary(path string, s Summary) error {
	return os.WriteFile(path, []byte(RenderMarkdown(s)), 0644)
}

func RenderMarkdown(s Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Event estimate: %s\n\n", s.Scenario)
	if s.Vibe != "" {
		fmt.Fprintf(&b, "- Vibe: %s\n", s.Vibe)
	}
	if s.Preset != "" {
		fmt.Fprintf(&b, "- Preset: %s\n", s.Preset)
	}
	fmt.Fprintf(&b, "- Outcome: %s\n\n", s.Result.Outcome)
	fmt.Fprintf(&b, "%s\n\n", s.Headline)

	fmt.Fprintf(&b, "| Metric | Value |\n")
	fmt.Fprintf(&b, "| --- | --- |\n")
	fmt.Fprintf(&b, "| Guests | %s |\n", formatGuests(s.Inputs.Guests))
	fmt.Fprintf(&b, "| Revenue per guest | %s |\n", Money(s.Currency, s.Result.RevenuePerGuest))
	fmt.Fprintf(&b, "| Total revenue | %s |\n", Money(s.Currency, s.Result.TotalRevenue))
	fmt.Fprintf(&b, "| Fixed costs | %s |\n", Money(s.Currency, s.Result.TotalFixedCosts))
	fmt.Fprintf(&b, "| Net profit | %s |\n", Money(s.Currency, s.Result.NetProfit))
	fmt.Fprintf(&b, "| Net margin | %s |\n", s.Gauge.Label)
	fmt.Fprintf(&b, "| Break-even guests | %s |\n", formatBreakEven(s.Result.BreakEven))

	fmt.Fprintf(&b, "\n%s\n", s.BreakEvenText)

	fmt.Fprintf(&b, "\n## Costs\n\n")
	fmt.Fprintf(&b, "| Cost | Amount |\n")
	fmt.Fprintf(&b, "| --- | --- |\n")
	fmt.Fprintf(&b, "| Lost sales | %s |\n", Money(s.Currency, s.Inputs.LostSalesCost))
	fmt.Fprintf(&b, "| Staff wages | %s |\n", Money(s.Currency, s.Inputs.StaffWages))
	fmt.Fprintf(&b, "| Materials | %s |\n", Money(s.Currency, s.Inputs.MaterialsCost))
	fmt.Fprintf(&b, "| Rental | %s |\n", Money(s.Currency, s.Inputs.RentalCost))

	fmt.Fprintf(&b, "\n## Tip\n\n%s\n", s.Tip.Message)
	return b.String()
}

func WriteText(w io.Writer, s Summary) {
	fmt.Fprintf(w, "Scenario: %s\n", s.Scenario)
	if s.Vibe != "" {
		fmt.Fprintf(w, "Vibe: %s\n", s.Vibe)
	}
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, s.Headline)
	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "  Revenue:     %s\n", Money(s.Currency, s.Result.TotalRevenue))
	fmt.Fprintf(w, "  Costs:       %s\n", Money(s.Currency, s.Result.TotalFixedCosts))
	fmt.Fprintf(w, "  Net profit:  %s\n", Money(s.Currency, s.Result.NetProfit))
	fmt.Fprintf(w, "  Margin:      %s %s\n", s.Gauge.Label, dial(s.Gauge.Fill))
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, s.BreakEvenText)
	fmt.Fprintf(w, "Tip: %s\n", s.Tip.Message)
}

const dialWidth = 20

// dial draws the gauge fill as a bar; the midpoint marks a 0% margin.
func dial(fill float64) string {
	filled := int(fill*dialWidth + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > dialWidth {
		filled = dialWidth
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", dialWidth-filled) + "]"
}
