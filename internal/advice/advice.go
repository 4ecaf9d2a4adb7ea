package advice

import (
	"fmt"
	"math"

	"github.com/bayneri/eventmargin/internal/profit"
)

type Kind string

const (
	KindRaisePrice    Kind = "raise-price"
	KindGuestShortage Kind = "guest-shortfall"
	KindCutCosts      Kind = "cut-costs"
	KindHealthyMargin Kind = "healthy-margin"
	KindStaffing      Kind = "staffing"
	KindAdjustInputs  Kind = "adjust-inputs"
)

const (
	thinMarginPercent    = 15
	healthyMarginPercent = 25
	healthyProfitFloor   = 100
	largeCrowdGuests     = 100
)

type Tip struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Select returns the first matching tip. Margin thresholds use the unclamped
// margin.
func Select(guests, netProfit, netMarginPercent float64, breakEven profit.BreakEven) Tip {
	beGuests, reachable := breakEven.Value()
	switch {
	case netProfit > 0 && netMarginPercent < thinMarginPercent:
		return Tip{
			Kind:    KindRaisePrice,
			Message: fmt.Sprintf("Your margin is only %.1f%%. Consider a small ticket price increase or a margin-focused upsell such as a drinks bundle.", netMarginPercent),
		}
	case netProfit < 0 && reachable && guests < float64(beGuests):
		shortfall := int64(math.Ceil(float64(beGuests) - guests))
		return Tip{
			Kind:    KindGuestShortage,
			Message: fmt.Sprintf("You are %d %s short of breaking even. Push promotion or partner with another group to fill the room.", shortfall, plural(shortfall, "guest", "guests")),
		}
	case netProfit < 0 && !reachable:
		return Tip{
			Kind:    KindCutCosts,
			Message: "Nothing is earned per guest, so no crowd can cover the costs. Set a ticket price or expected extra spend, or cut fixed costs.",
		}
	case netProfit < 0:
		return Tip{
			Kind:    KindCutCosts,
			Message: "Fixed costs exceed revenue at this attendance. Look for savings in staff, rental or materials.",
		}
	case netMarginPercent >= healthyMarginPercent && netProfit > healthyProfitFloor:
		return Tip{
			Kind:    KindHealthyMargin,
			Message: fmt.Sprintf("A %.0f%% margin is a healthy result. This format is worth repeating.", netMarginPercent),
		}
	case guests > largeCrowdGuests && netProfit > 0:
		return Tip{
			Kind:    KindStaffing,
			Message: "More than 100 guests expected. Check that staffing and stock can handle the rush.",
		}
	default:
		return Tip{
			Kind:    KindAdjustInputs,
			Message: "Adjust guests, prices or costs to explore other outcomes.",
		}
	}
}

func ForResult(in profit.Inputs, r profit.Result) Tip {
	return Select(profit.Normalize(in).Guests, r.NetProfit, r.NetMarginPercent, r.BreakEven)
}

func plural(n int64, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
