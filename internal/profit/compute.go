package profit

import "math"

const maxExactGuests = 1 << 53

func Compute(in Inputs) Result {
	in = Normalize(in)

	revenuePerGuest := saturate(in.TicketPrice + in.ExtraSpend)
	totalRevenue := revenueAt(in.Guests, in)
	totalFixed := fixedCosts(in)
	netProfit := totalRevenue - totalFixed

	return Result{
		TotalRevenue:     totalRevenue,
		TotalFixedCosts:  totalFixed,
		NetProfit:        netProfit,
		NetMarginPercent: netMargin(totalRevenue, netProfit),
		RevenuePerGuest:  revenuePerGuest,
		BreakEven:        breakEven(in, totalFixed, revenuePerGuest),
		Outcome:          classify(netProfit),
	}
}

// Normalize replaces non-finite amounts with 0 and clamps negatives to 0.
func Normalize(in Inputs) Inputs {
	return Inputs{
		Guests:        clampAmount(in.Guests),
		TicketPrice:   clampAmount(in.TicketPrice),
		ExtraSpend:    clampAmount(in.ExtraSpend),
		LostSalesCost: clampAmount(in.LostSalesCost),
		StaffWages:    clampAmount(in.StaffWages),
		MaterialsCost: clampAmount(in.MaterialsCost),
		RentalCost:    clampAmount(in.RentalCost),
	}
}

func clampAmount(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0
	}
	return value
}

func Covers(in Inputs, guests float64) bool {
	in = Normalize(in)
	return revenueAt(clampAmount(guests), in) >= fixedCosts(in)
}

// Totals saturate at math.MaxFloat64 so profit and margin stay finite.
func revenueAt(guests float64, in Inputs) float64 {
	return saturate(guests*in.TicketPrice + guests*in.ExtraSpend)
}

func fixedCosts(in Inputs) float64 {
	return saturate(in.LostSalesCost + in.StaffWages + in.MaterialsCost + in.RentalCost)
}

func saturate(value float64) float64 {
	if math.IsInf(value, 1) {
		return math.MaxFloat64
	}
	return value
}

func netMargin(revenue, profit float64) float64 {
	if revenue > 0 {
		return (profit / revenue) * 100
	}
	if profit > 0 {
		return 100
	}
	return 0
}

func breakEven(in Inputs, fixed, perGuest float64) BreakEven {
	if perGuest <= 0 {
		if fixed > 0 {
			return Unreachable()
		}
		return BreakEven{Guests: 0, Reachable: true}
	}
	if fixed <= 0 {
		return BreakEven{Guests: 0, Reachable: true}
	}
	guests := math.Ceil(fixed / perGuest)
	if guests < 1 {
		guests = 1
	}
	if guests >= math.MaxInt64 || math.IsInf(guests, 1) {
		return BreakEven{Guests: math.MaxInt64, Reachable: true}
	}
	// The quotient can land one guest off the revenue sum; settle on the
	// smallest count that covers.
	if guests < maxExactGuests {
		covers := func(g float64) bool { return revenueAt(g, in) >= fixed }
		for guests > 1 && covers(guests-1) {
			guests--
		}
		for !covers(guests) {
			guests++
		}
	}
	return BreakEven{Guests: int64(guests), Reachable: true}
}

// classify compares against zero exactly; no tolerance is applied.
func classify(netProfit float64) Outcome {
	switch {
	case netProfit > 0:
		return OutcomeProfit
	case netProfit < 0:
		return OutcomeLoss
	default:
		return OutcomeBreakEven
	}
}
