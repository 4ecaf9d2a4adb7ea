package sweep

import (
	"errors"
	"fmt"
	"math"

	"github.com/bayneri/eventmargin/internal/profit"
)

const (
	defaultRows = 10
	MaxRows     = 200
)

type Options struct {
	From float64
	To   float64
	Step float64
}

type Plan struct {
	Inputs    profit.Inputs
	BreakEven profit.BreakEven
	Rows      []Row
}

type Row struct {
	Guests      float64
	Result      profit.Result
	BreakEven   bool
	CurrentSize bool
}

// Build recomputes the inputs across a range of attendance figures. A zero
// To picks a range around break-even and the current guest count.
func Build(in profit.Inputs, opts Options) (Plan, error) {
	in = profit.Normalize(in)
	base := profit.Compute(in)

	from := math.Max(opts.From, 0)
	to := opts.To
	if to == 0 {
		to = defaultUpperBound(in.Guests, base.BreakEven)
	}
	if to < from {
		return Plan{}, fmt.Errorf("--to (%g) must not be below --from (%g)", to, from)
	}
	step := opts.Step
	if step < 0 {
		return Plan{}, errors.New("--step must be positive")
	}
	if step == 0 {
		step = math.Max(math.Ceil((to-from)/defaultRows), 1)
	}
	if (to-from)/step+1 > MaxRows {
		return Plan{}, fmt.Errorf("sweep would produce more than %d rows; raise --step", MaxRows)
	}

	count := int(math.Floor((to-from)/step)) + 1
	var rows []Row
	for i := 0; i < count; i++ {
		guests := from + float64(i)*step
		probe := in
		probe.Guests = guests
		rows = append(rows, Row{
			Guests:      guests,
			Result:      profit.Compute(probe),
			CurrentSize: guests == in.Guests,
		})
	}
	markBreakEven(rows, in, base.BreakEven)

	return Plan{
		Inputs:    in,
		BreakEven: base.BreakEven,
		Rows:      rows,
	}, nil
}

func defaultUpperBound(guests float64, be profit.BreakEven) float64 {
	upper := guests
	if n, ok := be.Value(); ok && float64(n) > upper {
		upper = float64(n)
	}
	if upper <= 0 {
		return defaultRows
	}
	return math.Ceil(upper * 2)
}

func markBreakEven(rows []Row, in profit.Inputs, be profit.BreakEven) {
	if !be.Reachable {
		return
	}
	for i := range rows {
		if profit.Covers(in, rows[i].Guests) {
			rows[i].BreakEven = true
			return
		}
	}
}
