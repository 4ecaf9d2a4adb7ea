package explain

import (
	"fmt"
	"sort"
)

var topics = map[string]string{
	"break-even": `Break-even is the smallest whole number of guests whose ticket and extra spend covers the fixed costs.

It is ceil(fixed costs / (ticket price + extra spend)). When nothing is earned per guest but costs remain, no attendance can cover them and break-even is reported as unreachable instead of a number.`,
	"margin": `Net margin is net profit as a percentage of total revenue.

With no revenue the margin is 0 (or 100 if somehow still profitable). The dial clamps the margin to -100%..100% so a disastrous night still fits on the gauge; the printed percentage and the tips use the real value.`,
	"advice": `One tip is chosen per estimate, first match wins:

1. Profitable but under 15% margin: raise prices or upsell.
2. Losing money with fewer guests than break-even: the guest shortfall.
3. Losing money anyway: cut fixed costs.
4. At least 25% margin and over 100 profit: keep the format.
5. More than 100 guests and profitable: check staffing.
6. Otherwise: adjust the inputs and try again.`,
}

func Topic(name string) (string, error) {
	if text, ok := topics[name]; ok {
		return text, nil
	}
	return "", fmt.Errorf("unknown explain topic %q (want one of %v)", name, Topics())
}

func Topics() []string {
	var keys []string
	for k := range topics {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
