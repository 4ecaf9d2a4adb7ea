package sweep

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
)

func Render(w io.Writer, plan Plan, money func(float64) string) {
	if guests, ok := plan.BreakEven.Value(); ok {
		fmt.Fprintf(w, "Break-even: %d guests\n\n", guests)
	} else {
		fmt.Fprintf(w, "Break-even: unreachable\n\n")
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "GUESTS\tREVENUE\tNET PROFIT\tMARGIN\t\t")
	for _, row := range plan.Rows {
		marker := ""
		switch {
		case row.BreakEven && row.CurrentSize:
			marker = "<- break-even, current"
		case row.BreakEven:
			marker = "<- break-even"
		case row.CurrentSize:
			marker = "<- current"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f%%\t%s\t\n",
			strconv.FormatFloat(row.Guests, 'f', -1, 64),
			money(row.Result.TotalRevenue),
			money(row.Result.NetProfit),
			row.Result.NetMarginPercent,
			marker)
	}
	tw.Flush()
}
