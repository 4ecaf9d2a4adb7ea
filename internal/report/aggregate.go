package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bayneri/eventmargin/internal/profit"
)

type AggregateResult struct {
	SchemaVersion string              `json:"schemaVersion"`
	Inputs        []string            `json:"inputs"`
	Status        profit.Outcome      `json:"status"`
	Currency      string              `json:"currency"`
	Best          string              `json:"best"`
	Scenarios     []ScenarioAggregate `json:"scenarios"`
	Errors        []string            `json:"errors"`
}

type ScenarioAggregate struct {
	Scenario         string           `json:"scenario"`
	Preset           string           `json:"preset,omitempty"`
	Outcome          profit.Outcome   `json:"outcome"`
	TotalRevenue     float64          `json:"totalRevenue"`
	TotalFixedCosts  float64          `json:"totalFixedCosts"`
	NetProfit        float64          `json:"netProfit"`
	NetMarginPercent float64          `json:"netMarginPercent"`
	BreakEven        profit.BreakEven `json:"breakEven"`
	Tip              string           `json:"tip"`
}

func ReadSummaries(paths []string) ([]Summary, error) {
	var summaries []Summary
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		var summary Summary
		if err := json.Unmarshal(data, &summary); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if summary.SchemaVersion == "" {
			return nil, fmt.Errorf("missing schemaVersion in %s", path)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// Aggregate ranks scenarios by net profit. The overall status is the worst
// outcome seen.
func Aggregate(summaries []Summary, inputs []string) (AggregateResult, error) {
	if len(summaries) == 0 {
		return AggregateResult{}, errors.New("no summaries to aggregate")
	}
	var errorsList []string
	status := profit.OutcomeProfit
	currency := summaries[0].Currency
	seen := map[string]int{}
	var scenarios []ScenarioAggregate
	for i, summary := range summaries {
		status = mergeOutcome(status, summary.Result.Outcome)
		if summary.Currency != currency {
			errorsList = append(errorsList, fmt.Sprintf("%s: currency %q differs from %q", inputName(inputs, i, summary), summary.Currency, currency))
		}
		seen[summary.Scenario]++
		if seen[summary.Scenario] == 2 {
			errorsList = append(errorsList, fmt.Sprintf("scenario %q appears more than once", summary.Scenario))
		}
		scenarios = append(scenarios, ScenarioAggregate{
			Scenario:         summary.Scenario,
			Preset:           summary.Preset,
			Outcome:          summary.Result.Outcome,
			TotalRevenue:     summary.Result.TotalRevenue,
			TotalFixedCosts:  summary.Result.TotalFixedCosts,
			NetProfit:        summary.Result.NetProfit,
			NetMarginPercent: summary.Result.NetMarginPercent,
			BreakEven:        summary.Result.BreakEven,
			Tip:              summary.Tip.Message,
		})
	}

	sort.SliceStable(scenarios, func(i, j int) bool {
		if scenarios[i].NetProfit == scenarios[j].NetProfit {
			return scenarios[i].Scenario < scenarios[j].Scenario
		}
		return scenarios[i].NetProfit > scenarios[j].NetProfit
	})

	return AggregateResult{
		SchemaVersion: SchemaVersion,
		Inputs:        inputs,
		Status:        status,
		Currency:      currency,
		Best:          scenarios[0].Scenario,
		Scenarios:     scenarios,
		Errors:        errorsList,
	}, nil
}

func mergeOutcome(a, b profit.Outcome) profit.Outcome {
	score := func(value profit.Outcome) int {
		switch value {
		case profit.OutcomeLoss:
			return 3
		case profit.OutcomeBreakEven:
			return 2
		case profit.OutcomeProfit:
			return 1
		default:
			return 0
		}
	}
	if score(b) > score(a) {
		return b
	}
	return a
}

func inputName(inputs []string, i int, summary Summary) string {
	if i < len(inputs) {
		return inputs[i]
	}
	return summary.Scenario
}

func WriteAggregateJSON(path string, result AggregateResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return WriteJSON(path, result)
}

func WriteAggregateMarkdown(path string, result AggregateResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# eventmargin comparison\n\n")
	fmt.Fprintf(&b, "Inputs: %d\n\n", len(result.Inputs))
	fmt.Fprintf(&b, "- Status: %s\n", result.Status)
	fmt.Fprintf(&b, "- Best: %s\n\n", result.Best)

	fmt.Fprintf(&b, "| Scenario | Revenue | Fixed costs | Net profit | Margin | Break-even | Outcome |\n")
	fmt.Fprintf(&b, "| --- | --- | --- | --- | --- | --- | --- |\n")
	for _, s := range result.Scenarios {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %.2f%% | %s | %s |\n",
			s.Scenario,
			Money(result.Currency, s.TotalRevenue),
			Money(result.Currency, s.TotalFixedCosts),
			Money(result.Currency, s.NetProfit),
			s.NetMarginPercent,
			formatBreakEven(s.BreakEven),
			s.Outcome)
	}
	if len(result.Errors) > 0 {
		fmt.Fprintf(&b, "\n## Warnings\n")
		for _, err := range result.Errors {
			fmt.Fprintf(&b, "- %s\n", err)
		}
	}
	return os.WriteFile(path, []byte(b.String()), 0644)
}
