package main

import (
	"fmt"
	"os"

	"github.com/bayneri/eventmargin/internal/report"
	"github.com/bayneri/eventmargin/internal/sweep"
)

func runSweep(args []string) error {
	fs, opts := baseFlags("sweep")
	from := fs.Float64("from", 0, "lowest guest count")
	to := fs.Float64("to", 0, "highest guest count (default: twice break-even or current guests)")
	step := fs.Float64("step", 0, "guest increment (default: range/10)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, logger, err := loadEnv(opts)
	if err != nil {
		return err
	}
	defer logger.Sync()

	loaded, err := loadScenario(opts, cfg)
	if err != nil {
		return err
	}
	plan, err := sweep.Build(loaded.inputs, sweep.Options{From: *from, To: *to, Step: *step})
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Scenario: %s\n", loaded.meta.Name)
	sweep.Render(os.Stdout, plan, func(v float64) string {
		return report.Money(cfg.Currency, v)
	})
	return nil
}
