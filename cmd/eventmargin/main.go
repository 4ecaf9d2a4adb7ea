package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/bayneri/eventmargin/internal/config"
	"github.com/bayneri/eventmargin/internal/explain"
	"github.com/bayneri/eventmargin/internal/preset"
	"github.com/bayneri/eventmargin/internal/profit"
	"github.com/bayneri/eventmargin/internal/report"
	"github.com/bayneri/eventmargin/internal/scenario"
	"go.uber.org/zap"
)

const version = "0.1.0"

type commandOptions struct {
	file       string
	preset     string
	set        string
	configPath string
	currency   string
	verbose    bool
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "calc":
		err = runCalc(os.Args[2:])
	case "presets":
		err = runPresets(os.Args[2:])
	case "sweep":
		err = runSweep(os.Args[2:])
	case "compare":
		err = runCompare(os.Args[2:])
	case "validate":
		err = runValidate(os.Args[2:])
	case "publish":
		err = runPublish(os.Args[2:])
	case "export":
		err = runExport(os.Args[2:])
	case "history":
		err = runHistory(os.Args[2:])
	case "explain":
		err = runExplain(os.Args[2:])
	case "version":
		fmt.Println(version)
	default:
		usage()
		os.Exit(1)
	}
	if err != nil {
		fail(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "eventmargin - will your event pay for itself?")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  eventmargin calc     --preset live-music --set guests=90")
	fmt.Fprintln(os.Stderr, "  eventmargin calc     -f scenario.yaml --format md,json --out out/gig")
	fmt.Fprintln(os.Stderr, "  eventmargin presets")
	fmt.Fprintln(os.Stderr, "  eventmargin sweep    --preset trivia --from 0 --to 150 --step 10")
	fmt.Fprintln(os.Stderr, "  eventmargin compare  --inputs a/summary.json,b/summary.json")
	fmt.Fprintln(os.Stderr, "  eventmargin validate -f scenario.yaml")
	fmt.Fprintln(os.Stderr, "  eventmargin publish  -f scenario.yaml --project my-gcp-project [--dashboard]")
	fmt.Fprintln(os.Stderr, "  eventmargin export   monitoring-json -f scenario.yaml --project my-gcp-project")
	fmt.Fprintln(os.Stderr, "  eventmargin export   terraform -f a.yaml,b.yaml --project my-gcp-project")
	fmt.Fprintln(os.Stderr, "  eventmargin history  --project my-gcp-project --scenario friday-gig --last 7d")
	fmt.Fprintln(os.Stderr, "  eventmargin explain  break-even|margin|advice")
}

func baseFlags(cmd string) (*flag.FlagSet, *commandOptions) {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := &commandOptions{}
	fs.StringVar(&opts.file, "f", "", "path to scenario YAML (comma-separated where several are accepted)")
	fs.StringVar(&opts.preset, "preset", "", "preset to start from when -f is not given")
	fs.StringVar(&opts.set, "set", "", "input overrides in key=value,key=value format")
	fs.StringVar(&opts.configPath, "config", "", "config file (default ./eventmargin.yaml)")
	fs.StringVar(&opts.currency, "currency", "", "currency symbol (overrides config)")
	fs.BoolVar(&opts.verbose, "verbose", false, "verbose diagnostics on stderr")
	return fs, opts
}

func loadEnv(opts *commandOptions) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, nil, err
	}
	if opts.currency != "" {
		cfg.Currency = opts.currency
	}
	logger, err := newLogger(opts.verbose)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

type loadedScenario struct {
	meta   report.Meta
	inputs profit.Inputs
}

func loadScenarios(opts *commandOptions, cfg *config.Config) ([]loadedScenario, error) {
	overrides, err := scenario.ParseOverrides(opts.set)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(opts.file) != "" && strings.TrimSpace(opts.preset) != "" {
		return nil, errors.New("use either -f or --preset, not both")
	}

	var docs []scenario.Scenario
	if strings.TrimSpace(opts.file) != "" {
		for _, path := range splitCSV(opts.file) {
			doc, err := scenario.Load(path)
			if err != nil {
				return nil, err
			}
			if err := doc.Validate(); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			docs = append(docs, doc)
		}
	} else {
		name := opts.preset
		if strings.TrimSpace(name) == "" {
			name = cfg.DefaultPreset
		}
		doc, err := scenario.FromPreset(name)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	var out []loadedScenario
	for _, doc := range docs {
		in, err := doc.Resolve()
		if err != nil {
			return nil, err
		}
		out = append(out, loadedScenario{
			meta: report.Meta{
				Name:   doc.Metadata.Name,
				Vibe:   doc.Metadata.Vibe,
				Preset: doc.Preset,
				Labels: doc.Metadata.Labels,
			},
			inputs: scenario.Apply(in, overrides),
		})
	}
	return out, nil
}

func loadScenario(opts *commandOptions, cfg *config.Config) (loadedScenario, error) {
	loaded, err := loadScenarios(opts, cfg)
	if err != nil {
		return loadedScenario{}, err
	}
	if len(loaded) != 1 {
		return loadedScenario{}, errors.New("this command takes a single scenario")
	}
	return loaded[0], nil
}

func runPresets(args []string) error {
	fs, opts := baseFlags("presets")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, _, err := loadEnv(opts)
	if err != nil {
		return err
	}
	return writePresets(os.Stdout, cfg.Currency)
}

func writePresets(w io.Writer, currency string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SLUG\tNAME\tGUESTS\tNET PROFIT\tBREAK-EVEN\tDESCRIPTION")
	for _, p := range preset.All() {
		r := profit.Compute(p.Inputs)
		breakEven := "unreachable"
		if guests, ok := r.BreakEven.Value(); ok {
			breakEven = fmt.Sprintf("%d", guests)
		}
		fmt.Fprintf(tw, "%s\t%s\t%g\t%s\t%s\t%s\n", p.Slug, p.Name, p.Inputs.Guests, report.Money(currency, r.NetProfit), breakEven, p.Description)
	}
	return tw.Flush()
}

func runValidate(args []string) error {
	fs, opts := baseFlags("validate")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(opts.file) == "" {
		return errors.New("-f is required")
	}
	for _, path := range splitCSV(opts.file) {
		doc, err := scenario.Load(path)
		if err != nil {
			return err
		}
		if err := doc.Validate(); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	fmt.Fprintln(os.Stdout, "Scenario is valid.")
	return nil
}

func runExplain(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("explain requires a topic: %s", strings.Join(explain.Topics(), ", "))
	}
	text, err := explain.Topic(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, text)
	return nil
}

func splitCSV(input string) []string {
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	type exitCoder interface {
		ExitCode() int
	}
	var coded exitCoder
	if errors.As(err, &coded) {
		os.Exit(coded.ExitCode())
	}
	os.Exit(1)
}
