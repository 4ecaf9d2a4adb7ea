package scenario

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/bayneri/eventmargin/internal/preset"
	"github.com/bayneri/eventmargin/internal/profit"
)

const (
	APIVersionV1      = "eventmargin.dev/v1"
	KindEventScenario = "EventScenario"
)

type Scenario struct {
	APIVersion string   `yaml:"apiVersion"`
	Kind       string   `yaml:"kind"`
	Metadata   Metadata `yaml:"metadata"`
	Preset     string   `yaml:"preset"`
	Inputs     Inputs   `yaml:"inputs"`
}

type Metadata struct {
	Name   string            `yaml:"name"`
	Vibe   string            `yaml:"vibe"`
	Labels map[string]string `yaml:"labels"`
}

// Inputs holds optional overrides on top of the preset. Unset fields keep
// the preset value, or 0 without a preset.
type Inputs struct {
	Guests        *float64 `yaml:"guests"`
	TicketPrice   *float64 `yaml:"ticketPrice"`
	ExtraSpend    *float64 `yaml:"extraSpend"`
	LostSalesCost *float64 `yaml:"lostSalesCost"`
	StaffWages    *float64 `yaml:"staffWages"`
	MaterialsCost *float64 `yaml:"materialsCost"`
	RentalCost    *float64 `yaml:"rentalCost"`
}

func FromPreset(slug string) (Scenario, error) {
	p, err := preset.Lookup(slug)
	if err != nil {
		return Scenario{}, err
	}
	return Scenario{
		APIVersion: APIVersionV1,
		Kind:       KindEventScenario,
		Metadata:   Metadata{Name: p.Slug, Vibe: p.Name},
		Preset:     p.Slug,
	}, nil
}

func (s Scenario) Validate() error {
	var errs []string
	if s.APIVersion != APIVersionV1 {
		errs = append(errs, fmt.Sprintf("apiVersion must be %q", APIVersionV1))
	}
	if s.Kind != KindEventScenario {
		errs = append(errs, fmt.Sprintf("kind must be %q", KindEventScenario))
	}
	if strings.TrimSpace(s.Metadata.Name) == "" {
		errs = append(errs, "metadata.name is required")
	}
	if s.Preset != "" {
		if _, err := preset.Lookup(s.Preset); err != nil {
			errs = append(errs, err.Error())
		}
	}
	for _, field := range s.Inputs.fields() {
		if field.value == nil {
			continue
		}
		if msg := validAmount(*field.value); msg != "" {
			errs = append(errs, fmt.Sprintf("inputs.%s %s", field.name, msg))
		}
	}

	if len(errs) == 0 {
		resolved, err := s.Resolve()
		if err != nil {
			errs = append(errs, err.Error())
		} else if resolved.Guests <= 0 {
			errs = append(errs, "inputs.guests must be positive")
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func (s Scenario) Resolve() (profit.Inputs, error) {
	var base profit.Inputs
	if s.Preset != "" {
		p, err := preset.Lookup(s.Preset)
		if err != nil {
			return profit.Inputs{}, err
		}
		base = p.Inputs
	}
	for _, field := range s.Inputs.fields() {
		if field.value != nil {
			*field.target(&base) = *field.value
		}
	}
	return base, nil
}

type inputField struct {
	name   string
	value  *float64
	target func(*profit.Inputs) *float64
}

func (in Inputs) fields() []inputField {
	return []inputField{
		{"guests", in.Guests, func(p *profit.Inputs) *float64 { return &p.Guests }},
		{"ticketPrice", in.TicketPrice, func(p *profit.Inputs) *float64 { return &p.TicketPrice }},
		{"extraSpend", in.ExtraSpend, func(p *profit.Inputs) *float64 { return &p.ExtraSpend }},
		{"lostSalesCost", in.LostSalesCost, func(p *profit.Inputs) *float64 { return &p.LostSalesCost }},
		{"staffWages", in.StaffWages, func(p *profit.Inputs) *float64 { return &p.StaffWages }},
		{"materialsCost", in.MaterialsCost, func(p *profit.Inputs) *float64 { return &p.MaterialsCost }},
		{"rentalCost", in.RentalCost, func(p *profit.Inputs) *float64 { return &p.RentalCost }},
	}
}

func validAmount(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "must be a finite number"
	}
	if value < 0 {
		return "must not be negative"
	}
	return ""
}
