package profit

import (
	"fmt"
	"math"
)

// Circumference of the dial stroke (2 * pi * 45, rounded).
const Circumference = 283

type Tone string

const (
	ToneSuccess Tone = "success"
	ToneDanger  Tone = "danger"
	ToneNeutral Tone = "neutral"
)

type GaugeReading struct {
	ClampedMargin float64 `json:"clampedMargin"`
	Fill          float64 `json:"fill"`
	DashOffset    float64 `json:"dashOffset"`
	Label         string  `json:"label"`
	Tone          Tone    `json:"tone"`
}

// Gauge maps the margin onto a dial. The clamp only affects the fill; the
// label shows the unclamped margin.
func Gauge(r Result) GaugeReading {
	clamped := ClampMargin(r.NetMarginPercent)
	fill := (clamped + 100) / 200
	return GaugeReading{
		ClampedMargin: clamped,
		Fill:          fill,
		DashOffset:    Circumference * (1 - fill),
		Label:         fmt.Sprintf("%d%%", roundHalfUp(r.NetMarginPercent)),
		Tone:          toneFor(r.Outcome),
	}
}

func ClampMargin(margin float64) float64 {
	if math.IsNaN(margin) {
		return 0
	}
	return math.Min(math.Max(margin, -100), 100)
}

func roundHalfUp(value float64) int64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return int64(math.Floor(value + 0.5))
}

func toneFor(outcome Outcome) Tone {
	switch outcome {
	case OutcomeProfit:
		return ToneSuccess
	case OutcomeLoss:
		return ToneDanger
	default:
		return ToneNeutral
	}
}
