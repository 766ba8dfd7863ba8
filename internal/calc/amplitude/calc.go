package amplitude

import (
	"Loudspeaker/internal/calc/reactive"
	"Loudspeaker/internal/units"
	"Loudspeaker/internal/validation"
	"math"
)

// ReferencePressure, Pa.
const ReferencePressure = 2e-5

type Result struct {
	Meters      float64 `json:"amplitudeMeters"`
	Millimeters float64 `json:"amplitudeMillimeters"`
}

// Calculate returns the peak diaphragm excursion needed to reach spl dB at
// frequency Hz for a piston of effectiveRadius mm.
func Calculate(spl, airDensity, effectiveRadius, frequency float64) Result {
	a := units.MillimetersToMeters(effectiveRadius)
	num := 2 * math.Sqrt2 * ReferencePressure * math.Pow(10, spl/20)
	den := 4 * math.Pi * math.Pi * frequency * frequency * airDensity * a * a
	m := num / den
	return Result{Meters: m, Millimeters: units.MetersToMillimeters(m)}
}

type Input struct {
	SPL             *float64
	AirDensity      *float64
	EffectiveRadius *float64
	Frequency       *float64
}

func FromForm(f *reactive.Form) Input {
	return Input{
		SPL:             f.Param(validation.SPL),
		AirDensity:      f.Param(validation.AirDensity),
		EffectiveRadius: f.Param(validation.EffectiveRadius),
		Frequency:       f.Param(validation.Frequency),
	}
}

func Evaluate(in Input) (*Result, reactive.Issues) {
	issues := reactive.Issues{}
	if !reactive.Known(in.SPL) || !reactive.Positive(in.AirDensity, in.EffectiveRadius, in.Frequency) {
		return nil, issues
	}
	res := Calculate(*in.SPL, *in.AirDensity, *in.EffectiveRadius, *in.Frequency)
	if reactive.Of(res.Meters) == nil {
		issues.Add("amplitude", reactive.ErrCalculation)
		return nil, issues
	}
	return &res, issues
}
