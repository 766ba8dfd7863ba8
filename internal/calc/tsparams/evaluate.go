package tsparams

import (
	"Loudspeaker/internal/calc/reactive"
	"Loudspeaker/internal/units"
	"Loudspeaker/internal/validation"
)

// Input holds the parsed form. A nil field has not been supplied.
type Input struct {
	Mms             *float64 `json:"mms"`
	Kms             *float64 `json:"kms"`
	Bl              *float64 `json:"bl"`
	Re              *float64 `json:"re"`
	Rms             *float64 `json:"rms"`
	EffectiveRadius *float64 `json:"effectiveRadius"`
	AirDensity      *float64 `json:"airDensity"`
	Power           *float64 `json:"power"`
}

// Result fields are nil when their inputs are incomplete or invalid.
type Result struct {
	F0           *float64 `json:"f0"`
	Vas          *float64 `json:"vas"`
	Qes          *float64 `json:"qes"`
	Qms          *float64 `json:"qms"`
	Qts          *float64 `json:"qts"`
	AirLoadMass  *AirLoad `json:"airLoadMass"`
	InputVoltage *float64 `json:"inputVoltage"`
}

func FromForm(f *reactive.Form) Input {
	return Input{
		Mms:             f.Param(validation.Mms),
		Kms:             f.Param(validation.Kms),
		Bl:              f.Param(validation.Bl),
		Re:              f.Param(validation.Re),
		Rms:             f.Param(validation.Rms),
		EffectiveRadius: f.Param(validation.EffectiveRadius),
		AirDensity:      f.Param(validation.AirDensity),
		Power:           f.Param(validation.Power),
	}
}

// Evaluate computes every output whose inputs are available. F0 feeds Qes
// and Qms, which feed Qts.
func Evaluate(in Input) (Result, reactive.Issues) {
	var res Result
	issues := reactive.Issues{}

	if reactive.Positive(in.Mms, in.Kms) {
		res.F0 = reactive.Of(F0(*in.Mms, *in.Kms))
	}
	if reactive.Positive(in.AirDensity, in.EffectiveRadius, in.Kms) {
		res.Vas = reactive.Of(Vas(*in.AirDensity, *in.EffectiveRadius, *in.Kms))
	}
	if res.F0 != nil && reactive.Positive(in.Re, in.Bl) {
		res.Qes = reactive.Of(Qes(*res.F0, *in.Re, *in.Mms, *in.Bl))
	}
	if res.F0 != nil && reactive.Known(in.Rms) {
		if err := validation.ValidateQmsInputs(res.F0, in.Mms, in.Rms); err != nil {
			issues.Add("qms", err)
		} else {
			res.Qms = reactive.Of(Qms(*res.F0, units.GramsToKilograms(*in.Mms), *in.Rms))
		}
	}
	if res.Qes != nil && res.Qms != nil {
		if err := validation.ValidateQtsInputs(res.Qes, res.Qms); err != nil {
			issues.Add("qts", err)
		} else {
			res.Qts = reactive.Of(Qts(*res.Qes, *res.Qms))
		}
	}
	if reactive.Positive(in.EffectiveRadius, in.AirDensity) {
		al := AirLoadMass(*in.EffectiveRadius, *in.AirDensity)
		res.AirLoadMass = &al
	}
	if reactive.Positive(in.Re) && reactive.Known(in.Power) && validation.IsNonNegative(*in.Power) {
		res.InputVoltage = reactive.Of(InputVoltage(*in.Re, *in.Power))
	}
	return res, issues
}
