package spl

import (
	"Loudspeaker/internal/calc/reactive"
	"Loudspeaker/internal/calc/tsparams"
	"Loudspeaker/internal/units"
	"Loudspeaker/internal/validation"
	"math"
)

// BasicInput is the basic SPL form, where F0 is entered directly.
type BasicInput struct {
	AirDensity      *float64
	EffectiveRadius *float64
	Mms             *float64
	F0              *float64
	Re              *float64
	MicDistance     *float64
	InputVoltage    *float64
	Rms             *float64
	Bl              *float64
	Frequency       *float64
}

type BasicResult struct {
	Qts               *float64 `json:"qts"`
	Pressure          *float64 `json:"pressure"`
	SPL               *float64 `json:"spl"`
	FrequencyResponse []Point  `json:"frequencyResponse"`
}

func BasicFromForm(f *reactive.Form) BasicInput {
	return BasicInput{
		AirDensity:      f.Param(validation.AirDensity),
		EffectiveRadius: f.Param(validation.EffectiveRadius),
		Mms:             f.Param(validation.Mms),
		F0:              f.Param(validation.F0),
		Re:              f.Param(validation.Re),
		MicDistance:     f.Param(validation.MicDistance),
		InputVoltage:    f.Param(validation.InputVoltage),
		Rms:             f.Param(validation.Rms),
		Bl:              f.Param(validation.Bl),
		Frequency:       f.Param(validation.Frequency),
	}
}

func (in BasicInput) driver() []*float64 {
	return []*float64{in.AirDensity, in.EffectiveRadius, in.Mms, in.F0, in.Re, in.MicDistance, in.InputVoltage, in.Rms, in.Bl}
}

func (in BasicInput) params() Params {
	p := Params{
		AirDensity:      *in.AirDensity,
		EffectiveRadius: *in.EffectiveRadius,
		Mms:             *in.Mms,
		F0:              *in.F0,
		Re:              *in.Re,
		MicDistance:     *in.MicDistance,
		InputVoltage:    *in.InputVoltage,
		Rms:             *in.Rms,
		Bl:              *in.Bl,
	}
	if in.Frequency != nil {
		p.Frequency = *in.Frequency
	}
	return p
}

func EvaluateBasic(in BasicInput) (BasicResult, reactive.Issues) {
	var res BasicResult
	issues := reactive.Issues{}

	if reactive.Positive(in.F0, in.Mms, in.Bl, in.Re, in.Rms) {
		res.Qts = reactive.Of(Qts(*in.F0, *in.Mms, *in.Bl, *in.Re, *in.Rms))
	}
	if !reactive.Positive(in.driver()...) {
		return res, issues
	}
	p := in.params()
	if reactive.Positive(in.Frequency) {
		pressure := SoundPressure(p)
		res.Pressure = reactive.Of(pressure)
		res.SPL = reactive.Of(ToDBSPL(pressure))
		if res.Pressure == nil || res.SPL == nil {
			res.Pressure, res.SPL = nil, nil
			issues.Add("spl", reactive.ErrCalculation)
		}
	}
	if resp := FrequencyResponse(p); finitePoints(resp) {
		res.FrequencyResponse = resp
	} else {
		issues.Add("frequencyResponse", reactive.ErrCalculation)
	}
	return res, issues
}

// AdvancedInput is the advanced SPL form. F0 is derived from Mms and Kms.
type AdvancedInput struct {
	AirDensity      *float64
	EffectiveRadius *float64
	Mms             *float64
	Kms             *float64
	Re              *float64
	MicDistance     *float64
	InputVoltage    *float64
	Rms             *float64
	Bl              *float64
	Frequency       *float64
}

type AdvancedEvaluation struct {
	F0                *float64        `json:"f0"`
	SPL               *float64        `json:"spl"`
	Qts               *float64        `json:"qts"`
	Sec2              *float64        `json:"sec2"`
	Sec3              *float64        `json:"sec3"`
	FrequencyResponse []AdvancedPoint `json:"frequencyResponse"`
}

func AdvancedFromForm(f *reactive.Form) AdvancedInput {
	return AdvancedInput{
		AirDensity:      f.Param(validation.AirDensity),
		EffectiveRadius: f.Param(validation.EffectiveRadius),
		Mms:             f.Param(validation.Mms),
		Kms:             f.Param(validation.Kms),
		Re:              f.Param(validation.Re),
		MicDistance:     f.Param(validation.MicDistance),
		InputVoltage:    f.Param(validation.InputVoltage),
		Rms:             f.Param(validation.Rms),
		Bl:              f.Param(validation.Bl),
		Frequency:       f.Param(validation.Frequency),
	}
}

func EvaluateAdvanced(in AdvancedInput) (AdvancedEvaluation, reactive.Issues) {
	var res AdvancedEvaluation
	issues := reactive.Issues{}

	if reactive.Positive(in.Mms, in.Kms) {
		res.F0 = reactive.Of(tsparams.F0(*in.Mms, *in.Kms))
	}
	if res.F0 == nil ||
		!reactive.Positive(in.AirDensity, in.EffectiveRadius, in.Re, in.MicDistance, in.Bl) ||
		!reactive.Known(in.InputVoltage, in.Rms) {
		return res, issues
	}
	p := AdvancedParams{
		AirDensity:      *in.AirDensity,
		EffectiveRadius: units.MillimetersToMeters(*in.EffectiveRadius),
		Mms:             units.GramsToKilograms(*in.Mms),
		F0:              *res.F0,
		Re:              *in.Re,
		MicDistance:     *in.MicDistance,
		InputVoltage:    *in.InputVoltage,
		Rms:             *in.Rms,
		Bl:              *in.Bl,
	}
	if reactive.Positive(in.Frequency) {
		p.Frequency = *in.Frequency
		r := AdvancedSPL(p)
		if finite(r.SPL, r.Qts, r.Sec2, r.Sec3) {
			res.SPL, res.Qts, res.Sec2, res.Sec3 = reactive.Of(r.SPL), reactive.Of(r.Qts), reactive.Of(r.Sec2), reactive.Of(r.Sec3)
		} else {
			issues.Add("spl", reactive.ErrCalculation)
		}
	}
	resp := AdvancedFrequencyResponse(p)
	ok := true
	for _, pt := range resp {
		ok = ok && finite(pt.XRatio, pt.Pressure, pt.SPL)
	}
	if ok {
		res.FrequencyResponse = resp
	} else {
		issues.Add("frequencyResponse", reactive.ErrCalculation)
	}
	return res, issues
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func finitePoints(pts []Point) bool {
	for _, p := range pts {
		if !finite(p.Pressure, p.SPL) {
			return false
		}
	}
	return true
}
