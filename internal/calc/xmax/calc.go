package xmax

import (
	"Loudspeaker/internal/calc/reactive"
	"Loudspeaker/internal/validation"
)

type Result struct {
	Xmax float64 `json:"xmax"`
}

// Calculate is the German method: half the overhang of the voice-coil
// winding beyond the top plate, in mm.
func Calculate(vcWindingWidth, plateThickness float64) Result {
	return Result{Xmax: (vcWindingWidth - plateThickness) / 2}
}

type Input struct {
	VCWindingWidth *float64
	PlateThickness *float64
}

func FromForm(f *reactive.Form) Input {
	return Input{
		VCWindingWidth: f.Param(validation.VCWindingWidth),
		PlateThickness: f.Param(validation.PlateThickness),
	}
}

func Evaluate(in Input) (*Result, reactive.Issues) {
	issues := reactive.Issues{}
	if !reactive.Known(in.VCWindingWidth, in.PlateThickness) {
		return nil, issues
	}
	if err := validation.ValidateXmaxInputs(in.VCWindingWidth, in.PlateThickness); err != nil {
		issues.Add("xmax", err)
		return nil, issues
	}
	res := Calculate(*in.VCWindingWidth, *in.PlateThickness)
	return &res, issues
}
