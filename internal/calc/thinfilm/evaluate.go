package thinfilm

import (
	"Loudspeaker/internal/calc/reactive"
	"Loudspeaker/internal/units"
	"Loudspeaker/internal/validation"
	"strconv"
)

// Input carries form values: resistivity in ×10⁻⁸ Ω·m, geometry in mm.
type Input struct {
	Mode              Mode
	Resistance        *float64
	VolumeResistivity *float64
	LineWidth         *float64
	LineThickness     *float64
	LineLength        *float64
}

// Result is the solved quantity in form units, plus the same value with
// six decimals as shown in the form.
type Result struct {
	Mode      Mode    `json:"mode"`
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
}

func FromForm(f *reactive.Form) Input {
	in := Input{Mode: Mode(f.Raw("mode"))}
	if in.Mode == "" {
		in.Mode = SolveResistance
	}
	in.Resistance = positive(f, "resistance")
	in.VolumeResistivity = positive(f, validation.VolumeResistivity)
	if in.VolumeResistivity == nil && f.Raw(validation.VolumeResistivity) == "" {
		if m, ok := FindMaterial(f.Raw("material")); ok {
			in.VolumeResistivity = &m.Resistivity
		}
	}
	in.LineWidth = positive(f, validation.LineWidth)
	in.LineThickness = positive(f, validation.LineThickness)
	in.LineLength = positive(f, validation.LineLength)
	return in
}

func positive(f *reactive.Form, name string) *float64 {
	v := f.Number(name)
	if v != nil && *v <= 0 {
		f.Issues.Add(name, &validation.FieldError{Kind: validation.ErrNotPositive, Field: name})
		return nil
	}
	return v
}

func (in Input) operands() []*float64 {
	switch in.Mode {
	case SolveResistance:
		return []*float64{in.VolumeResistivity, in.LineLength, in.LineWidth, in.LineThickness}
	case SolveLineWidth:
		return []*float64{in.VolumeResistivity, in.LineLength, in.Resistance, in.LineThickness}
	case SolveLineThickness:
		return []*float64{in.VolumeResistivity, in.LineLength, in.Resistance, in.LineWidth}
	case SolveLineLength:
		return []*float64{in.Resistance, in.LineWidth, in.LineThickness, in.VolumeResistivity}
	case SolveVolumeResistivity:
		return []*float64{in.Resistance, in.LineWidth, in.LineThickness, in.LineLength}
	}
	return nil
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// Evaluate solves the active mode once its four operands are positive.
// The solved value is returned in form units.
func Evaluate(in Input) (*Result, reactive.Issues) {
	issues := reactive.Issues{}
	if _, err := ParseMode(string(in.Mode)); err != nil {
		issues.Add("mode", &validation.FieldError{Kind: validation.ErrUnknownMode, Field: string(in.Mode)})
		return nil, issues
	}
	if !reactive.Positive(in.operands()...) {
		return nil, issues
	}
	t := Trace{
		Resistance:        orZero(in.Resistance),
		VolumeResistivity: units.ResistivityToOhmMeters(orZero(in.VolumeResistivity)),
		Width:             units.MillimetersToMeters(orZero(in.LineWidth)),
		Thickness:         units.MillimetersToMeters(orZero(in.LineThickness)),
		Length:            units.MillimetersToMeters(orZero(in.LineLength)),
	}
	solved, err := Solve(in.Mode, t)
	if err != nil {
		issues.Add(string(in.Mode), err)
		return nil, issues
	}
	var v float64
	switch in.Mode {
	case SolveResistance:
		v = solved.Resistance
	case SolveLineWidth:
		v = units.MetersToMillimeters(solved.Width)
	case SolveLineThickness:
		v = units.MetersToMillimeters(solved.Thickness)
	case SolveLineLength:
		v = units.MetersToMillimeters(solved.Length)
	case SolveVolumeResistivity:
		v = units.OhmMetersToResistivity(solved.VolumeResistivity)
	}
	if reactive.Of(v) == nil {
		issues.Add(string(in.Mode), reactive.ErrCalculation)
		return nil, issues
	}
	return &Result{Mode: in.Mode, Value: v, Formatted: strconv.FormatFloat(v, 'f', 6, 64)}, issues
}
