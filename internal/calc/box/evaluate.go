package box

import (
	"Loudspeaker/internal/calc/reactive"
	"Loudspeaker/internal/validation"
)

// Side names which set of dimensions the user entered.
type Side string

const (
	Internal Side = "internal"
	External Side = "external"
)

type Input struct {
	Side           Side
	Width          *float64
	Height         *float64
	Depth          *float64
	PanelThickness *float64
}

// FromForm reads width/height/depth for the side named by "mode", which
// defaults to internal.
func FromForm(f *reactive.Form) Input {
	in := Input{Side: Side(f.Raw("mode"))}
	if in.Side == "" {
		in.Side = Internal
	}
	in.Width = f.Number("width")
	in.Height = f.Number("height")
	in.Depth = f.Number("depth")
	in.PanelThickness = f.Number("panelThickness")
	return in
}

func Evaluate(in Input) (*Results, reactive.Issues) {
	issues := reactive.Issues{}
	var validate func(w, h, d, p *float64) error
	var calc func(Dimensions, float64) (Results, error)
	switch in.Side {
	case Internal:
		validate, calc = validation.ValidateInternalDimensionInputs, FromInternal
	case External:
		validate, calc = validation.ValidateExternalDimensionInputs, FromExternal
	default:
		issues.Add("mode", &validation.FieldError{Kind: validation.ErrUnknownMode, Field: string(in.Side)})
		return nil, issues
	}
	if err := validate(in.Width, in.Height, in.Depth, in.PanelThickness); err != nil {
		issues.Add("box", err)
		return nil, issues
	}
	if !reactive.Known(in.Width, in.Height, in.Depth, in.PanelThickness) {
		return nil, issues
	}
	d := Dimensions{*in.Width, *in.Height, *in.Depth}
	res, err := reactive.Try(func() (Results, error) { return calc(d, *in.PanelThickness) })
	issues.Add("box", err)
	return res, issues
}
