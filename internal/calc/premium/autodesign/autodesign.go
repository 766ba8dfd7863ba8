package autodesign

import (
	"Loudspeaker/internal/calc/box"
	"errors"
	"math"
)

var ErrInvalidInput = errors.New("autodesign: target volume, panel thickness and ratio must be positive")

// GoldenRatio is the default width:height:depth proportion.
var GoldenRatio = box.Dimensions{Width: 0.618, Height: 1, Depth: 1.618}

type BoxAutoInput struct {
	TargetLiters   float64         `json:"targetLiters"`
	PanelThickness float64         `json:"panelThickness"`
	Ratio          *box.Dimensions `json:"ratio,omitempty"`
}

type BoxAutoResult struct {
	Ratio box.Dimensions `json:"ratio"`
	box.Results
	Notes string `json:"notes"`
}

// Box scales the ratio so the internal volume matches the target and
// returns the full box evaluation for those dimensions.
func Box(in BoxAutoInput) (BoxAutoResult, error) {
	ratio := GoldenRatio
	if in.Ratio != nil {
		ratio = *in.Ratio
	}
	if in.TargetLiters <= 0 || in.PanelThickness <= 0 ||
		ratio.Width <= 0 || ratio.Height <= 0 || ratio.Depth <= 0 {
		return BoxAutoResult{}, ErrInvalidInput
	}
	k := math.Cbrt(in.TargetLiters * 1000 / (ratio.Width * ratio.Height * ratio.Depth))
	res, err := box.FromInternal(box.Dimensions{
		Width:  ratio.Width * k,
		Height: ratio.Height * k,
		Depth:  ratio.Depth * k,
	}, in.PanelThickness)
	if err != nil {
		return BoxAutoResult{}, err
	}
	return BoxAutoResult{
		Ratio:   ratio,
		Results: res,
		Notes:   "Internal dimensions scaled to the target volume.",
	}, nil
}
