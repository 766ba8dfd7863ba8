// Package thinfilm sizes thin-film resistor traces from R = ρ·L/(W·T).
// All formulas take SI units: Ω·m for resistivity, meters for geometry.
package thinfilm

import (
	"errors"
	"fmt"
)

var ErrUnknownMode = errors.New("thinfilm: unknown calculation mode")

func Resistance(rho, length, width, thickness float64) float64 {
	return rho * length / (width * thickness)
}

func LineWidth(rho, length, resistance, thickness float64) float64 {
	return rho * length / (resistance * thickness)
}

func LineThickness(rho, length, resistance, width float64) float64 {
	return rho * length / (resistance * width)
}

func LineLength(resistance, width, thickness, rho float64) float64 {
	return resistance * width * thickness / rho
}

func VolumeResistivity(resistance, width, thickness, length float64) float64 {
	return resistance * width * thickness / length
}

// Mode names the variable being solved for. The other four are inputs.
type Mode string

const (
	SolveResistance        Mode = "resistance"
	SolveLineWidth         Mode = "lineWidth"
	SolveLineThickness     Mode = "lineThickness"
	SolveLineLength        Mode = "lineLength"
	SolveVolumeResistivity Mode = "volumeResistivity"
)

var Modes = []Mode{SolveResistance, SolveLineWidth, SolveLineThickness, SolveLineLength, SolveVolumeResistivity}

func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Trace holds all five quantities in SI units.
type Trace struct {
	Resistance        float64
	VolumeResistivity float64
	Width             float64
	Thickness         float64
	Length            float64
}

// Solve fills in the quantity named by m from the other four.
func Solve(m Mode, t Trace) (Trace, error) {
	switch m {
	case SolveResistance:
		t.Resistance = Resistance(t.VolumeResistivity, t.Length, t.Width, t.Thickness)
	case SolveLineWidth:
		t.Width = LineWidth(t.VolumeResistivity, t.Length, t.Resistance, t.Thickness)
	case SolveLineThickness:
		t.Thickness = LineThickness(t.VolumeResistivity, t.Length, t.Resistance, t.Width)
	case SolveLineLength:
		t.Length = LineLength(t.Resistance, t.Width, t.Thickness, t.VolumeResistivity)
	case SolveVolumeResistivity:
		t.VolumeResistivity = VolumeResistivity(t.Resistance, t.Width, t.Thickness, t.Length)
	default:
		return t, fmt.Errorf("%w: %q", ErrUnknownMode, m)
	}
	return t, nil
}
