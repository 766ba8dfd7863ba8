// Package box computes enclosure volume, dimensional ratios and the
// standing-wave frequencies of a rectangular cabinet. Dimensions are in cm.
package box

import (
	"errors"
	"math"
)

// SoundSpeed in m/s at 20 °C, used for standing waves only.
const SoundSpeed = 343.0

var (
	ErrNonPositive   = errors.New("box: all dimensions must be positive values")
	ErrPanelTooThick = errors.New("box: panel thickness must be less than half of each external dimension")
)

type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

func (d Dimensions) positive() bool {
	return d.Width > 0 && d.Height > 0 && d.Depth > 0
}

func (d Dimensions) grow(by float64) Dimensions {
	return Dimensions{d.Width + by, d.Height + by, d.Depth + by}
}

type Volume struct {
	CubicCentimeters float64 `json:"cubicCentimeters"`
	Liters           float64 `json:"liters"`
}

type Ratios struct {
	Internal Dimensions `json:"internal"`
	External Dimensions `json:"external"`
}

type AxialModes struct {
	Order1 float64 `json:"order1"`
	Order2 float64 `json:"order2"`
	Order3 float64 `json:"order3"`
}

type Axial struct {
	Width  AxialModes `json:"width"`
	Height AxialModes `json:"height"`
	Depth  AxialModes `json:"depth"`
}

type Mode [3]int

type CompositeMode struct {
	Mode      Mode    `json:"mode"`
	Frequency float64 `json:"frequency"`
}

type StandingWaves struct {
	Axial     Axial           `json:"axial"`
	Composite []CompositeMode `json:"composite"`
}

type Results struct {
	Internal      Dimensions    `json:"internal"`
	External      Dimensions    `json:"external"`
	Volume        Volume        `json:"volume"`
	Ratios        Ratios        `json:"ratios"`
	StandingWaves StandingWaves `json:"standingWaves"`
}

// Modes lists the (n, m, l) combinations evaluated by StandingWaveFrequencies,
// in output order.
var Modes = [...]Mode{
	{1, 0, 0}, {0, 1, 0}, {0, 0, 1},
	{1, 1, 0}, {1, 0, 1}, {0, 1, 1},
	{1, 1, 1},
	{2, 0, 0}, {0, 2, 0}, {0, 0, 2},
	{2, 1, 0}, {2, 0, 1}, {0, 2, 1},
	{1, 2, 0}, {1, 0, 2}, {0, 1, 2},
	{2, 2, 0}, {2, 0, 2}, {0, 2, 2},
	{2, 1, 1}, {1, 2, 1}, {1, 1, 2},
	{2, 2, 1}, {2, 1, 2}, {1, 2, 2},
	{2, 2, 2},
	{3, 0, 0}, {0, 3, 0}, {0, 0, 3},
}

// Ratio normalizes each dimension to the smallest one.
func Ratio(d Dimensions) Dimensions {
	m := math.Min(d.Width, math.Min(d.Height, d.Depth))
	return Dimensions{d.Width / m, d.Height / m, d.Depth / m}
}

// Axis returns the first three axial modes for a length in cm.
func Axis(length float64) AxialModes {
	l := length / 100
	return AxialModes{
		Order1: SoundSpeed / (2 * l),
		Order2: SoundSpeed / l,
		Order3: 1.5 * SoundSpeed / l,
	}
}

// Composite is f = c/2·√((n/W)² + (m/H)² + (l/D)²).
func Composite(m Mode, d Dimensions) float64 {
	w, h, dp := d.Width/100, d.Height/100, d.Depth/100
	sum := math.Pow(float64(m[0])/w, 2) + math.Pow(float64(m[1])/h, 2) + math.Pow(float64(m[2])/dp, 2)
	return SoundSpeed / 2 * math.Sqrt(sum)
}

func StandingWaveFrequencies(d Dimensions) StandingWaves {
	sw := StandingWaves{
		Axial: Axial{
			Width:  Axis(d.Width),
			Height: Axis(d.Height),
			Depth:  Axis(d.Depth),
		},
		Composite: make([]CompositeMode, len(Modes)),
	}
	for i, m := range Modes {
		sw.Composite[i] = CompositeMode{Mode: m, Frequency: Composite(m, d)}
	}
	return sw
}

func results(internal, external Dimensions) Results {
	cm3 := internal.Width * internal.Height * internal.Depth
	return Results{
		Internal: internal,
		External: external,
		Volume:   Volume{CubicCentimeters: cm3, Liters: cm3 / 1000},
		Ratios: Ratios{
			Internal: Ratio(internal),
			External: Ratio(external),
		},
		StandingWaves: StandingWaveFrequencies(internal),
	}
}

// FromInternal adds two panel thicknesses to every internal dimension.
func FromInternal(internal Dimensions, panel float64) (Results, error) {
	if !internal.positive() || panel <= 0 {
		return Results{}, ErrNonPositive
	}
	return results(internal, internal.grow(2*panel)), nil
}

// FromExternal removes two panel thicknesses from every external dimension.
func FromExternal(external Dimensions, panel float64) (Results, error) {
	if !external.positive() || panel <= 0 {
		return Results{}, ErrNonPositive
	}
	if panel >= external.Width/2 || panel >= external.Height/2 || panel >= external.Depth/2 {
		return Results{}, ErrPanelTooThick
	}
	internal := external.grow(-2 * panel)
	if !internal.positive() {
		return Results{}, ErrPanelTooThick
	}
	return results(internal, external), nil
}
