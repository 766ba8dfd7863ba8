// Package spl estimates the on-axis sound pressure a driver produces at a
// listening distance, at one frequency or over a standard sweep.
package spl

import (
	"Loudspeaker/internal/units"
	"math"
)

// ReferencePressure maps to 0 dB SPL, Pa.
const ReferencePressure = 2e-5

// StandardFrequencies is the 29-point sweep used by the basic SPL
// calculator, 16 Hz to 10 kHz.
var StandardFrequencies = [...]float64{
	16, 20, 25, 31.5, 40, 50, 63, 80, 100, 125, 160, 200, 250, 315, 400, 500,
	630, 800, 1000, 1250, 1600, 2000, 2500, 3150, 4000, 5000, 6300, 8000, 10000,
}

// ExtendedFrequencies is the 32-point sweep used by the advanced
// calculator, 16 Hz to 20 kHz.
var ExtendedFrequencies = [...]float64{
	16, 20, 25, 31.5, 40, 50, 63, 80, 100, 125, 160, 200, 250, 315, 400, 500,
	630, 800, 1000, 1250, 1600, 2000, 2500, 3150, 4000, 5000, 6300, 8000,
	10000, 12500, 16000, 20000,
}

// Params are the driver and measurement values in form units: radius in
// mm, mass in g, distance in m.
type Params struct {
	AirDensity      float64 `json:"airDensity"`
	EffectiveRadius float64 `json:"effectiveRadius"`
	Mms             float64 `json:"mms"`
	F0              float64 `json:"f0"`
	Re              float64 `json:"re"`
	MicDistance     float64 `json:"micDistance"`
	InputVoltage    float64 `json:"inputVoltage"`
	Rms             float64 `json:"rms"`
	Bl              float64 `json:"bl"`
	Frequency       float64 `json:"frequency"`
}

// Point is one sample of a frequency response.
type Point struct {
	Frequency float64 `json:"frequency"`
	Pressure  float64 `json:"pressure"`
	SPL       float64 `json:"spl"`
}

// Qts from the resistive branch: 2π·F0·Mms / (Bl²/Re + Rms), mms in g.
func Qts(f0, mms, bl, re, rms float64) float64 {
	mmsKg := units.GramsToKilograms(mms)
	return 2 * math.Pi * f0 * mmsKg / (bl*bl/re + rms)
}

// SoundPressure in Pa at p.Frequency. The caller guarantees a non-zero
// frequency and Qts.
func SoundPressure(p Params) float64 {
	r := units.MillimetersToMeters(p.EffectiveRadius)
	mmsKg := units.GramsToKilograms(p.Mms)
	sd := math.Pi * r * r
	qts := Qts(p.F0, p.Mms, p.Bl, p.Re, p.Rms)

	p0 := p.AirDensity * sd * sd * p.InputVoltage * p.Bl / (2 * p.MicDistance * mmsKg * p.Re)
	x := p.Frequency / p.F0
	xt := x - 1/x
	return p0 * x / math.Sqrt(1/(qts*qts)+xt*xt)
}

// ToDBSPL converts a pressure in Pa to dB SPL.
func ToDBSPL(pressure float64) float64 {
	return 20 * math.Log10(pressure/ReferencePressure)
}

// FrequencyResponse evaluates SoundPressure over StandardFrequencies;
// p.Frequency is ignored.
func FrequencyResponse(p Params) []Point {
	out := make([]Point, 0, len(StandardFrequencies))
	for _, f := range StandardFrequencies {
		p.Frequency = f
		pressure := SoundPressure(p)
		out = append(out, Point{Frequency: f, Pressure: pressure, SPL: ToDBSPL(pressure)})
	}
	return out
}
