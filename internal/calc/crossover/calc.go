// Package crossover sizes the capacitors and inductors of passive two-way
// crossover networks from tabulated filter coefficients.
package crossover

import (
	"Loudspeaker/internal/calc/reactive"
	"errors"
)

var (
	ErrUnknownFilter = errors.New("crossover: no coefficients for filter")
	ErrUnknownOrder  = errors.New("crossover: unknown filter order")
)

// Capacitor in μF for coefficient k, impedance z Ω and cutoff fc Hz.
func Capacitor(k, z, fc float64) float64 {
	return k / (z * fc) * 1e6
}

// Inductor in mH for coefficient k, impedance z Ω and cutoff fc Hz.
func Inductor(k, z, fc float64) float64 {
	return k * z / fc * 1e3
}

// Components are capacitor values in μF and inductor values in mH.
type Components struct {
	Capacitors []float64 `json:"capacitors"`
	Inductors  []float64 `json:"inductors"`
}

type Network struct {
	Type    FilterType `json:"filterType"`
	Order   Order      `json:"order"`
	Woofer  Components `json:"woofer"`
	Tweeter Components `json:"tweeter"`
}

type Input struct {
	WooferImpedance  float64 `json:"wooferImpedance"`
	TweeterImpedance float64 `json:"tweeterImpedance"`
	CutoffFrequency  float64 `json:"cutoffFrequency"`
	WooferSPL        float64 `json:"wooferSPL"`
	TweeterSPL       float64 `json:"tweeterSPL"`
}

func (c Components) finite() bool {
	for _, vs := range [][]float64{c.Capacitors, c.Inductors} {
		for _, v := range vs {
			if reactive.Of(v) == nil {
				return false
			}
		}
	}
	return true
}

func components(c Coefficients, z, fc float64) Components {
	out := Components{
		Capacitors: make([]float64, len(c.Capacitors)),
		Inductors:  make([]float64, len(c.Inductors)),
	}
	for i, k := range c.Capacitors {
		out.Capacitors[i] = Capacitor(k, z, fc)
	}
	for i, k := range c.Inductors {
		out.Inductors[i] = Inductor(k, z, fc)
	}
	return out
}

// Design sizes a single (type, order) network.
func Design(cell Cell, in Input) Network {
	return Network{
		Type:    cell.Type,
		Order:   cell.Order,
		Woofer:  components(cell.Woofer, in.WooferImpedance, in.CutoffFrequency),
		Tweeter: components(cell.Tweeter, in.TweeterImpedance, in.CutoffFrequency),
	}
}

// CalculateNetwork sizes every network in table, in table order.
func CalculateNetwork(in Input) []Network {
	out := make([]Network, 0, len(table))
	for _, cell := range table {
		out = append(out, Design(cell, in))
	}
	return out
}

type Result struct {
	Networks   []Network `json:"networks"`
	WooferSPL  float64   `json:"wooferSPL"`
	TweeterSPL float64   `json:"tweeterSPL"`
	// LevelDifferenceDB is how much louder the woofer is than the tweeter.
	LevelDifferenceDB float64 `json:"levelDifferenceDB"`
}

type FormInput struct {
	WooferImpedance  *float64
	TweeterImpedance *float64
	CutoffFrequency  *float64
	WooferSPL        *float64
	TweeterSPL       *float64
}

func FromForm(f *reactive.Form) FormInput {
	return FormInput{
		WooferImpedance:  f.Number("wooferImpedance"),
		TweeterImpedance: f.Number("tweeterImpedance"),
		CutoffFrequency:  f.Number("cutoffFrequency"),
		WooferSPL:        f.Number("wooferSPL"),
		TweeterSPL:       f.Number("tweeterSPL"),
	}
}

// Evaluate sizes all networks once both impedances and the cutoff are
// positive. Driver levels are optional and default to 0 dB.
func Evaluate(in FormInput) (*Result, reactive.Issues) {
	issues := reactive.Issues{}
	if !reactive.Positive(in.WooferImpedance, in.TweeterImpedance, in.CutoffFrequency) {
		return nil, issues
	}
	ci := Input{
		WooferImpedance:  *in.WooferImpedance,
		TweeterImpedance: *in.TweeterImpedance,
		CutoffFrequency:  *in.CutoffFrequency,
	}
	if in.WooferSPL != nil {
		ci.WooferSPL = *in.WooferSPL
	}
	if in.TweeterSPL != nil {
		ci.TweeterSPL = *in.TweeterSPL
	}
	nets := CalculateNetwork(ci)
	for _, n := range nets {
		if !n.Woofer.finite() || !n.Tweeter.finite() {
			issues.Add("crossover", reactive.ErrCalculation)
			return nil, issues
		}
	}
	return &Result{
		Networks:          nets,
		WooferSPL:         ci.WooferSPL,
		TweeterSPL:        ci.TweeterSPL,
		LevelDifferenceDB: ci.WooferSPL - ci.TweeterSPL,
	}, issues
}
