package recommend

import (
	"errors"
	"math"
)

var ErrInvalidInput = errors.New("recommend: impedance must be positive")

// LPadInput attenuates the louder driver, normally the tweeter, by
// AttenuationDB into a load of Impedance ohms.
type LPadInput struct {
	Impedance     float64 `json:"impedance"`
	AttenuationDB float64 `json:"attenuationDB"`
}

type LPadResult struct {
	SeriesOhms   float64  `json:"seriesOhms"`
	ParallelOhms *float64 `json:"parallelOhms"`
	Notes        string   `json:"notes"`
}

// LPad sizes a constant-impedance L-pad. With no attenuation the series
// resistor is zero and the parallel leg is omitted.
func LPad(in LPadInput) (LPadResult, error) {
	if in.Impedance <= 0 || math.IsNaN(in.AttenuationDB) || math.IsInf(in.AttenuationDB, 0) {
		return LPadResult{}, ErrInvalidInput
	}
	if in.AttenuationDB <= 0 {
		return LPadResult{Notes: "No attenuation required."}, nil
	}
	a := math.Pow(10, -in.AttenuationDB/20)
	rp := in.Impedance * a / (1 - a)
	return LPadResult{
		SeriesOhms:   in.Impedance * (1 - a),
		ParallelOhms: &rp,
		Notes:        "Series resistor ahead of a parallel resistor across the driver.",
	}, nil
}

// LPadForCrossover pads the tweeter down to the woofer's level.
func LPadForCrossover(tweeterImpedance, levelDifferenceDB float64) (LPadResult, error) {
	return LPad(LPadInput{Impedance: tweeterImpedance, AttenuationDB: -levelDifferenceDB})
}
