// Package tsparams derives Thiele-Small parameters from a driver's
// mechanical and electrical measurements.
//
// Forms enter mass in g, stiffness in N/mm and radius in mm; the formulas
// convert to SI themselves.
package tsparams

import (
	"Loudspeaker/internal/units"
	"math"
)

// SpeedOfSound used by the TS and SPL formulas, m/s. The box-volume
// calculator uses 343 m/s.
const SpeedOfSound = 346.1

// F0 is the free-air resonance in Hz for mms in g and kms in N/mm.
func F0(mms, kms float64) float64 {
	mmsKg := units.GramsToKilograms(mms)
	kmsNm := units.NewtonPerMmToNewtonPerM(kms)
	return math.Sqrt(kmsNm/mmsKg) / (2 * math.Pi)
}

// Vas is the equivalent compliance volume in liters.
func Vas(airDensity, effectiveRadius, kms float64) float64 {
	r := units.MillimetersToMeters(effectiveRadius)
	kmsNm := units.NewtonPerMmToNewtonPerM(kms)
	area := math.Pi * r * r
	return airDensity * SpeedOfSound * SpeedOfSound * area * area / kmsNm * 1000
}

// Qes for mms in g.
func Qes(f0, re, mms, bl float64) float64 {
	return 2 * math.Pi * f0 * re * units.GramsToKilograms(mms) / (bl * bl)
}

// Qms for mms in kg.
func Qms(f0, mmsKg, rms float64) float64 {
	return 2 * math.Pi * f0 * mmsKg / rms
}

func Qts(qes, qms float64) float64 {
	return qes * qms / (qes + qms)
}

// AirLoad is the air mass moving with the diaphragm, in g.
type AirLoad struct {
	Free   float64 `json:"airLoadMassFree"`
	Baffle float64 `json:"airLoadMassBaffle"`
}

func AirLoadMass(effectiveRadius, airDensity float64) AirLoad {
	r := units.MillimetersToMeters(effectiveRadius)
	r3 := r * r * r
	return AirLoad{
		Free:   8.0 / 3.0 * airDensity * r3 * 1000,
		Baffle: 16.0 / 3.0 * airDensity * r3 * 1000,
	}
}

// InputVoltage is the voltage that dissipates power watts in re ohms.
func InputVoltage(re, power float64) float64 {
	return math.Sqrt(re * power)
}
