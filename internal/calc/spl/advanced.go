package spl

import "math"

// AdvancedParams are in SI: radius in m and mass in kg.
type AdvancedParams struct {
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

// AdvancedResult exposes the coupling factor (Sec2) and the normalized
// response shape (Sec3) that make up the level.
type AdvancedResult struct {
	SPL  float64 `json:"spl"`
	Qts  float64 `json:"qts"`
	Sec2 float64 `json:"sec2"`
	Sec3 float64 `json:"sec3"`
}

type AdvancedPoint struct {
	Frequency float64 `json:"frequency"`
	XRatio    float64 `json:"xRatio"`
	Pressure  float64 `json:"pressure"`
	SPL       float64 `json:"spl"`
}

func AdvancedSPL(p AdvancedParams) AdvancedResult {
	qts := 2 * math.Pi * p.F0 * p.Mms / (p.Bl*p.Bl/p.Re + p.Rms)
	sec2 := p.AirDensity * p.EffectiveRadius * p.EffectiveRadius * p.InputVoltage * p.Bl /
		(2 * p.MicDistance * p.Mms * p.Re)

	x := p.Frequency / p.F0
	d := x - p.F0/p.Frequency
	sec3 := x / math.Sqrt(1/(qts*qts)+d*d)

	return AdvancedResult{
		SPL:  20 * math.Log10(sec2*sec3/ReferencePressure),
		Qts:  qts,
		Sec2: sec2,
		Sec3: sec3,
	}
}

// AdvancedFrequencyResponse evaluates AdvancedSPL over ExtendedFrequencies;
// p.Frequency is ignored.
func AdvancedFrequencyResponse(p AdvancedParams) []AdvancedPoint {
	out := make([]AdvancedPoint, 0, len(ExtendedFrequencies))
	for _, f := range ExtendedFrequencies {
		p.Frequency = f
		r := AdvancedSPL(p)
		out = append(out, AdvancedPoint{
			Frequency: f,
			XRatio:    f / p.F0,
			Pressure:  ReferencePressure * math.Pow(10, r.SPL/20),
			SPL:       r.SPL,
		})
	}
	return out
}
