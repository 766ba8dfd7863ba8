package resonance

import (
	"Loudspeaker/internal/calc/reactive"
	"Loudspeaker/internal/units"
	"Loudspeaker/internal/validation"
)

// Result holds the first three resonances of a tube open at both ends, Hz.
type Result struct {
	Fundamental    float64 `json:"fundamental"`
	SecondHarmonic float64 `json:"secondHarmonic"`
	ThirdHarmonic  float64 `json:"thirdHarmonic"`
}

// OpenTube computes f_n = n·c/(2L) for a tube tubeLength mm long.
func OpenTube(soundSpeed, tubeLength float64) Result {
	l := units.MillimetersToMeters(tubeLength)
	f := func(n float64) float64 { return n * soundSpeed / (2 * l) }
	return Result{Fundamental: f(1), SecondHarmonic: f(2), ThirdHarmonic: f(3)}
}

type Input struct {
	SoundSpeed *float64
	TubeLength *float64
}

func FromForm(f *reactive.Form) Input {
	return Input{
		SoundSpeed: f.Param(validation.SoundSpeed),
		TubeLength: f.Param(validation.TubeLength),
	}
}

func Evaluate(in Input) (*Result, reactive.Issues) {
	if !reactive.Positive(in.SoundSpeed, in.TubeLength) {
		return nil, reactive.Issues{}
	}
	res := OpenTube(*in.SoundSpeed, *in.TubeLength)
	return &res, reactive.Issues{}
}
