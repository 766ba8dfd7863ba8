package amplitude

import (
	"math"
	"testing"
)

func ptr(v float64) *float64 { return &v }

func TestCalculate(t *testing.T) {
	r := Calculate(90, 1.2, 60, 100)
	a := 0.06
	want := 2 * math.Sqrt(2) * 2e-5 * math.Pow(10, 4.5) / (4 * math.Pi * math.Pi * 100 * 100 * 1.2 * a * a)
	if math.Abs(r.Meters-want) > 1e-15 {
		t.Errorf("Meters = %v, want %v", r.Meters, want)
	}
	if math.Abs(r.Millimeters-want*1000) > 1e-12 {
		t.Errorf("Millimeters = %v, want %v", r.Millimeters, want*1000)
	}
}

func TestAmplitudeFallsWithFrequency(t *testing.T) {
	lo := Calculate(90, 1.2, 60, 50)
	hi := Calculate(90, 1.2, 60, 100)
	if math.Abs(lo.Meters/hi.Meters-4) > 1e-9 {
		t.Errorf("halving frequency should quadruple excursion, ratio %v", lo.Meters/hi.Meters)
	}
}

func TestEvaluate(t *testing.T) {
	if res, _ := Evaluate(Input{SPL: ptr(90), AirDensity: ptr(1.2), EffectiveRadius: ptr(60)}); res != nil {
		t.Error("missing frequency must withhold")
	}
	res, issues := Evaluate(Input{SPL: ptr(0), AirDensity: ptr(1.2), EffectiveRadius: ptr(60), Frequency: ptr(100)})
	if res == nil || len(issues) != 0 {
		t.Errorf("0 dB is a valid level: %+v %v", res, issues)
	}
}
