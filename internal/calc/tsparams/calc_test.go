package tsparams

import (
	"Loudspeaker/internal/validation"
	"errors"
	"math"
	"testing"
)

func ptr(v float64) *float64 { return &v }

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestF0(t *testing.T) {
	want := math.Sqrt(5000/0.01) / (2 * math.Pi)
	if got := F0(10, 5); !near(got, want, 1e-9) {
		t.Errorf("F0(10, 5) = %v, want %v", got, want)
	}
	if got := F0(10, 5); !near(got, 112.54, 0.01) {
		t.Errorf("F0(10, 5) = %v, want ~112.54 Hz", got)
	}
}

func TestVas(t *testing.T) {
	r := 0.05
	area := math.Pi * r * r
	want := 1.2 * 346.1 * 346.1 * area * area / 1000 * 1000
	if got := Vas(1.2, 50, 1); !near(got, want, 1e-9) {
		t.Errorf("Vas(1.2, 50, 1) = %v, want %v", got, want)
	}
}

func TestQesQmsQts(t *testing.T) {
	qes := Qes(50, 6, 20, 8)
	if want := 2 * math.Pi * 50 * 6 * 0.02 / 64; !near(qes, want, 1e-12) {
		t.Errorf("Qes = %v, want %v", qes, want)
	}
	qms := Qms(50, 0.02, 1.5)
	if want := 2 * math.Pi * 50 * 0.02 / 1.5; !near(qms, want, 1e-12) {
		t.Errorf("Qms = %v, want %v", qms, want)
	}
	qts := Qts(qes, qms)
	if want := qes * qms / (qes + qms); !near(qts, want, 1e-12) {
		t.Errorf("Qts = %v, want %v", qts, want)
	}
	if qts >= qes || qts >= qms {
		t.Errorf("Qts %v must be below both Qes %v and Qms %v", qts, qes, qms)
	}
}

func TestAirLoadMass(t *testing.T) {
	al := AirLoadMass(100, 1.2)
	if want := 8.0 / 3.0 * 1.2 * 0.001 * 1000; !near(al.Free, want, 1e-12) {
		t.Errorf("Free = %v, want %v", al.Free, want)
	}
	if !near(al.Baffle, 2*al.Free, 1e-12) {
		t.Errorf("Baffle = %v, want twice Free %v", al.Baffle, al.Free)
	}
}

func TestInputVoltage(t *testing.T) {
	if got := InputVoltage(8, 50); !near(got, 20, 1e-9) {
		t.Errorf("InputVoltage(8, 50) = %v, want 20", got)
	}
}

func TestEvaluateFull(t *testing.T) {
	in := Input{
		Mms: ptr(20), Kms: ptr(1.5), Bl: ptr(8), Re: ptr(6), Rms: ptr(1.2),
		EffectiveRadius: ptr(60), AirDensity: ptr(1.2), Power: ptr(1),
	}
	res, issues := Evaluate(in)
	if len(issues) != 0 {
		t.Fatalf("issues = %v", issues)
	}
	for name, v := range map[string]*float64{
		"f0": res.F0, "vas": res.Vas, "qes": res.Qes, "qms": res.Qms, "qts": res.Qts, "inputVoltage": res.InputVoltage,
	} {
		if v == nil {
			t.Errorf("%s withheld", name)
		}
	}
	if res.AirLoadMass == nil {
		t.Fatal("air load mass withheld")
	}
	if want := Qms(*res.F0, 0.02, 1.2); !near(*res.Qms, want, 1e-12) {
		t.Errorf("Qms = %v, want %v (mass in kg)", *res.Qms, want)
	}
}

func TestEvaluatePartial(t *testing.T) {
	res, issues := Evaluate(Input{Mms: ptr(20), Kms: ptr(1.5), Re: ptr(6)})
	if res.F0 == nil {
		t.Error("F0 should be available")
	}
	if res.Qes != nil || res.Qms != nil || res.Qts != nil || res.Vas != nil {
		t.Error("outputs with missing inputs must be withheld")
	}
	if res.InputVoltage != nil {
		t.Error("input voltage needs power")
	}
	if len(issues) != 0 {
		t.Errorf("missing inputs are not issues: %v", issues)
	}
}

func TestEvaluateQmsDivisionByZero(t *testing.T) {
	res, issues := Evaluate(Input{Mms: ptr(20), Kms: ptr(1.5), Bl: ptr(8), Re: ptr(6), Rms: ptr(0)})
	if res.Qms != nil || res.Qts != nil {
		t.Error("Qms and Qts must be withheld")
	}
	if !errors.Is(issues["qms"], validation.ErrDivisionByZero) {
		t.Errorf("qms issue = %v", issues["qms"])
	}
	if res.Qes == nil {
		t.Error("Qes is independent of Rms")
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	in := Input{Mms: ptr(20), Kms: ptr(1.5), Bl: ptr(8), Re: ptr(6), Rms: ptr(1.2)}
	a, _ := Evaluate(in)
	b, _ := Evaluate(in)
	if *a.Qts != *b.Qts || *a.F0 != *b.F0 {
		t.Error("re-evaluation must give identical outputs")
	}
}
