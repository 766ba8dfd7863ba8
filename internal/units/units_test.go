package units

import (
	"math"
	"testing"
)

func relClose(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= 1e-10*math.Max(math.Abs(a), math.Abs(b))
}

func TestMassRoundTrip(t *testing.T) {
	for _, x := range []float64{0, 1, -3.5, 0.001, 12.34, 1e9, -1e-9} {
		if got := KilogramsToGrams(GramsToKilograms(x)); !relClose(got, x) {
			t.Errorf("KilogramsToGrams(GramsToKilograms(%g)) = %g", x, got)
		}
	}
}

func TestLengthRoundTrip(t *testing.T) {
	for _, x := range []float64{0, 1, -3.5, 0.001, 12.34, 1e9, -1e-9} {
		if got := MetersToMillimeters(MillimetersToMeters(x)); !relClose(got, x) {
			t.Errorf("MetersToMillimeters(MillimetersToMeters(%g)) = %g", x, got)
		}
	}
}

func TestResistivityRoundTrip(t *testing.T) {
	for _, x := range []float64{1.6, 1.7, 3352.8} {
		if got := OhmMetersToResistivity(ResistivityToOhmMeters(x)); !relClose(got, x) {
			t.Errorf("resistivity round trip of %g = %g", x, got)
		}
	}
}

func TestScalars(t *testing.T) {
	if got := GramsToKilograms(10); got != 0.01 {
		t.Errorf("GramsToKilograms(10) = %g, want 0.01", got)
	}
	if got := CentimetersToMeters(343); got != 3.43 {
		t.Errorf("CentimetersToMeters(343) = %g, want 3.43", got)
	}
	if got := NewtonPerMmToNewtonPerM(5); got != 5000 {
		t.Errorf("NewtonPerMmToNewtonPerM(5) = %g, want 5000", got)
	}
}

func FuzzMassRoundTrip(f *testing.F) {
	f.Add(1.0)
	f.Add(0.0125)
	f.Fuzz(func(t *testing.T, x float64) {
		if math.IsNaN(x) || math.IsInf(x, 0) || math.Abs(x) > 1e300 || (x != 0 && math.Abs(x) < 1e-290) {
			return
		}
		if got := KilogramsToGrams(GramsToKilograms(x)); !relClose(got, x) {
			t.Errorf("round trip of %g = %g", x, got)
		}
	})
}
