package thinfilm

import (
	"errors"
	"math"
	"testing"

	"Loudspeaker/internal/validation"
)

func near(a, b float64) bool { return math.Abs(a-b) <= 1e-9*math.Max(1, math.Abs(b)) }

func ptr(v float64) *float64 { return &v }

func TestSolveModesAreConsistent(t *testing.T) {
	base := Trace{VolumeResistivity: 1.7e-8, Width: 1e-4, Thickness: 35e-6, Length: 0.05}
	base.Resistance = Resistance(base.VolumeResistivity, base.Length, base.Width, base.Thickness)

	for _, m := range Modes {
		got, err := Solve(m, base)
		if err != nil {
			t.Fatalf("Solve(%s): %v", m, err)
		}
		if !near(got.Resistance, base.Resistance) || !near(got.Width, base.Width) ||
			!near(got.Thickness, base.Thickness) || !near(got.Length, base.Length) ||
			!near(got.VolumeResistivity, base.VolumeResistivity) {
			t.Errorf("Solve(%s) = %+v, want %+v", m, got, base)
		}
	}
	if _, err := Solve("area", base); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("Solve(area) = %v, want ErrUnknownMode", err)
	}
}

func TestResistance(t *testing.T) {
	// 1 m of 1 mm² copper.
	if got := Resistance(1.7e-8, 1, 1e-3, 1e-3); !near(got, 0.017) {
		t.Errorf("Resistance = %v, want 0.017", got)
	}
}

func TestMaterials(t *testing.T) {
	if len(Materials) != 28 {
		t.Errorf("len(Materials) = %d, want 28", len(Materials))
	}
	for i := 1; i < len(Materials); i++ {
		if Materials[i].Resistivity < Materials[i-1].Resistivity {
			t.Errorf("%s out of order", Materials[i].Name)
		}
	}
	if m, ok := FindMaterial("銅"); !ok || m.Resistivity != 1.7 {
		t.Errorf("FindMaterial(銅) = %+v, %v", m, ok)
	}
	if _, ok := FindMaterial("Unobtainium"); ok {
		t.Error("FindMaterial(Unobtainium) found")
	}
}

func TestEvaluateUnits(t *testing.T) {
	// Copper, 1 mm × 1 mm × 1000 mm.
	res, issues := Evaluate(Input{
		Mode:              SolveResistance,
		VolumeResistivity: ptr(1.7),
		LineWidth:         ptr(1),
		LineThickness:     ptr(1),
		LineLength:        ptr(1000),
	})
	if res == nil || len(issues) != 0 {
		t.Fatalf("res = %v, issues = %v", res, issues)
	}
	if res.Formatted != "0.017000" {
		t.Errorf("Formatted = %q, want 0.017000", res.Formatted)
	}

	res, _ = Evaluate(Input{
		Mode:          SolveVolumeResistivity,
		Resistance:    ptr(0.017),
		LineWidth:     ptr(1),
		LineThickness: ptr(1),
		LineLength:    ptr(1000),
	})
	if res == nil || !near(res.Value, 1.7) {
		t.Errorf("resistivity = %v, want 1.7", res)
	}

	res, _ = Evaluate(Input{
		Mode:              SolveLineLength,
		Resistance:        ptr(0.017),
		VolumeResistivity: ptr(1.7),
		LineWidth:         ptr(1),
		LineThickness:     ptr(1),
	})
	if res == nil || !near(res.Value, 1000) {
		t.Errorf("length = %v, want 1000 mm", res)
	}
}

func TestEvaluateWithholds(t *testing.T) {
	res, issues := Evaluate(Input{Mode: SolveLineWidth, VolumeResistivity: ptr(1.7), LineLength: ptr(10)})
	if res != nil || len(issues) != 0 {
		t.Errorf("partial: res = %v, issues = %v", res, issues)
	}
	// The solved-for field itself is ignored.
	res, _ = Evaluate(Input{Mode: SolveResistance, Resistance: ptr(-1), VolumeResistivity: ptr(1.7), LineWidth: ptr(1), LineThickness: ptr(1), LineLength: ptr(1)})
	if res == nil {
		t.Error("resistance mode must not depend on the resistance field")
	}
	_, issues = Evaluate(Input{Mode: "area"})
	if !errors.Is(issues["mode"], validation.ErrUnknownMode) {
		t.Errorf("issues = %v", issues)
	}
}
