// Package registry evaluates any calculator by name from raw form fields.
// It backs the report, export, batch and CLI entry points.
package registry

import (
	"Loudspeaker/internal/calc/amplitude"
	"Loudspeaker/internal/calc/box"
	"Loudspeaker/internal/calc/crossover"
	"Loudspeaker/internal/calc/reactive"
	"Loudspeaker/internal/calc/resonance"
	"Loudspeaker/internal/calc/spl"
	"Loudspeaker/internal/calc/thinfilm"
	"Loudspeaker/internal/calc/tsparams"
	"Loudspeaker/internal/calc/xmax"
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrUnknownCalculator = errors.New("registry: unknown calculator")

type Calculator struct {
	Name string
	// Title is an i18n catalog key.
	Title    string
	evaluate func(*reactive.Form) (any, reactive.Issues)
}

var calculators = map[string]Calculator{
	"ts": {"ts", "Thiele-Small parameters", func(f *reactive.Form) (any, reactive.Issues) {
		return tsparams.Evaluate(tsparams.FromForm(f))
	}},
	"spl": {"spl", "Sound pressure level", func(f *reactive.Form) (any, reactive.Issues) {
		return spl.EvaluateBasic(spl.BasicFromForm(f))
	}},
	"spl/advanced": {"spl/advanced", "Advanced SPL", func(f *reactive.Form) (any, reactive.Issues) {
		return spl.EvaluateAdvanced(spl.AdvancedFromForm(f))
	}},
	"amplitude": {"amplitude", "Amplitude", func(f *reactive.Form) (any, reactive.Issues) {
		return amplitude.Evaluate(amplitude.FromForm(f))
	}},
	"crossover": {"crossover", "Crossover network", func(f *reactive.Form) (any, reactive.Issues) {
		return crossover.Evaluate(crossover.FromForm(f))
	}},
	"box": {"box", "Box volume", func(f *reactive.Form) (any, reactive.Issues) {
		return box.Evaluate(box.FromForm(f))
	}},
	"thinfilm": {"thinfilm", "Thin film resistance", func(f *reactive.Form) (any, reactive.Issues) {
		return thinfilm.Evaluate(thinfilm.FromForm(f))
	}},
	"xmax": {"xmax", "Xmax", func(f *reactive.Form) (any, reactive.Issues) {
		return xmax.Evaluate(xmax.FromForm(f))
	}},
	"resonance": {"resonance", "Open tube resonance", func(f *reactive.Form) (any, reactive.Issues) {
		return resonance.Evaluate(resonance.FromForm(f))
	}},
}

// Lookup accepts "spl-advanced" as an alias of "spl/advanced".
func Lookup(name string) (Calculator, error) {
	c, ok := calculators[strings.ReplaceAll(strings.ToLower(name), "-", "/")]
	if !ok {
		return Calculator{}, fmt.Errorf("%w: %q", ErrUnknownCalculator, name)
	}
	return c, nil
}

func Names() []string {
	out := make([]string, 0, len(calculators))
	for n := range calculators {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Evaluate runs one pass over fields. Parse issues take precedence over
// evaluation issues for the same key.
func (c Calculator) Evaluate(fields reactive.Fields) (any, reactive.Issues) {
	form := reactive.NewForm(fields)
	res, issues := c.evaluate(form)
	form.Issues.Merge(issues)
	return res, form.Issues
}

func Evaluate(name string, fields reactive.Fields) (any, reactive.Issues, error) {
	c, err := Lookup(name)
	if err != nil {
		return nil, nil, err
	}
	res, issues := c.Evaluate(fields)
	return res, issues, nil
}
