package batch

import (
	"Loudspeaker/internal/calc/reactive"
	"Loudspeaker/internal/calc/spl"
	"Loudspeaker/internal/calc/tsparams"
	"Loudspeaker/internal/validation"
	"errors"
	"strings"

	"golang.org/x/text/message"
)

var ErrNoItems = errors.New("batch: no items")

// Driver is one named parameter set as the user typed it.
type Driver struct {
	Name   string          `json:"name"`
	Fields reactive.Fields `json:"fields"`
}

type Item struct {
	Name   string            `json:"name"`
	TS     tsparams.Result   `json:"ts"`
	SPL    spl.BasicResult   `json:"spl"`
	Errors map[string]string `json:"errors,omitempty"`
}

type Input struct {
	Items []Driver `json:"items"`
}

type Result struct {
	Results []Item `json:"results"`
}

// EvaluateDriver runs the TS evaluation and then the basic SPL evaluation.
// A derived F0 is fed to SPL when the driver does not state one; it is not
// held to the range of a typed f0.
func EvaluateDriver(d Driver, p *message.Printer) Item {
	form := reactive.NewForm(d.Fields)
	ts, issues := tsparams.Evaluate(tsparams.FromForm(form))
	form.Issues.Merge(issues)

	in := spl.BasicFromForm(form)
	if strings.TrimSpace(form.Raw(validation.F0)) == "" {
		in.F0 = ts.F0
	}
	sp, issues := spl.EvaluateBasic(in)
	form.Issues.Merge(issues)

	return Item{Name: d.Name, TS: ts, SPL: sp, Errors: form.Issues.Messages(p)}
}

func Calculate(in Input, p *message.Printer) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, ErrNoItems
	}
	out := Result{Results: make([]Item, 0, len(in.Items))}
	for _, d := range in.Items {
		out.Results = append(out.Results, EvaluateDriver(d, p))
	}
	return out, nil
}
