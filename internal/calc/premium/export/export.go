// Package export writes calculator results as XLSX workbooks: frequency
// responses as point tables and crossover networks as a component list.
package export

import (
	"Loudspeaker/internal/calc/crossover"
	"Loudspeaker/internal/calc/reactive"
	"Loudspeaker/internal/calc/registry"
	"Loudspeaker/internal/calc/spl"
	"errors"
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"
)

var (
	ErrNotExportable = errors.New("export: calculator has no table output")
	ErrNoResults     = errors.New("export: inputs are incomplete")
)

type Input struct {
	Calculator string          `json:"calculator"`
	Inputs     reactive.Fields `json:"inputs"`
}

// Workbook evaluates in and lays out the result on a data sheet, with the
// inputs on a second sheet.
func Workbook(in Input) (*excelize.File, error) {
	calc, err := registry.Lookup(in.Calculator)
	if err != nil {
		return nil, err
	}
	res, _ := calc.Evaluate(in.Inputs)

	var header []any
	var rows [][]any
	switch r := res.(type) {
	case spl.BasicResult:
		header = []any{"Frequency (Hz)", "Pressure (Pa)", "SPL (dB)"}
		for _, p := range r.FrequencyResponse {
			rows = append(rows, []any{p.Frequency, p.Pressure, p.SPL})
		}
	case spl.AdvancedEvaluation:
		header = []any{"Frequency (Hz)", "f/F0", "Pressure (Pa)", "SPL (dB)"}
		for _, p := range r.FrequencyResponse {
			rows = append(rows, []any{p.Frequency, p.XRatio, p.Pressure, p.SPL})
		}
	case *crossover.Result:
		if r == nil {
			return nil, ErrNoResults
		}
		header = []any{"Filter", "Order", "Driver", "Component", "Position", "Value", "Unit"}
		for _, n := range r.Networks {
			rows = append(rows, componentRows(n, "Woofer", n.Woofer)...)
			rows = append(rows, componentRows(n, "Tweeter", n.Tweeter)...)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotExportable, calc.Name)
	}
	if len(rows) == 0 {
		return nil, ErrNoResults
	}

	f := excelize.NewFile()
	data := "Response"
	if calc.Name == "crossover" {
		data = "Crossover"
	}
	if err := f.SetSheetName(f.GetSheetName(0), data); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeRows(f, data, append([][]any{header}, rows...)); err != nil {
		f.Close()
		return nil, err
	}

	if _, err := f.NewSheet("Inputs"); err != nil {
		f.Close()
		return nil, err
	}
	keys := make([]string, 0, len(in.Inputs))
	for k := range in.Inputs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	inputs := [][]any{{"Parameter", "Value"}}
	for _, k := range keys {
		inputs = append(inputs, []any{k, in.Inputs[k]})
	}
	if err := writeRows(f, "Inputs", inputs); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func componentRows(n crossover.Network, driver string, c crossover.Components) [][]any {
	var rows [][]any
	for i, v := range c.Capacitors {
		rows = append(rows, []any{string(n.Type), n.Order.String(), driver, "C", i + 1, v, "µF"})
	}
	for i, v := range c.Inductors {
		rows = append(rows, []any{string(n.Type), n.Order.String(), driver, "L", i + 1, v, "mH"})
	}
	return rows
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
