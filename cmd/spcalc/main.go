// Command spcalc evaluates one calculator from the command line, or every
// driver in an XLSX sheet.
//
//	spcalc -calc ts -in mms=10,kms=5,bl=7,re=6,rms=1
//	spcalc -calc crossover -in wooferImpedance=8,tweeterImpedance=6,cutoffFrequency=2500 -out xo.xlsx
//	spcalc -xlsx drivers.xlsx
package main

import (
	"Loudspeaker/internal/calc/premium/batch"
	"Loudspeaker/internal/calc/premium/export"
	"Loudspeaker/internal/calc/premium/importer"
	"Loudspeaker/internal/calc/reactive"
	"Loudspeaker/internal/calc/registry"
	"Loudspeaker/internal/i18n"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("spcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	calcName := fs.String("calc", "", "calculator: "+strings.Join(registry.Names(), ", "))
	in := fs.String("in", "", "comma-separated inputs, e.g. mms=10,kms=5")
	xlsx := fs.String("xlsx", "", "path to a driver sheet to evaluate")
	out := fs.String("out", "", "write the result tables to this XLSX file (spl, spl/advanced, crossover)")
	lang := fs.String("lang", "en", "message language: en or ja")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	p := i18n.Printer(*lang)
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")

	if *xlsx != "" {
		f, err := os.Open(*xlsx)
		if err != nil {
			fmt.Fprintf(stderr, "error reading driver sheet: %v\n", err)
			return 1
		}
		defer f.Close()
		drivers, err := importer.ReadDrivers(f)
		if err != nil {
			fmt.Fprintf(stderr, "error parsing driver sheet: %v\n", err)
			return 1
		}
		res, err := batch.Calculate(batch.Input{Items: drivers}, p)
		if err != nil {
			fmt.Fprintf(stderr, "calculation error: %v\n", err)
			return 1
		}
		enc.Encode(res)
		return 0
	}

	if *calcName == "" {
		fmt.Fprintln(stderr, "error: -calc or -xlsx is required")
		fs.Usage()
		return 2
	}
	fields, err := parseFields(*in)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	res, issues, err := registry.Evaluate(*calcName, fields)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	enc.Encode(reactive.Response{Results: res, Errors: issues.Messages(p)})

	if *out != "" {
		wb, err := export.Workbook(export.Input{Calculator: *calcName, Inputs: fields})
		if err != nil {
			fmt.Fprintf(stderr, "export error: %v\n", err)
			return 1
		}
		defer wb.Close()
		if err := wb.SaveAs(*out); err != nil {
			fmt.Fprintf(stderr, "error writing %s: %v\n", *out, err)
			return 1
		}
	}
	return 0
}

// parseFields reads "k=v,k=v". Values are kept as text.
func parseFields(s string) (reactive.Fields, error) {
	fields := reactive.Fields{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k, v, ok := strings.Cut(part, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("input %q is not key=value", part)
		}
		fields[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return fields, nil
}
