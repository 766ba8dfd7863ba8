package export

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Loudspeaker/internal/calc/crossover"
	"Loudspeaker/internal/calc/reactive"

	"github.com/xuri/excelize/v2"
)

func splInputs() reactive.Fields {
	return reactive.Fields{
		"airDensity": "1.2", "effectiveRadius": "50", "mms": "10", "f0": "60", "re": "6",
		"micDistance": "1", "inputVoltage": "2.83", "rms": "1", "bl": "7", "kms": "5",
	}
}

func TestWorkbookSPL(t *testing.T) {
	f, err := Workbook(Input{Calculator: "spl", Inputs: splInputs()})
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := f.GetRows("Response")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 30 || rows[0][0] != "Frequency (Hz)" || rows[1][0] != "16" {
		t.Errorf("rows = %d, first = %v", len(rows), rows[:2])
	}
	inputs, _ := f.GetRows("Inputs")
	if len(inputs) != len(splInputs())+1 {
		t.Errorf("inputs rows = %d", len(inputs))
	}
}

func TestWorkbookAdvanced(t *testing.T) {
	f, err := Workbook(Input{Calculator: "spl-advanced", Inputs: splInputs()})
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, _ := f.GetRows("Response")
	if len(rows) != 33 || len(rows[0]) != 4 {
		t.Errorf("rows = %d", len(rows))
	}
}

func TestWorkbookCrossover(t *testing.T) {
	f, err := Workbook(Input{Calculator: "crossover", Inputs: reactive.Fields{
		"wooferImpedance": "8", "tweeterImpedance": "6", "cutoffFrequency": "2500",
	}})
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, _ := f.GetRows("Crossover")
	want := 1
	for _, c := range crossover.Cells() {
		want += len(c.Woofer.Capacitors) + len(c.Woofer.Inductors) + len(c.Tweeter.Capacitors) + len(c.Tweeter.Inductors)
	}
	if len(rows) != want {
		t.Errorf("rows = %d, want %d", len(rows), want)
	}
}

func TestWorkbookErrors(t *testing.T) {
	if _, err := Workbook(Input{Calculator: "xmax"}); !errors.Is(err, ErrNotExportable) {
		t.Errorf("xmax err = %v", err)
	}
	if _, err := Workbook(Input{Calculator: "crossover"}); !errors.Is(err, ErrNoResults) {
		t.Errorf("empty crossover err = %v", err)
	}
	if _, err := Workbook(Input{Calculator: "spl"}); !errors.Is(err, ErrNoResults) {
		t.Errorf("empty spl err = %v", err)
	}
}

func TestHandlerXLSX(t *testing.T) {
	body := `{"calculator":"crossover","inputs":{"wooferImpedance":8,"tweeterImpedance":8,"cutoffFrequency":3000}}`
	rec := httptest.NewRecorder()
	(&Handler{}).XLSX(rec, httptest.NewRequest(http.MethodPost, "/api/export/xlsx", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if f.GetSheetName(0) != "Crossover" {
		t.Errorf("first sheet = %q", f.GetSheetName(0))
	}
}
