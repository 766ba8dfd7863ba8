package report

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"Loudspeaker/internal/calc/reactive"
	"Loudspeaker/internal/calc/registry"
)

func TestBuild(t *testing.T) {
	cases := []Input{
		{Calculator: "ts", Inputs: reactive.Fields{"mms": "10", "kms": "5", "bl": "7", "re": "6", "rms": "abc"}},
		{Calculator: "spl", Project: "Bookshelf", Inputs: reactive.Fields{
			"airDensity": "1.2", "effectiveRadius": "50", "mms": "10", "f0": "60", "re": "6",
			"micDistance": "1", "inputVoltage": "2.83", "rms": "1", "bl": "7",
		}},
		{Calculator: "crossover", Inputs: reactive.Fields{"wooferImpedance": "8", "tweeterImpedance": "6", "cutoffFrequency": "2500"}},
		{Calculator: "box", Notes: "MDF 18 mm", Inputs: reactive.Fields{"width": "30", "height": "45", "depth": "25", "panelThickness": "1.8"}},
	}
	for _, in := range cases {
		t.Run(in.Calculator, func(t *testing.T) {
			pdf, err := Build(in, Options{Now: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)})
			if err != nil {
				t.Fatal(err)
			}
			var buf bytes.Buffer
			if err := pdf.Output(&buf); err != nil {
				t.Fatal(err)
			}
			if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
				t.Error("output is not a PDF")
			}
		})
	}
}

func TestBuildUnknownCalculator(t *testing.T) {
	if _, err := Build(Input{Calculator: "beam"}, Options{}); !errors.Is(err, registry.ErrUnknownCalculator) {
		t.Errorf("err = %v", err)
	}
}

func TestHandlerGenerate(t *testing.T) {
	h := &Handler{Lang: "en"}
	body := `{"calculator":"xmax","inputs":{"vcWindingWidth":"12","plateThickness":"6"}}`
	rec := httptest.NewRecorder()
	h.Generate(rec, httptest.NewRequest(http.MethodPost, "/api/report/pdf", strings.NewReader(body)))
	if rec.Code != http.StatusOK || rec.Header().Get("Content-Type") != "application/pdf" {
		t.Errorf("status = %d, type = %q", rec.Code, rec.Header().Get("Content-Type"))
	}

	rec = httptest.NewRecorder()
	h.Generate(rec, httptest.NewRequest(http.MethodPost, "/api/report/pdf", strings.NewReader(`{"calculator":"slab"}`)))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown calculator status = %d", rec.Code)
	}
}
