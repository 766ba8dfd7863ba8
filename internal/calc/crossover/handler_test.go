package crossover

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandlerCalc(t *testing.T) {
	h := &Handler{}
	body := `{"wooferImpedance":"8","tweeterImpedance":6,"cutoffFrequency":"2500","wooferSPL":""}`
	req := httptest.NewRequest(http.MethodPost, "/api/calc/crossover", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Calc(rec, req)

	var out struct {
		Results *Result           `json:"results"`
		Errors  map[string]string `json:"errors"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Results == nil || len(out.Results.Networks) != len(table) {
		t.Fatalf("results = %+v, errors = %v", out.Results, out.Errors)
	}
	if out.Results.Networks[4].Type != LinkwitzRiley || out.Results.Networks[4].Order != 2 {
		t.Errorf("network 4 = %s %s", out.Results.Networks[4].Type, out.Results.Networks[4].Order)
	}
}

func TestHandlerFilters(t *testing.T) {
	h := &Handler{}
	rec := httptest.NewRecorder()
	h.Filters(rec, httptest.NewRequest(http.MethodGet, "/api/crossover/filters", nil))
	var cells []Cell
	if err := json.NewDecoder(rec.Body).Decode(&cells); err != nil {
		t.Fatal(err)
	}
	if len(cells) != len(table) || cells[11].Type != LinearPhase {
		t.Errorf("cells = %d, last = %v", len(cells), cells[len(cells)-1].Type)
	}
}
