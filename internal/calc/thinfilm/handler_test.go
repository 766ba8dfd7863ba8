package thinfilm

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandlerMaterialsJapanese(t *testing.T) {
	h := &Handler{Lang: "en"}
	req := httptest.NewRequest(http.MethodGet, "/api/materials", nil)
	req.Header.Set("Accept-Language", "ja-JP,ja;q=0.9")
	rec := httptest.NewRecorder()
	h.Materials(rec, req)

	var out []materialView
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if len(out) != len(Materials) || out[0].Label != "銀" || out[0].Name != "Silver" {
		t.Errorf("first material = %+v", out[0])
	}
}

func TestHandlerCalcPreset(t *testing.T) {
	h := &Handler{}
	body := `{"mode":"resistance","material":"Copper","lineWidth":"1","lineThickness":"1","lineLength":"1000"}`
	req := httptest.NewRequest(http.MethodPost, "/api/calc/thinfilm", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Calc(rec, req)

	var out struct {
		Results *Result           `json:"results"`
		Errors  map[string]string `json:"errors"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Results == nil || out.Results.Formatted != "0.017000" {
		t.Errorf("results = %+v, errors = %v", out.Results, out.Errors)
	}
}
