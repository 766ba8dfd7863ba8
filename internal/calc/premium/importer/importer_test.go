package importer

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return buf
}

var sheet = [][]any{
	{"name", "mms", "kms", "bl", "re", "rms", "effectiveRadius", "airDensity", "micDistance", "inputVoltage"},
	{"W5", 10, 5, 7, 6, 1, 50, 1.2, 1, 2.83},
	{"", 20, 1.5, "x"},
}

func TestReadDrivers(t *testing.T) {
	drivers, err := ReadDrivers(workbook(t, sheet))
	if err != nil {
		t.Fatal(err)
	}
	if len(drivers) != 2 {
		t.Fatalf("len = %d, want 2", len(drivers))
	}
	if drivers[0].Name != "W5" || drivers[0].Fields["kms"] != "5" {
		t.Errorf("first = %+v", drivers[0])
	}
	if drivers[1].Name != "row 3" || drivers[1].Fields["bl"] != "x" {
		t.Errorf("second = %+v", drivers[1])
	}
}

func TestReadDriversEmpty(t *testing.T) {
	_, err := ReadDrivers(workbook(t, [][]any{{"name", "mms"}}))
	if !errors.Is(err, ErrEmptySheet) {
		t.Errorf("err = %v, want ErrEmptySheet", err)
	}
}

func TestHandlerDrivers(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "drivers.xlsx")
	if err != nil {
		t.Fatal(err)
	}
	fw.Write(workbook(t, sheet).Bytes())
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/import/drivers", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	(&Handler{}).Drivers(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var out DriverImportResult
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 2 || out.Results[0].TS.F0 == nil || out.Results[1].Errors["bl"] == "" {
		t.Errorf("out = %+v", out)
	}
}

func TestHandlerNoFile(t *testing.T) {
	rec := httptest.NewRecorder()
	(&Handler{}).Drivers(rec, httptest.NewRequest(http.MethodPost, "/api/import/drivers", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rec.Code)
	}
}
