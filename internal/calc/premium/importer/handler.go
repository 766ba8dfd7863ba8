package importer

import (
	"Loudspeaker/internal/calc/premium/batch"
	"Loudspeaker/internal/i18n"
	"encoding/json"
	"errors"
	"net/http"
)

type Handler struct {
	Lang string
}

type DriverImportResult struct {
	Count   int          `json:"count"`
	Results []batch.Item `json:"results"`
}

func (h *Handler) Drivers(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	drivers, err := ReadDrivers(file)
	if errors.Is(err, ErrEmptySheet) {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}

	res, err := batch.Calculate(batch.Input{Items: drivers}, i18n.FromRequest(r, h.Lang))
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(DriverImportResult{Count: len(res.Results), Results: res.Results})
}
