package export

import (
	"Loudspeaker/internal/calc/registry"
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

type Handler struct{}

func (h *Handler) XLSX(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	f, err := Workbook(input)
	switch {
	case errors.Is(err, registry.ErrUnknownCalculator), errors.Is(err, ErrNotExportable):
		http.Error(w, "Unsupported calculator", http.StatusBadRequest)
		return
	case errors.Is(err, ErrNoResults):
		http.Error(w, "Incomplete inputs", http.StatusUnprocessableEntity)
		return
	case err != nil:
		log.Printf("export %s: %v", input.Calculator, err)
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"export.xlsx\"")
	if _, err := f.WriteTo(w); err != nil {
		log.Printf("export %s: %v", input.Calculator, err)
	}
}
