package report

import (
	"Loudspeaker/internal/calc/registry"
	"Loudspeaker/internal/i18n"
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

type Handler struct {
	Lang string
	// FontFile enables Japanese output when set.
	FontFile string
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	opt := Options{Printer: i18n.Printer("en"), FontFile: h.FontFile}
	if h.FontFile != "" {
		opt.Printer = i18n.FromRequest(r, h.Lang)
	}
	pdf, err := Build(input, opt)
	if errors.Is(err, registry.ErrUnknownCalculator) {
		http.Error(w, "Unknown calculator", http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Printf("report %s: %v", input.Calculator, err)
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	if err := pdf.Output(w); err != nil {
		log.Printf("report %s: %v", input.Calculator, err)
	}
}
