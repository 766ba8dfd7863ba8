package batch

import (
	"Loudspeaker/internal/i18n"
	"encoding/json"
	"net/http"
)

type Handler struct {
	Lang string
}

func (h *Handler) TS(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(input, i18n.FromRequest(r, h.Lang))
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
