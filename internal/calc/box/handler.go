package box

import (
	"Loudspeaker/internal/calc/reactive"
	"Loudspeaker/internal/i18n"
	"encoding/json"
	"net/http"
)

type Handler struct {
	Lang string
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var fields reactive.Fields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	form := reactive.NewForm(fields)
	res, issues := Evaluate(FromForm(form))
	form.Issues.Merge(issues)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(reactive.Response{Results: res, Errors: form.Issues.Messages(i18n.FromRequest(r, h.Lang))})
}
