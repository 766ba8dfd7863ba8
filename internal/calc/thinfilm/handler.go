package thinfilm

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

type materialView struct {
	Name        string  `json:"name"`
	Label       string  `json:"label"`
	Resistivity float64 `json:"resistivity"`
}

// Materials lists the presets, labelled in the request language.
func (h *Handler) Materials(w http.ResponseWriter, r *http.Request) {
	ja := i18n.IsJapanese(i18n.Tag(r, h.Lang))
	out := make([]materialView, len(Materials))
	for i, m := range Materials {
		out[i] = materialView{Name: m.Name, Label: m.Name, Resistivity: m.Resistivity}
		if ja {
			out[i].Label = m.NameJa
		}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}
