// Package driver serves a user's saved loudspeaker parameter sets.
package driver

import (
	"Loudspeaker/internal/auth"
	"Loudspeaker/internal/calc/premium/batch"
	"Loudspeaker/internal/calc/reactive"
	"Loudspeaker/internal/i18n"
	"Loudspeaker/internal/repo"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

type Handler struct {
	Repo repo.Repository
	Lang string
}

type DriverRequest struct {
	Name   string          `json:"name"`
	Fields reactive.Fields `json:"fields"`
}

const maxBody = 1 << 20

func user(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	}
	return id, ok
}

func driverID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func decode(w http.ResponseWriter, r *http.Request) (DriverRequest, bool) {
	var req DriverRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return req, false
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		http.Error(w, "Name required", http.StatusBadRequest)
		return req, false
	}
	if req.Fields == nil {
		req.Fields = reactive.Fields{}
	}
	return req, true
}

// storeErr answers a repository failure.
func storeErr(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		http.Error(w, "Driver not found", http.StatusNotFound)
	case errors.Is(err, repo.ErrDuplicate):
		http.Error(w, "Driver name already used", http.StatusConflict)
	default:
		log.Printf("%s Error: %v", op, err)
		http.Error(w, "DB error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := user(w, r)
	if !ok {
		return
	}
	drivers, err := h.Repo.ListDrivers(r.Context(), userID)
	if err != nil {
		storeErr(w, "ListDrivers", err)
		return
	}
	writeJSON(w, http.StatusOK, drivers)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := user(w, r)
	if !ok {
		return
	}
	req, ok := decode(w, r)
	if !ok {
		return
	}
	d := &repo.Driver{UserID: userID, Name: req.Name, Fields: req.Fields}
	if err := h.Repo.CreateDriver(r.Context(), d); err != nil {
		storeErr(w, "CreateDriver", err)
		return
	}
	writeJSON(w, http.StatusCreated, d)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := user(w, r)
	if !ok {
		return
	}
	id, ok := driverID(w, r)
	if !ok {
		return
	}
	d, err := h.Repo.GetDriver(r.Context(), userID, id)
	if err != nil {
		storeErr(w, "GetDriver", err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := user(w, r)
	if !ok {
		return
	}
	id, ok := driverID(w, r)
	if !ok {
		return
	}
	req, ok := decode(w, r)
	if !ok {
		return
	}
	d := &repo.Driver{ID: id, UserID: userID, Name: req.Name, Fields: req.Fields}
	if err := h.Repo.UpdateDriver(r.Context(), d); err != nil {
		storeErr(w, "UpdateDriver", err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := user(w, r)
	if !ok {
		return
	}
	id, ok := driverID(w, r)
	if !ok {
		return
	}
	if err := h.Repo.DeleteDriver(r.Context(), userID, id); err != nil {
		storeErr(w, "DeleteDriver", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Evaluate runs the TS and SPL calculators on a saved driver.
func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	userID, ok := user(w, r)
	if !ok {
		return
	}
	id, ok := driverID(w, r)
	if !ok {
		return
	}
	d, err := h.Repo.GetDriver(r.Context(), userID, id)
	if err != nil {
		storeErr(w, "GetDriver", err)
		return
	}
	item := batch.EvaluateDriver(batch.Driver{Name: d.Name, Fields: d.Fields}, i18n.FromRequest(r, h.Lang))
	writeJSON(w, http.StatusOK, item)
}
