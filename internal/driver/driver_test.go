package driver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"Loudspeaker/internal/auth"
	"Loudspeaker/internal/calc/premium/batch"
	"Loudspeaker/internal/repo"

	"github.com/gorilla/mux"
)

func router(h *Handler, userID int) http.Handler {
	r := mux.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if userID != 0 {
				req = req.WithContext(auth.WithUserID(req.Context(), userID))
			}
			next.ServeHTTP(w, req)
		})
	})
	r.HandleFunc("/drivers", h.List).Methods("GET")
	r.HandleFunc("/drivers", h.Create).Methods("POST")
	r.HandleFunc("/drivers/{id:[0-9]+}", h.Get).Methods("GET")
	r.HandleFunc("/drivers/{id:[0-9]+}", h.Update).Methods("PUT")
	r.HandleFunc("/drivers/{id:[0-9]+}", h.Delete).Methods("DELETE")
	r.HandleFunc("/drivers/{id:[0-9]+}/evaluate", h.Evaluate).Methods("POST")
	return r
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

const woofer = `{"name":"W5","fields":{"mms":"10","kms":"5","bl":"7","re":"6","rms":"1","effectiveRadius":"50","airDensity":"1.2","micDistance":"1","inputVoltage":"2.83"}}`

func TestDriverLifecycle(t *testing.T) {
	h := &Handler{Repo: repo.NewMemory()}
	r := router(h, 1)

	rec := do(r, "POST", "/drivers", woofer)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body.String())
	}
	var created repo.Driver
	json.NewDecoder(rec.Body).Decode(&created)
	path := "/drivers/" + strconv.Itoa(created.ID)

	if rec := do(r, "POST", "/drivers", woofer); rec.Code != http.StatusConflict {
		t.Errorf("duplicate status = %d", rec.Code)
	}
	if rec := do(r, "GET", path, ""); rec.Code != http.StatusOK {
		t.Errorf("get status = %d", rec.Code)
	}

	rec = do(r, "POST", path+"/evaluate", "")
	var item batch.Item
	if err := json.NewDecoder(rec.Body).Decode(&item); err != nil {
		t.Fatal(err)
	}
	if item.TS.F0 == nil || item.SPL.Qts == nil {
		t.Errorf("evaluate = %+v", item)
	}

	if rec := do(r, "PUT", path, `{"name":"W5 B","fields":{"mms":"12"}}`); rec.Code != http.StatusOK {
		t.Errorf("update status = %d", rec.Code)
	}
	if rec := do(router(h, 2), "GET", path, ""); rec.Code != http.StatusNotFound {
		t.Errorf("other user status = %d", rec.Code)
	}
	if rec := do(r, "DELETE", path, ""); rec.Code != http.StatusNoContent {
		t.Errorf("delete status = %d", rec.Code)
	}
	rec = do(r, "GET", "/drivers", "")
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("list after delete = %s", rec.Body.String())
	}
}

func TestDriverValidation(t *testing.T) {
	h := &Handler{Repo: repo.NewMemory()}
	if rec := do(router(h, 1), "POST", "/drivers", `{"name":"  "}`); rec.Code != http.StatusBadRequest {
		t.Errorf("blank name status = %d", rec.Code)
	}
	if rec := do(router(h, 0), "GET", "/drivers", ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous status = %d", rec.Code)
	}
}
