package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zarobax/ams-order-form/internal/domain/quote"
	"github.com/zarobax/ams-order-form/internal/domain/quote/xlsx"
)

func (h *Handlers) SearchCustomers(w http.ResponseWriter, r *http.Request) {
	matches := h.Store.Search(r.URL.Query().Get("q"))
	if matches == nil {
		matches = []quote.Suggestion{}
	}
	writeJSON(w, http.StatusOK, matches)
}

func (h *Handlers) ListCustomers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.Summaries())
}

type customerResponse struct {
	Key         string       `json:"key"`
	DisplayName string       `json:"displayName"`
	Items       []quote.Line `json:"items"`
}

func (h *Handlers) GetCustomer(w http.ResponseWriter, r *http.Request) {
	key := quote.NormalizeKey(chi.URLParam(r, "key"))
	rec, ok := h.Store.Lookup(key)
	if !ok {
		http.Error(w, "customer not found", http.StatusNotFound)
		return
	}

	items := make([]quote.Line, 0, len(rec.Items))
	for _, code := range rec.SortedCodes() {
		items = append(items, rec.Items[code])
	}
	writeJSON(w, http.StatusOK, customerResponse{
		Key:         key,
		DisplayName: rec.DisplayName,
		Items:       items,
	})
}

type masterEditRequest struct {
	Items []quote.EditRow `json:"items"`
}

// SaveMasterEdit replaces the customer's stored item list with the curated
// rows from the edit grid. Rows the user removed drop out of the quote.
func (h *Handlers) SaveMasterEdit(w http.ResponseWriter, r *http.Request) {
	key := quote.NormalizeKey(chi.URLParam(r, "key"))

	var req masterEditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	rec, ok := h.Store.SaveMasterEdit(r.Context(), key, req.Items)
	if !ok {
		http.Error(w, "customer not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"key":       key,
		"itemCount": len(rec.Items),
	})
}

func (h *Handlers) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	key := quote.NormalizeKey(chi.URLParam(r, "key"))
	if !h.Store.Delete(r.Context(), key) {
		http.Error(w, "customer not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) PriceListXLSX(w http.ResponseWriter, r *http.Request) {
	key := quote.NormalizeKey(chi.URLParam(r, "key"))
	rec, ok := h.Store.Lookup(key)
	if !ok {
		http.Error(w, "customer not found", http.StatusNotFound)
		return
	}

	data, err := xlsx.PriceList(rec)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="ams_pricelist_%s.xlsx"`, key))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
