package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/zarobax/ams-order-form/internal/app/config"
	"github.com/zarobax/ams-order-form/internal/domain/catalog"
	"github.com/zarobax/ams-order-form/internal/domain/quote"
	"github.com/zarobax/ams-order-form/internal/domain/quote/store"
)

type Handlers struct {
	Store *store.Store
	Items []catalog.Item
	Cfg   config.Config

	byCode map[string]catalog.Item
}

func New(st *store.Store, items []catalog.Item, cfg config.Config) *Handlers {
	byCode := make(map[string]catalog.Item, len(items))
	for _, it := range items {
		if it.Code != "" {
			byCode[it.Code] = it
		}
	}
	return &Handlers{
		Store:  st,
		Items:  items,
		Cfg:    cfg,
		byCode: byCode,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("http: encode response: %v", err)
	}
}

// writeError maps domain failures onto responses: validation messages go to
// the user verbatim with a 400, anything else is an opaque 500.
func writeError(w http.ResponseWriter, err error) {
	if quote.IsValidation(err) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Printf("http: %v", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}
