package handlers

import (
	"net/http"

	"github.com/zarobax/ams-order-form/internal/domain/catalog"
	"github.com/zarobax/ams-order-form/internal/domain/quote"
)

type catalogItemResponse struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Code        string `json:"code"`
	UOM         string `json:"uom"`
}

func (h *Handlers) Catalog(w http.ResponseWriter, r *http.Request) {
	items := make([]catalogItemResponse, 0, len(h.Items))
	for _, it := range h.Items {
		items = append(items, catalogItemResponse{
			Name:        it.Name,
			DisplayName: catalog.CleanName(it.Name, it.UOM),
			Code:        it.Code,
			UOM:         it.UOM,
		})
	}
	writeJSON(w, http.StatusOK, items)
}

// CatalogView returns the catalog ordered for the customer named in the
// query: previously-quoted items first with their stored prices overlaid,
// then the rest, with the divider position between the two groups. The q
// parameter filters rows and suppresses the divider.
func (h *Handlers) CatalogView(w http.ResponseWriter, r *http.Request) {
	rawName := r.URL.Query().Get("customer")
	term := r.URL.Query().Get("q")

	var rec *quote.Record
	if key := quote.NormalizeKey(rawName); key != "" {
		rec, _ = h.Store.Lookup(key)
	}

	view := quote.BuildOrderingView(h.Items, rec)
	quote.ApplyStoredPrices(rec, view.Rows)
	view = view.Filter(term)

	writeJSON(w, http.StatusOK, view)
}
