package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/zarobax/ams-order-form/internal/app/config"
	"github.com/zarobax/ams-order-form/internal/domain/catalog"
	"github.com/zarobax/ams-order-form/internal/domain/quote"
	"github.com/zarobax/ams-order-form/internal/domain/quote/store"
)

func withChiParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

type memSlot struct{ data []byte }

func (s *memSlot) Read(context.Context) ([]byte, error)     { return s.data, nil }
func (s *memSlot) Write(_ context.Context, d []byte) error  { s.data = d; return nil }

func newTestHandlers() *Handlers {
	items := []catalog.Item{
		{Name: "Widget (EA)", Code: "A", UOM: "EA"},
		{Name: "Gadget", Code: "B", UOM: "EA"},
	}
	cfg := config.Config{WarehouseEmail: "warehouse@example.com", CompanyName: "AMS Supply"}
	return New(store.New(&memSlot{}), items, cfg)
}

func TestSubmitOrderHandler(t *testing.T) {
	h := newTestHandlers()

	body := `{"customer":"Acme","items":[{"code":"A","qty":"2","price":"5"}]}`
	w := httptest.NewRecorder()
	h.SubmitOrder(w, httptest.NewRequest(http.MethodPost, "/v1/orders", strings.NewReader(body)))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Subject string `json:"subject"`
		Body    string `json:"body"`
		Mailto  string `json:"mailto"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Subject != "Order for Acme" {
		t.Errorf("subject = %q", resp.Subject)
	}
	if !strings.Contains(resp.Body, "- 2 x Widget (EA) / A — $5.00 each") {
		t.Errorf("body missing pick line:\n%s", resp.Body)
	}
	if !strings.HasPrefix(resp.Mailto, "mailto:") {
		t.Errorf("mailto = %q", resp.Mailto)
	}

	rec, ok := h.Store.Lookup("acme")
	if !ok {
		t.Fatal("order did not persist the master quote")
	}
	if rec.Items["A"].Price != quote.PriceOf(5) {
		t.Errorf("stored price = %+v", rec.Items["A"].Price)
	}
}

func TestSubmitOrderNumericInputs(t *testing.T) {
	h := newTestHandlers()

	// frontends sometimes send numbers instead of form strings
	body := `{"customer":"Acme","items":[{"code":"A","qty":2,"price":5.5}]}`
	w := httptest.NewRecorder()
	h.SubmitOrder(w, httptest.NewRequest(http.MethodPost, "/v1/orders", strings.NewReader(body)))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestSubmitOrderValidationMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"no customer", `{"customer":" ","items":[{"code":"A","qty":"1"}]}`, "Please enter a customer name."},
		{"no items", `{"customer":"Acme","items":[]}`, "Please select at least one item"},
		{"bad qty", `{"customer":"Acme","items":[{"code":"A","qty":"0"}]}`, "Please enter a quantity"},
		{"bad price", `{"customer":"Acme","items":[{"code":"A","qty":"1","price":"-2"}]}`, "Please enter a valid price"},
		{"unknown code", `{"customer":"Acme","items":[{"code":"ZZ","qty":"1"}]}`, "unknown item code"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandlers()
			w := httptest.NewRecorder()
			h.SubmitOrder(w, httptest.NewRequest(http.MethodPost, "/v1/orders", strings.NewReader(tt.body)))
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d", w.Code)
			}
			if !strings.Contains(w.Body.String(), tt.want) {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.want)
			}
			if got := h.Store.Summaries(); len(got) != 0 {
				t.Errorf("registry mutated by rejected submit: %v", got)
			}
		})
	}
}

func TestCatalogViewHandler(t *testing.T) {
	h := newTestHandlers()
	if _, err := h.Store.SubmitOrder(context.Background(), "Acme",
		[]quote.Line{{Name: "Widget", Code: "A", UOM: "EA", Price: quote.PriceOf(5)}}); err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	h.CatalogView(w, httptest.NewRequest(http.MethodGet, "/v1/catalog/view?customer=ACME", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var view quote.OrderingView
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatal(err)
	}
	if len(view.Rows) != 2 || view.Rows[0].Item.Code != "A" || !view.Rows[0].Quoted {
		t.Fatalf("view rows = %+v", view.Rows)
	}
	if view.Rows[0].Price != quote.PriceOf(5) {
		t.Errorf("overlaid price = %+v", view.Rows[0].Price)
	}
	if view.Divider != 1 {
		t.Errorf("divider = %d, want 1", view.Divider)
	}
}

func TestImportExportHandlers(t *testing.T) {
	h := newTestHandlers()

	w := httptest.NewRecorder()
	h.ImportRegistry(w, httptest.NewRequest(http.MethodPost, "/v1/import",
		strings.NewReader(`{"acme":{"displayName":"Acme","items":{}}}`)))
	if w.Code != http.StatusOK {
		t.Fatalf("import status = %d, body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"imported":1`) {
		t.Errorf("import response = %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	h.ExportRegistry(w, httptest.NewRequest(http.MethodGet, "/v1/export", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("export status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ams_customer_db"`) {
		t.Errorf("export missing envelope: %s", w.Body.String())
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "ams_customer_data.json") {
		t.Errorf("Content-Disposition = %q", cd)
	}
}

func TestImportMalformedSurfacesMessage(t *testing.T) {
	h := newTestHandlers()
	w := httptest.NewRecorder()
	h.ImportRegistry(w, httptest.NewRequest(http.MethodPost, "/v1/import", strings.NewReader(`{broken`)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Could not import file") {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestDeleteCustomerHandler(t *testing.T) {
	h := newTestHandlers()
	h.Store.SubmitOrder(context.Background(), "Acme", []quote.Line{{Name: "Widget", Code: "A"}})

	// handler reads the key from the chi route context
	req := httptest.NewRequest(http.MethodDelete, "/v1/customers/acme", nil)
	req = withChiParam(req, "key", "acme")
	w := httptest.NewRecorder()
	h.DeleteCustomer(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d", w.Code)
	}
	if _, ok := h.Store.Lookup("acme"); ok {
		t.Error("customer survived delete")
	}
}
