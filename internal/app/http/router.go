package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zarobax/ams-order-form/internal/app/config"
	"github.com/zarobax/ams-order-form/internal/app/http/handlers"
	"github.com/zarobax/ams-order-form/internal/app/http/middleware"
	"github.com/zarobax/ams-order-form/internal/domain/catalog"
	"github.com/zarobax/ams-order-form/internal/domain/quote/store"
)

func NewRouter(cfg config.Config, st *store.Store, items []catalog.Item) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	h := handlers.New(st, items, cfg)

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.InternalAuth(cfg.InternalToken))

		r.Get("/catalog", h.Catalog)
		r.Get("/catalog/view", h.CatalogView)

		r.Get("/customers", h.SearchCustomers)
		r.Get("/customers/all", h.ListCustomers)
		r.Get("/customers/{key}", h.GetCustomer)
		r.Put("/customers/{key}/items", h.SaveMasterEdit)
		r.Delete("/customers/{key}", h.DeleteCustomer)
		r.Get("/customers/{key}/pricelist.xlsx", h.PriceListXLSX)

		r.Post("/orders", h.SubmitOrder)
		r.Post("/orders/pdf", h.SubmitOrderPDF)

		r.Get("/export", h.ExportRegistry)
		r.Post("/import", h.ImportRegistry)
	})

	return r
}
