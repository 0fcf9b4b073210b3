package app

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/zarobax/ams-order-form/internal/app/config"
	apphttp "github.com/zarobax/ams-order-form/internal/app/http"
	"github.com/zarobax/ams-order-form/internal/domain/catalog"
	"github.com/zarobax/ams-order-form/internal/domain/quote/store"
	"github.com/zarobax/ams-order-form/internal/infra/db/postgres"
	"github.com/zarobax/ams-order-form/internal/infra/storage"
)

func Run() {
	cfg := config.MustLoad()

	var slot store.Slot
	if cfg.DatabaseURL != "" {
		db, err := postgres.New(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db: %v", err)
		}
		defer db.Close()

		pg := postgres.NewRegistrySlot(db, cfg.RegistrySlot)
		if err := pg.EnsureSchema(context.Background()); err != nil {
			log.Fatalf("db schema: %v", err)
		}
		slot = pg
	} else {
		log.Printf("no DATABASE_URL, registry in %s", cfg.RegistryFile)
		slot = storage.NewFileSlot(cfg.RegistryFile)
	}

	st := store.New(slot)
	st.Load(context.Background())

	items := catalog.Load(cfg.CatalogSource)
	log.Printf("catalog: %d items from %s", len(items), cfg.CatalogSource)

	router := apphttp.NewRouter(cfg, st, items)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("listening on %s", cfg.HTTPAddr)
	log.Fatal(srv.ListenAndServe())
}
