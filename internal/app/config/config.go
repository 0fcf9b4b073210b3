package config

import (
	"log"
	"os"
)

type Config struct {
	HTTPAddr        string
	DatabaseURL     string
	InternalToken   string
	CORSAllowOrigin string
	WarehouseEmail  string
	CompanyName     string
	CatalogSource   string
	RegistrySlot    string
	RegistryFile    string
}

// MustLoad reads configuration from the environment. DATABASE_URL is
// optional: when empty the registry lives in a local file instead of
// Postgres, mirroring the original storage-local deployment.
func MustLoad() Config {
	return Config{
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		DatabaseURL:     env("DATABASE_URL", ""),
		InternalToken:   mustEnv("INTERNAL_TOKEN"),
		CORSAllowOrigin: env("CORS_ALLOW_ORIGIN", "*"),
		WarehouseEmail:  env("WAREHOUSE_EMAIL", "amssupply@outlook.com"),
		CompanyName:     env("COMPANY_NAME", "AMS Supply"),
		CatalogSource:   env("CATALOG_SOURCE", "items.json"),
		RegistrySlot:    env("REGISTRY_SLOT", "ams_customer_quotes_v1"),
		RegistryFile:    env("REGISTRY_FILE", "data/ams_customer_quotes_v1.json"),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing env %s", k)
	}
	return v
}
