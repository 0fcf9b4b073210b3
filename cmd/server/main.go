package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/zarobax/ams-order-form/internal/app"
)

func main() {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}
	app.Run()
}
