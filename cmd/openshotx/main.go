package main

import (
	"log"
	"os"

	"openshotx/internal/app"
)

func main() {
	application, err := app.NewApplication()
	if err != nil {
		log.Fatalf("openshotx: startup failed: %v", err)
	}

	os.Exit(application.Run())
}
