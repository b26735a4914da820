package main

import (
	"os"

	"github.com/eventra/eventra/internal/app"
	log "github.com/sirupsen/logrus"
)

func main() {
	configureLogging()

	application, err := app.NewApplication()
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}
	if err := application.Run(); err != nil {
		log.Fatal(err)
	}
}

func configureLogging() {
	level := log.InfoLevel
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		parsed, err := log.ParseLevel(v)
		if err != nil {
			log.Fatalf("invalid LOG_LEVEL %q: %v", v, err)
		}
		level = parsed
	}
	log.SetLevel(level)
	log.Debugf("log level set to %s", level)
}
