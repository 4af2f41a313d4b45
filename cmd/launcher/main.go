package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/kacebover/bassline-generator/launcher"
)

func main() {
	cfg, err := launcher.LoadConfig(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	os.Exit(launcher.New(cfg).Run())
}
