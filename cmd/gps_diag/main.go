package main

import (
	"log"

	"github.com/relabs-tech/gps_tracker/internal/app"
	"github.com/relabs-tech/gps_tracker/internal/config"
)

func main() {
	log.Println("starting gps-tracker I2C diagnostics")

	if err := config.InitGlobal("gps_config.txt"); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := app.RunDiag(); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
