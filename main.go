package main

import (
	"fmt"
	"log"

	"github.com/sheikhrachel/canvas-gol/utils"
)

const configFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		fmt.Printf("Using default configuration (%v)\n", err)
		config = utils.DefaultConfig()
	}

	switch config.Mode {
	case utils.ModeTerminal:
		err = runTerminal(config)
	default:
		err = runWindow(config)
	}
	if err != nil {
		log.Fatalf("%+v", err)
	}
}
