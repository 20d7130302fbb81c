package main

import (
	"github.com/searchktools/mini-server/app"
	"github.com/searchktools/mini-server/config"
)

func main() {
	// Create configuration
	cfg := config.New()

	// Create application with the built-in route table
	application := app.New(cfg)

	// Start the server
	application.Run()
}
