package main

import (
	"log"
	"os"

	"github.com/voxnav/voxnav/api"
)

// StartServer runs the HTTP backend on the configured port.
func StartServer() {
	router := api.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("[INFO] Starting voxnav server on port %s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("[FATAL] Failed to run server: %v\n", err)
	}
}
