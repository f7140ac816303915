package main

import (
	"log"

	_ "todoapp/docs"
	"todoapp/internal/config"
	"todoapp/internal/server"
)

// @title           Todo API
// @version         1.0
// @description     REST API for managing todos with AI-assisted creation.

// @host      localhost:8080
// @BasePath  /

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
