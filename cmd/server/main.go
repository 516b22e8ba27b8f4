package main

import (
	"fmt"
	"log"

	"sbu-console/internal/api"
	"sbu-console/internal/config"
	"sbu-console/internal/server"
)

func main() {
	cfg := config.Load()
	client := api.New(cfg.APIBaseURL)

	r := server.NewRouter(cfg, client)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
