package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL    string
	ServerPort    string
	SessionSecret string
	TemplatesGlob string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:    os.Getenv("API_BASE_URL"),
		ServerPort:    os.Getenv("SERVER_PORT"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		TemplatesGlob: os.Getenv("TEMPLATES_GLOB"),
	}

	if cfg.APIBaseURL == "" {
		log.Fatal("API_BASE_URL is not set")
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is not set")
	}
	if cfg.TemplatesGlob == "" {
		cfg.TemplatesGlob = "web/templates/*.html"
	}

	return cfg
}
