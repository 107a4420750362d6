package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	BindAddr       string
	BackendURL     string
	BackendTimeout time.Duration
	SessionSecret  string
	SessionDir     string
	AllowedOrigins []string
	LogMode        string
	LogFile        string
	ContentFile    string
}

// APIBase is the backend REST root every client call is resolved against.
func (c *Config) APIBase() string {
	return strings.TrimRight(c.BackendURL, "/") + "/api"
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	backend := strings.TrimSpace(os.Getenv("BACKEND_URL"))
	if backend == "" {
		return nil, fmt.Errorf("BACKEND_URL is required")
	}
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}

	timeoutSec, err := strconv.Atoi(getEnv("BACKEND_TIMEOUT_SECONDS", "10"))
	if err != nil || timeoutSec <= 0 {
		return nil, fmt.Errorf("BACKEND_TIMEOUT_SECONDS must be a positive integer")
	}

	return &Config{
		BindAddr:       getEnv("BIND_ADDR", ":3000"),
		BackendURL:     backend,
		BackendTimeout: time.Duration(timeoutSec) * time.Second,
		SessionSecret:  secret,
		SessionDir:     os.Getenv("SESSION_DIR"),
		AllowedOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
		LogMode:        getEnv("LOG_MODE", "development"),
		LogFile:        os.Getenv("LOG_FILE"),
		ContentFile:    os.Getenv("CONTENT_FILE"),
	}, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
