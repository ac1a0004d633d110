package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port         int
	APIKey       string
	CaptionsPath string
	CORSOrigins  []string
}

func Load() *Config {
	port, err := strconv.Atoi(getEnv("PORT", "8000"))
	if err != nil {
		port = 8000
	}

	// CORS origins: comma-separated list or "*" (default)
	corsOrigins := []string{"*"}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		corsOrigins = make([]string, 0, len(origins))
		for _, o := range origins {
			o = strings.TrimSpace(o)
			if o != "" {
				corsOrigins = append(corsOrigins, o)
			}
		}
	}

	return &Config{
		Port:         port,
		APIKey:       os.Getenv("API_KEY"),
		CaptionsPath: getEnv("CAPTIONS_PATH", "./captions"),
		CORSOrigins:  corsOrigins,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
