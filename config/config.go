package config

import (
	"log"
	"os"
	"strings"
)

// The dev-only admin token. Deployments must override ADMIN_TOKEN; the
// default exists so local dashboards work out of the box.
const insecureDefaultAdminToken = "jalwa-admin-2023"

const defaultGiftCode = "4033F8A7A14DE9DC179CDD9942EF52F6"

// Config collects every setting the server needs. One entry point plus
// this struct replaces per-deployment bootstrap scripts.
type Config struct {
	Port            string
	AdminToken      string
	StorageBackend  string // "memory" or "postgres"
	DatabaseURL     string
	RedisURL        string // optional; enables the gift code cache
	ApprovedUserIDs []string
	DefaultGiftCode string
}

func Load() *Config {
	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		AdminToken:      getEnv("ADMIN_TOKEN", insecureDefaultAdminToken),
		StorageBackend:  getEnv("STORAGE_BACKEND", "memory"),
		DatabaseURL:     os.Getenv("DB_CONNECTION_STRING"),
		RedisURL:        os.Getenv("REDIS_URL"),
		ApprovedUserIDs: splitCSV(getEnv("APPROVED_USER_IDS", "12345,56789,admin123,approved_test_user")),
		DefaultGiftCode: getEnv("DEFAULT_GIFT_CODE", defaultGiftCode),
	}

	if cfg.AdminToken == insecureDefaultAdminToken {
		log.Println("Warning: ADMIN_TOKEN not set, using the insecure development default")
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
