package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr string

	// Commerce platform storefront API.
	StoreDomain       string
	StorefrontVersion string
	StorefrontToken   string

	// Headless CMS.
	CMSProjectID  string
	CMSDataset    string
	CMSAPIVersion string
	CMSToken      string

	// Optional infrastructure.
	DBConnString string
	AMQPURL      string

	AllowOrigins    []string
	CacheTTL        time.Duration
	ShutdownTimeout time.Duration
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() Config {
	return Config{
		HTTPAddr:          envOrDefault("HTTP_ADDR", ":8080"),
		StoreDomain:       envOrDefault("STORE_DOMAIN", ""),
		StorefrontVersion: envOrDefault("STOREFRONT_API_VERSION", "2025-01"),
		StorefrontToken:   envOrDefault("STOREFRONT_ACCESS_TOKEN", ""),
		CMSProjectID:      envOrDefault("CMS_PROJECT_ID", ""),
		CMSDataset:        envOrDefault("CMS_DATASET", "production"),
		CMSAPIVersion:     envOrDefault("CMS_API_VERSION", "2024-01-01"),
		CMSToken:          envOrDefault("CMS_API_TOKEN", ""),
		DBConnString:      envOrDefault("DB_DSN", ""),
		AMQPURL:           envOrDefault("AMQP_URL", ""),
		AllowOrigins:      envList("ALLOW_ORIGINS"),
		CacheTTL:          envDuration("CACHE_TTL_SECONDS", 5*time.Minute),
		ShutdownTimeout:   envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

func envList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
