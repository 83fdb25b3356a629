package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// loads configuration from environment variables on top of the defaults
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	return FromLookup(os.LookupEnv)
}

// builds a config from an arbitrary variable source
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	if v, ok := lookup("HOST"); ok && v != "" {
		cfg.Host = v
	}

	if v, ok := lookup("PORT"); ok && v != "" {
		port, err := ParsePort(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %w", err)
		}

		cfg.Port = port
	}

	if v, ok := lookup("STATIC_DIR"); ok && v != "" {
		cfg.StaticDir = v
	}

	if v, ok := lookup("ENVIRONMENT"); ok && v != "" {
		cfg.Environment = v
	}

	if v, ok := lookup("CORS_ALLOWED_ORIGINS"); ok && v != "" {
		cfg.AllowedOrigins = splitList(v)
	}

	// the limiter is opt-in, "0" and "off" keep it disabled
	if v, ok := lookup("RATE_LIMIT"); ok {
		switch v = strings.TrimSpace(v); v {
		case "0", "off", "":
		default:
			cfg.RateLimit = v
		}
	}

	if v, ok := lookup("TRUSTED_PROXIES"); ok && v != "" {
		cfg.TrustedProxies = splitList(v)
	}

	if v, ok := lookup("REDIS_URL"); ok {
		cfg.RedisURL = strings.TrimSpace(v)
	}

	return cfg, nil
}

func ParsePort(v string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", v)
	}

	if port < 0 || port > 65535 {
		return 0, fmt.Errorf("%d is out of range", port)
	}

	return port, nil
}

func splitList(v string) []string {
	var out []string

	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
