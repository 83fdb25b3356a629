package config

import (
	"net"
	"strconv"
)

const (
	DefaultHost        = "0.0.0.0"
	DefaultPort        = 8080
	DefaultStaticDir   = "src/main/resources/static"
	DefaultEnvironment = "development"
)

// Config is the complete runtime configuration of one server instance.
// Nothing outside this value influences how a server behaves.
type Config struct {
	Host        string
	Port        int
	StaticDir   string
	Environment string

	// origins allowed by CORS, "*" allows all
	AllowedOrigins []string

	// limiter formatted rate ("300-M"), empty (the default) disables rate limiting
	RateLimit string

	// proxies whose X-Forwarded-For is believed, none by default
	TrustedProxies []string

	// optional, moves rate limit counters to redis when set
	RedisURL string
}

// returns the defaults used when no environment or flags are given
func Default() *Config {
	return &Config{
		Host:           DefaultHost,
		Port:           DefaultPort,
		StaticDir:      DefaultStaticDir,
		Environment:    DefaultEnvironment,
		AllowedOrigins: []string{"*"},
	}
}

// returns the listen address in host:port form
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
