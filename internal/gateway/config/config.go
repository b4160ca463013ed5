// Package config handles configuration for the gateway, including defaults,
// JSON overlay, environment and command-line flags.
package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds runtime settings for the gateway.
//
// Fields:
//   - Port: HTTP listen port.
//   - AuthServiceHost / AuthServicePort: location of the authentication service.
//   - RPCTimeout: deadline applied to every call to the authentication service.
//   - RateLimit / RateWindow: per-IP request budget on /auth routes; 0 disables.
type Config struct {
	Port            int           `env:"GATEWAY_PORT"`
	AuthServiceHost string        `env:"AUTH_SERVICE_HOST"`
	AuthServicePort int           `env:"AUTH_SERVICE_PORT"`
	RPCTimeout      time.Duration `env:"RPC_TIMEOUT"`
	RateLimit       int           `env:"RATE_LIMIT"`
	RateWindow      time.Duration `env:"RATE_WINDOW"`
	LogFormat       string        `env:"LOG_FORMAT"`
	LogLevel        string        `env:"LOG_LEVEL"`
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.Port = 3000
	c.AuthServiceHost = "localhost"
	c.AuthServicePort = 3001
	c.RPCTimeout = 5 * time.Second
	c.RateLimit = 10
	c.RateWindow = time.Minute
	c.LogFormat = "json"
	c.LogLevel = "info"
}

// ListenAddr is the HTTP bind address.
func (c *Config) ListenAddr() string {
	return ":" + strconv.Itoa(c.Port)
}

// AuthServiceAddr is the host:port of the authentication service.
func (c *Config) AuthServiceAddr() string {
	return net.JoinHostPort(c.AuthServiceHost, strconv.Itoa(c.AuthServicePort))
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
