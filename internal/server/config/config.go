// Package config handles configuration for the authentication service,
// including defaults, JSON overlay, environment and command-line flags.
package config

import (
	"net"
	"strconv"
	"time"
)

// DefaultJWTSecret is the development signing secret. The service warns when
// it is still in use.
const DefaultJWTSecret = "your-secret-key-change-in-production"

// Config holds runtime settings for the authentication service.
//
// Fields:
//   - Host / Port: bind address of the gRPC endpoint.
//   - DatabaseDriver: "postgres", "sqlite" or "memory".
//   - DatabaseDSN: connection string for the selected driver.
//   - JWTSecret / JWTIssuer / AccessTokenTTL: token signing settings.
//   - BcryptCost: work factor for password hashes.
//   - ValidateAgainstStore: re-read the user on every token validation.
type Config struct {
	Host                 string        `env:"AUTH_SERVICE_HOST"`
	Port                 int           `env:"AUTH_SERVICE_PORT"`
	DatabaseDriver       string        `env:"DATABASE_DRIVER"`
	DatabaseDSN          string        `env:"DATABASE_DSN"`
	JWTSecret            string        `env:"JWT_SECRET"`
	JWTIssuer            string        `env:"JWT_ISSUER"`
	AccessTokenTTL       time.Duration `env:"ACCESS_TOKEN_TTL"`
	BcryptCost           int           `env:"BCRYPT_COST"`
	ValidateAgainstStore bool          `env:"VALIDATE_AGAINST_STORE"`
	LogFormat            string        `env:"LOG_FORMAT"`
	LogLevel             string        `env:"LOG_LEVEL"`
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret is insecure and must be overridden in production.
func (c *Config) LoadDefaults() {
	c.Host = "localhost"
	c.Port = 3001
	c.DatabaseDriver = "sqlite"
	c.DatabaseDSN = "file:authgate.db?_pragma=busy_timeout(5000)"
	c.JWTSecret = DefaultJWTSecret
	c.JWTIssuer = "authgate"
	c.AccessTokenTTL = time.Hour
	c.BcryptCost = 10
	c.ValidateAgainstStore = false
	c.LogFormat = "json"
	c.LogLevel = "info"
}

// Address is the host:port the gRPC endpoint listens on.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// UsesDefaultSecret reports whether the development secret is still set.
func (c *Config) UsesDefaultSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment (and .env) and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
