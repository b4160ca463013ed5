package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/authgate/internal/flagx"
	"github.com/dmitrijs2005/authgate/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations use
// timex.Duration so both "1h" and integer nanoseconds are accepted. Pointer
// fields distinguish "absent" from the zero value.
type JsonConfig struct {
	Host                 *string         `json:"host"`
	Port                 *int            `json:"port"`
	DatabaseDriver       *string         `json:"database_driver"`
	DatabaseDSN          *string         `json:"database_dsn"`
	JWTSecret            *string         `json:"jwt_secret"`
	JWTIssuer            *string         `json:"jwt_issuer"`
	AccessTokenTTL       *timex.Duration `json:"access_token_ttl"`
	BcryptCost           *int            `json:"bcrypt_cost"`
	ValidateAgainstStore *bool           `json:"validate_against_store"`
	LogFormat            *string         `json:"log_format"`
	LogLevel             *string         `json:"log_level"`
}

// parseJson loads the file named by -c/-config (if any) into config.
// A missing or malformed file panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.ConfigFileFlag()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	setIf(&config.Host, c.Host)
	setIf(&config.Port, c.Port)
	setIf(&config.DatabaseDriver, c.DatabaseDriver)
	setIf(&config.DatabaseDSN, c.DatabaseDSN)
	setIf(&config.JWTSecret, c.JWTSecret)
	setIf(&config.JWTIssuer, c.JWTIssuer)
	if c.AccessTokenTTL != nil {
		config.AccessTokenTTL = c.AccessTokenTTL.Duration
	}
	setIf(&config.BcryptCost, c.BcryptCost)
	setIf(&config.ValidateAgainstStore, c.ValidateAgainstStore)
	setIf(&config.LogFormat, c.LogFormat)
	setIf(&config.LogLevel, c.LogLevel)
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
