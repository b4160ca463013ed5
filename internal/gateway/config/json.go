package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/authgate/internal/flagx"
	"github.com/dmitrijs2005/authgate/internal/timex"
)

// JsonConfig is the on-disk shape of the gateway configuration file.
type JsonConfig struct {
	Port            *int            `json:"port"`
	AuthServiceHost *string         `json:"auth_service_host"`
	AuthServicePort *int            `json:"auth_service_port"`
	RPCTimeout      *timex.Duration `json:"rpc_timeout"`
	RateLimit       *int            `json:"rate_limit"`
	RateWindow      *timex.Duration `json:"rate_window"`
	LogFormat       *string         `json:"log_format"`
	LogLevel        *string         `json:"log_level"`
}

// parseJson loads the file named by -c/-config (if any) into config.
func parseJson(config *Config) {

	jsonConfigFile := flagx.ConfigFileFlag()

	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.Port != nil {
		config.Port = *c.Port
	}
	if c.AuthServiceHost != nil {
		config.AuthServiceHost = *c.AuthServiceHost
	}
	if c.AuthServicePort != nil {
		config.AuthServicePort = *c.AuthServicePort
	}
	if c.RPCTimeout != nil {
		config.RPCTimeout = c.RPCTimeout.Duration
	}
	if c.RateLimit != nil {
		config.RateLimit = *c.RateLimit
	}
	if c.RateWindow != nil {
		config.RateWindow = c.RateWindow.Duration
	}
	if c.LogFormat != nil {
		config.LogFormat = *c.LogFormat
	}
	if c.LogLevel != nil {
		config.LogLevel = *c.LogLevel
	}
}
