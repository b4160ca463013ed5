package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/authgate/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-p int        HTTP port
//	-a string     auth service host
//	-P int        auth service port
//	-t duration   RPC timeout
//	-r int        rate limit per window (0 disables)
//	-l string     log level
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-p", "-a", "-P", "-t", "-r", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.IntVar(&config.Port, "p", config.Port, "HTTP port")
	fs.StringVar(&config.AuthServiceHost, "a", config.AuthServiceHost, "auth service host")
	fs.IntVar(&config.AuthServicePort, "P", config.AuthServicePort, "auth service port")
	fs.DurationVar(&config.RPCTimeout, "t", config.RPCTimeout, "auth service call timeout")
	fs.IntVar(&config.RateLimit, "r", config.RateLimit, "requests per window per IP")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
