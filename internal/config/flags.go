package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses the client command line.
//
// Flags:
//
//	-a backend address, host:port or URL
//	-request-timeout outbound request timeout (e.g. "15s")
//	-d local SQLite database path
//	-log-file log file path
//	-provider secret key provider preselected on the account screen
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		address        string
		requestTimeout time.Duration
		dsn            string
		logFile        string
		provider       string
		jsonConfigPath string
	)

	fs := flag.NewFlagSet("fresh-alert", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&address, "a", "", "Backend address host:port or URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&dsn, "d", "", "Local database path")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&provider, "provider", "", "Default secret key provider")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile:           logFile,
			SecretKeyProvider: provider,
		},
		Storage: Storage{
			DB: DB{DSN: dsn},
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
