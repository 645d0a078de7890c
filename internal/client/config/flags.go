package config

import (
	"flag"
	"os"
	"time"

	"github.com/mmisoft/ecom/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the identity provider REST API (default from Config)
//	-k string   identity provider API key (default from Config)
//	-t int      identity request timeout in seconds (default from Config)
//	-d string   path of the local SQLite database (default from Config)
//	-p string   Postgres DSN of the profile store (default from Config)
//	-r string   address of the analytics Redis (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-k", "-t", "-d", "-p", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.IdentityEndpoint, "a", cfg.IdentityEndpoint, "base URL of the identity provider")
	fs.StringVar(&cfg.IdentityAPIKey, "k", cfg.IdentityAPIKey, "identity provider API key")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "identity request timeout (in seconds)")
	fs.StringVar(&cfg.LocalDBPath, "d", cfg.LocalDBPath, "path of the local SQLite database")
	fs.StringVar(&cfg.ProfilesDSN, "p", cfg.ProfilesDSN, "Postgres DSN of the profile store")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "address of the analytics Redis")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
