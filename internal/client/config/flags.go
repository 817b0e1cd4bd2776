package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/liftlog/internal/flagx"
)

// parseFlags populates Config fields from -a, -t and -s. Unknown arguments
// are filtered out with flagx.FilterArgs so they do not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.SessionDSN, "s", cfg.SessionDSN, "session database path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
