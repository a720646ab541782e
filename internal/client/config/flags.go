package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/authservice/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   server host
//	-n int      server port
//	-x int      per-request timeout in seconds
//	-i int      health-check interval in seconds
//
// Only these flags are picked out of os.Args via flagx.FilterArgs, so the
// CLI's own subcommand flags pass through untouched.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-n", "-x", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerHost, "a", cfg.ServerHost, "server host")
	fs.IntVar(&cfg.ServerPort, "n", cfg.ServerPort, "server port")
	requestTimeout := fs.Int("x", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	checkInterval := fs.Int("i", int(cfg.CheckInterval.Seconds()), "health check interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	cfg.CheckInterval = time.Duration(*checkInterval) * time.Second
}
