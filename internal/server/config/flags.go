package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/authservice/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   bind host (e.g. "[::0]")
//	-n int      bind port
//	-b string   credential backend: memory | postgres
//	-d string   PostgreSQL DSN
//	-s string   session backend: memory | redis
//	-r string   Redis address
//	-t int      session TTL, minutes (0 disables expiry)
//	-w int      session sweep interval, seconds
//	-x int      store call timeout, seconds
//	-l string   log level
//
// Durations are accepted as integers and converted to time.Duration.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-n", "-b", "-d", "-s", "-r", "-t", "-w", "-x", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.HostName, "a", config.HostName, "host to bind")
	fs.IntVar(&config.Port, "n", config.Port, "port to bind")
	fs.StringVar(&config.CredentialBackend, "b", config.CredentialBackend, "credential backend (memory|postgres)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SessionBackend, "s", config.SessionBackend, "session backend (memory|redis)")
	fs.StringVar(&config.RedisAddr, "r", config.RedisAddr, "redis address")

	sessionTTL := fs.Int("t", int(config.SessionTTL.Minutes()), "session ttl (in minutes)")
	sweepInterval := fs.Int("w", int(config.SweepInterval.Seconds()), "session sweep interval (in seconds)")
	storeTimeout := fs.Int("x", int(config.StoreTimeout.Seconds()), "store call timeout (in seconds)")

	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionTTL = time.Duration(*sessionTTL) * time.Minute
	config.SweepInterval = time.Duration(*sweepInterval) * time.Second
	config.StoreTimeout = time.Duration(*storeTimeout) * time.Second
}
