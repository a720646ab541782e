// Package config loads runtime configuration for the auth CLI and the health
// checker.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv). The host variable differs per
//     program: the CLI reads AUTH_SERVICE_IP, the health checker reads
//     AUTH_SERVICE_HOST_NAME.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   server host
//	-n int      server port
//	-x int      per-request timeout (seconds)
//	-i int      health-check interval (seconds)
//
// # JSON schema
//
//	{
//	  "server_host": "[::0]",
//	  "server_port": 50051,
//	  "request_timeout": "10s",
//	  "check_interval": "3s"
//	}
package config
