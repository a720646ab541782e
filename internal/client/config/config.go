package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/authservice/internal/common"
)

// Environment variables naming the server host.
const (
	EnvServiceIP       = "AUTH_SERVICE_IP"
	EnvServiceHostName = "AUTH_SERVICE_HOST_NAME"
)

// Config holds runtime settings for the client programs.
//
// Units: RequestTimeout and CheckInterval are time.Duration values.
type Config struct {
	ServerHost     string
	ServerPort     int
	RequestTimeout time.Duration
	CheckInterval  time.Duration
	LogLevel       string
}

// LoadDefaults points at the local default port on all interfaces.
func (c *Config) LoadDefaults() {
	c.ServerHost = common.DefaultServiceHost
	c.ServerPort = common.DefaultServicePort
	c.RequestTimeout = 10 * time.Second
	c.CheckInterval = 3 * time.Second
	c.LogLevel = "info"
}

// Endpoint is the gRPC target the client dials.
func (c *Config) Endpoint() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON, the environment (host taken from hostEnv) and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig(hostEnv string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg, hostEnv)
	parseFlags(cfg)
	return cfg
}
