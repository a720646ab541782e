package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type envConfig struct {
	ServiceIP       string        `env:"AUTH_SERVICE_IP"`
	ServiceHostName string        `env:"AUTH_SERVICE_HOST_NAME"`
	ServicePort     int           `env:"AUTH_SERVICE_PORT"`
	RequestTimeout  time.Duration `env:"AUTH_REQUEST_TIMEOUT"`
	CheckInterval   time.Duration `env:"AUTH_CHECK_INTERVAL"`
	LogLevel        string        `env:"AUTH_LOG_LEVEL"`
}

// parseEnv overlays variables that are set. Only the host variable named by
// hostEnv is consulted for the server host.
func parseEnv(cfg *Config, hostEnv string) {
	e := envConfig{
		ServiceIP:       cfg.ServerHost,
		ServiceHostName: cfg.ServerHost,
		ServicePort:     cfg.ServerPort,
		RequestTimeout:  cfg.RequestTimeout,
		CheckInterval:   cfg.CheckInterval,
		LogLevel:        cfg.LogLevel,
	}
	if err := env.Parse(&e); err != nil {
		panic(fmt.Errorf("parse env: %w", err))
	}

	switch hostEnv {
	case EnvServiceIP:
		cfg.ServerHost = e.ServiceIP
	case EnvServiceHostName:
		cfg.ServerHost = e.ServiceHostName
	}
	cfg.ServerPort = e.ServicePort
	cfg.RequestTimeout = e.RequestTimeout
	cfg.CheckInterval = e.CheckInterval
	cfg.LogLevel = e.LogLevel
}
