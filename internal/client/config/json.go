package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/authservice/internal/flagx"
	"github.com/dmitrijs2005/authservice/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent keys
// leave the current value in place.
type JsonConfig struct {
	ServerHost     *string         `json:"server_host"`
	ServerPort     *int            `json:"server_port"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	CheckInterval  *timex.Duration `json:"check_interval"`
	LogLevel       *string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from the file named by -c or
// -config. Read or unmarshal errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerHost != nil {
		cfg.ServerHost = *jc.ServerHost
	}
	if jc.ServerPort != nil {
		cfg.ServerPort = *jc.ServerPort
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.CheckInterval != nil {
		cfg.CheckInterval = jc.CheckInterval.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
