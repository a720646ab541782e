package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/authservice/internal/flagx"
	"github.com/dmitrijs2005/authservice/internal/timex"
)

// JsonConfig is the on-disk shape of the server config. Pointer fields tell
// an absent key apart from an explicit zero, so only present keys override.
type JsonConfig struct {
	HostName          *string         `json:"host_name"`
	Port              *int            `json:"port"`
	CredentialBackend *string         `json:"credential_backend"`
	DatabaseDSN       *string         `json:"database_dsn"`
	SessionBackend    *string         `json:"session_backend"`
	RedisAddr         *string         `json:"redis_addr"`
	RedisPassword     *string         `json:"redis_password"`
	RedisDB           *int            `json:"redis_db"`
	RedisKeyPrefix    *string         `json:"redis_key_prefix"`
	SessionTTL        *timex.Duration `json:"session_ttl"`
	SweepInterval     *timex.Duration `json:"sweep_interval"`
	StoreTimeout      *timex.Duration `json:"store_timeout"`
	Argon2Memory      *uint32         `json:"argon2_memory_kib"`
	Argon2Time        *uint32         `json:"argon2_time"`
	Argon2Parallelism *uint8          `json:"argon2_parallelism"`
	LogLevel          *string         `json:"log_level"`
}

// parseJson loads the file named by -c/-config, if any, into config.
// An unreadable file or invalid JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	c.apply(config)
}

func (c *JsonConfig) apply(config *Config) {
	set(&config.HostName, c.HostName)
	set(&config.Port, c.Port)
	set(&config.CredentialBackend, c.CredentialBackend)
	set(&config.DatabaseDSN, c.DatabaseDSN)
	set(&config.SessionBackend, c.SessionBackend)
	set(&config.RedisAddr, c.RedisAddr)
	set(&config.RedisPassword, c.RedisPassword)
	set(&config.RedisDB, c.RedisDB)
	set(&config.RedisKeyPrefix, c.RedisKeyPrefix)
	set(&config.Argon2Memory, c.Argon2Memory)
	set(&config.Argon2Time, c.Argon2Time)
	set(&config.Argon2Parallelism, c.Argon2Parallelism)
	set(&config.LogLevel, c.LogLevel)

	if c.SessionTTL != nil {
		config.SessionTTL = c.SessionTTL.Duration
	}
	if c.SweepInterval != nil {
		config.SweepInterval = c.SweepInterval.Duration
	}
	if c.StoreTimeout != nil {
		config.StoreTimeout = c.StoreTimeout.Duration
	}
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
