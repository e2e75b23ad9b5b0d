package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Veraticus/signal-companion/internal/common"
)

// ServerConfig holds settings for the JSON API server.
type ServerConfig struct {
	Host         string
	CORSOrigins  []string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DefaultServerConfig returns the default server configuration.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Host:         "0.0.0.0",
		Port:         8000,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
		CORSOrigins:  []string{"http://localhost:5173", "http://localhost:3000"},
	}
}

// Addr returns the host:port listen address.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Validate checks that the configuration can be served.
func (c ServerConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: server port %d out of range", common.ErrInvalidConfig, c.Port)
	}
	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 || c.IdleTimeout <= 0 {
		return fmt.Errorf("%w: server timeouts must be positive", common.ErrInvalidConfig)
	}
	for _, origin := range c.CORSOrigins {
		if strings.TrimSpace(origin) == "" {
			return fmt.Errorf("%w: empty CORS origin", common.ErrInvalidConfig)
		}
	}
	return nil
}

// LoadServerConfig loads server configuration from Viper and environment variables.
// It follows this precedence:
// 1. Viper configuration (from config file or SIGNALS_ env vars)
// 2. Direct environment variables (HOST, PORT)
// 3. Default values
func LoadServerConfig() (*ServerConfig, error) {
	config := DefaultServerConfig()

	// Load from Viper first
	hostSet, portSet := false, false
	if v := viper.GetString("server.host"); v != "" {
		config.Host = v
		hostSet = true
	}
	if viper.IsSet("server.port") {
		config.Port = viper.GetInt("server.port")
		portSet = true
	}
	if v := viper.GetDuration("server.read_timeout"); v != 0 {
		config.ReadTimeout = v
	}
	if v := viper.GetDuration("server.write_timeout"); v != 0 {
		config.WriteTimeout = v
	}
	if v := viper.GetDuration("server.idle_timeout"); v != 0 {
		config.IdleTimeout = v
	}
	if v := viper.GetStringSlice("server.cors_origins"); len(v) > 0 {
		config.CORSOrigins = v
	}

	// Fall back to the conventional platform variables
	if !hostSet {
		if v := os.Getenv("HOST"); v != "" {
			config.Host = v
		}
	}
	if !portSet {
		if v := os.Getenv("PORT"); v != "" {
			port, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("%w: PORT %q is not a number", common.ErrInvalidConfig, v)
			}
			config.Port = port
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}
