package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the full service configuration loaded from config.toml
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Engine    EngineConfig    `toml:"engine"`
	Gateway   GatewayConfig   `toml:"gateway"`
	Assistant AssistantConfig `toml:"assistant"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig logging settings
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig prometheus settings
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// EngineConfig polling engine settings
type EngineConfig struct {
	// TickIntervalSeconds is the period of the availability/overdue
	// recomputation loop
	TickIntervalSeconds int `toml:"tick_interval_seconds"`
}

// GatewayConfig simulated notification gateway settings
type GatewayConfig struct {
	DeliveryDelayMS int `toml:"delivery_delay_ms"`
	BannerTimeoutMS int `toml:"banner_timeout_ms"`
}

// AssistantConfig advisory service client settings
type AssistantConfig struct {
	URL     string `toml:"url"`
	APIKey  string `toml:"api_key"`
	Model   string `toml:"model"`
	Timeout int    `toml:"timeout"`
}

// Load reads the configuration from a TOML file and applies defaults
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "facility-service"
	}
	if c.Engine.TickIntervalSeconds == 0 {
		c.Engine.TickIntervalSeconds = 5
	}
	if c.Gateway.DeliveryDelayMS == 0 {
		c.Gateway.DeliveryDelayMS = 2500
	}
	if c.Gateway.BannerTimeoutMS == 0 {
		c.Gateway.BannerTimeoutMS = 7000
	}
	if c.Assistant.Model == "" {
		c.Assistant.Model = "gemini-3-flash-preview"
	}
	if c.Assistant.Timeout == 0 {
		c.Assistant.Timeout = 30
	}
}

// TickInterval returns the engine tick period as a duration
func (c *EngineConfig) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalSeconds) * time.Second
}

// DeliveryDelay returns the simulated network delay as a duration
func (c *GatewayConfig) DeliveryDelay() time.Duration {
	return time.Duration(c.DeliveryDelayMS) * time.Millisecond
}

// BannerTimeout returns the banner display timeout as a duration
func (c *GatewayConfig) BannerTimeout() time.Duration {
	return time.Duration(c.BannerTimeoutMS) * time.Millisecond
}
