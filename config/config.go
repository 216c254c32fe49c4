package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	Storage  StorageConfig
	Chat     ChatConfig
	Preview  PreviewConfig
	Notify   NotifyConfig
	Timezone string
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Driver     string // sqlite | memory
	Path       string // empty means the per-user default location
	QuotaBytes int64
}

type ChatConfig struct {
	ThinkingDelay    time.Duration
	ThinkingJitter   time.Duration
	MaxMessageLength int
	RateLimitPerMin  int
}

type PreviewConfig struct {
	MaxSessions int
}

type NotifyConfig struct {
	Duration time.Duration
}

const (
	StorageDriverSQLite = "sqlite"
	StorageDriverMemory = "memory"
)

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and $HOME/.config/tugasku
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "tugasku"))
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.Storage.Driver = strings.ToLower(viper.GetString("storage.driver"))
	cfg.Storage.Path = viper.GetString("storage.path")
	cfg.Storage.QuotaBytes = viper.GetInt64("storage.quota_bytes")

	// Chat pipeline
	cfg.Chat.ThinkingDelay = viper.GetDuration("chat.thinking_delay")
	cfg.Chat.ThinkingJitter = viper.GetDuration("chat.thinking_jitter")
	cfg.Chat.MaxMessageLength = viper.GetInt("chat.max_message_length")
	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")

	cfg.Preview.MaxSessions = viper.GetInt("preview.max_sessions")
	cfg.Notify.Duration = viper.GetDuration("notify.duration")
	cfg.Timezone = viper.GetString("timezone")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case StorageDriverSQLite, StorageDriverMemory:
	default:
		return fmt.Errorf("storage.driver must be %q or %q, got %q", StorageDriverSQLite, StorageDriverMemory, c.Storage.Driver)
	}
	if c.Storage.QuotaBytes < 0 {
		return fmt.Errorf("storage.quota_bytes must not be negative")
	}
	if c.Chat.ThinkingDelay < 0 || c.Chat.ThinkingJitter < 0 {
		return fmt.Errorf("chat.thinking_delay and chat.thinking_jitter must not be negative")
	}
	if c.Chat.MaxMessageLength <= 0 {
		return fmt.Errorf("chat.max_message_length must be positive")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.host", "127.0.0.1")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "release")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("storage.driver", StorageDriverSQLite)
	viper.SetDefault("storage.path", "")
	viper.SetDefault("storage.quota_bytes", 5*1024*1024) // matches a browser localStorage budget

	viper.SetDefault("chat.thinking_delay", "800ms")
	viper.SetDefault("chat.thinking_jitter", "400ms")
	viper.SetDefault("chat.max_message_length", 2000)
	viper.SetDefault("chat.rate_limit_per_min", 60)

	viper.SetDefault("preview.max_sessions", 128)
	viper.SetDefault("notify.duration", "3s")
	viper.SetDefault("timezone", "Asia/Jakarta")
}
